package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeRows is a minimal in-memory pgx.Rows over canned values.
type fakeRows struct {
	fields []pgconn.FieldDescription
	values [][]any
	pos    int
	err    error
}

func (f *fakeRows) Close()                                       {}
func (f *fakeRows) Err() error                                   { return f.err }
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return f.fields }
func (f *fakeRows) Next() bool {
	if f.pos >= len(f.values) {
		return false
	}
	f.pos++
	return true
}
func (f *fakeRows) Scan(dest ...any) error { return errors.New("not implemented") }
func (f *fakeRows) Values() ([]any, error) { return f.values[f.pos-1], nil }
func (f *fakeRows) RawValues() [][]byte    { return nil }
func (f *fakeRows) Conn() *pgx.Conn        { return nil }

func TestCollectTable(t *testing.T) {
	rows := &fakeRows{
		fields: []pgconn.FieldDescription{{Name: "full_name"}, {Name: "runs"}},
		values: [][]any{
			{"V Kohli", int64(13848)},
			{"R Sharma", int64(10709)},
		},
	}

	table, err := collectTable(rows)
	if err != nil {
		t.Fatalf("collectTable: %v", err)
	}
	if !reflect.DeepEqual(table.Columns, []string{"full_name", "runs"}) {
		t.Errorf("columns = %v", table.Columns)
	}
	if table.RowCount() != 2 || table.Empty() {
		t.Errorf("row count = %d", table.RowCount())
	}
	if !reflect.DeepEqual(table.Rows[0], []any{"V Kohli", int64(13848)}) {
		t.Errorf("row 0 = %v", table.Rows[0])
	}
}

func TestCollectTableZeroRows(t *testing.T) {
	rows := &fakeRows{fields: []pgconn.FieldDescription{{Name: "player_id"}}}

	table, err := collectTable(rows)
	if err != nil {
		t.Fatalf("collectTable: %v", err)
	}
	if !table.Empty() {
		t.Errorf("expected empty table, got %d rows", table.RowCount())
	}
	// Column names survive even when no rows matched.
	if len(table.Columns) != 1 || table.Columns[0] != "player_id" {
		t.Errorf("columns = %v", table.Columns)
	}
	if table.Rows == nil {
		t.Error("Rows must be an empty slice, not nil, so it encodes as []")
	}
}

func TestCollectTableRowError(t *testing.T) {
	rows := &fakeRows{
		fields: []pgconn.FieldDescription{{Name: "x"}},
		err:    errors.New("connection reset"),
	}
	if _, err := collectTable(rows); err == nil {
		t.Fatal("expected error")
	}
}
