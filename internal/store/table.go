package store

import "github.com/jackc/pgx/v5"

// Table is an ordered tabular query result with named columns. A query that
// matches zero rows yields a Table with columns and an empty Rows slice.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// RowCount returns the number of data rows.
func (t Table) RowCount() int { return len(t.Rows) }

// Empty reports whether the table holds no data rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }

// collectTable drains pgx rows into a Table. The caller retains ownership of
// rows and must close them; collectTable reads to exhaustion.
func collectTable(rows pgx.Rows) (Table, error) {
	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}

	t := Table{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return Table{}, err
		}
		row := make([]any, len(vals))
		copy(row, vals)
		t.Rows = append(t.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Table{}, err
	}
	return t, nil
}
