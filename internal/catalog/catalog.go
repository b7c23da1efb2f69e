// Package catalog holds the fixed, ordered collection of canned analytical
// SQL queries. The catalog is defined at process start and immutable at
// runtime; the interaction layer never executes caller-authored SQL.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cricsight/cricsight-data/internal/store"
)

// Difficulty classifies a query by its position in the catalog.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// NotFoundError reports a lookup for a title the catalog does not hold. This
// indicates a programming error, not a runtime condition, and fails loudly.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog: no query titled %q", e.Title)
}

// ParseError reports a title without the required leading "Q<n>." ordinal.
type ParseError struct {
	Title string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog: title %q has no leading ordinal", e.Title)
}

// Query is one immutable catalog entry.
type Query struct {
	Title string
	SQL   string
}

// Querier is the read seam the catalog executes against.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (store.Table, error)
}

// Catalog is the ordered query collection.
type Catalog struct {
	queries []Query
	byTitle map[string]string
}

// New builds the default catalog.
func New() *Catalog {
	c := &Catalog{
		queries: defaultQueries,
		byTitle: make(map[string]string, len(defaultQueries)),
	}
	for _, q := range c.queries {
		c.byTitle[q.Title] = q.SQL
	}
	return c
}

// Titles returns all query titles in definition order (ordinal ascending).
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.queries))
	for i, q := range c.queries {
		titles[i] = q.Title
	}
	return titles
}

// SQL returns the query text for a title.
func (c *Catalog) SQL(title string) (string, error) {
	sql, ok := c.byTitle[title]
	if !ok {
		return "", &NotFoundError{Title: title}
	}
	return sql, nil
}

// Classify derives the difficulty from the title's leading ordinal:
// Q1-Q8 Beginner, Q9-Q16 Intermediate, Q17+ Advanced.
func Classify(title string) (Difficulty, error) {
	head, _, ok := strings.Cut(title, ".")
	if !ok || len(head) < 2 || head[0] != 'Q' {
		return "", &ParseError{Title: title}
	}
	n, err := strconv.Atoi(head[1:])
	if err != nil {
		return "", &ParseError{Title: title}
	}
	switch {
	case n <= 8:
		return Beginner, nil
	case n <= 16:
		return Intermediate, nil
	default:
		return Advanced, nil
	}
}

// Execute looks up a title and runs it through the data access layer,
// returning the tabular result unchanged (empty table on zero rows).
func (c *Catalog) Execute(ctx context.Context, q Querier, title string) (store.Table, error) {
	sql, err := c.SQL(title)
	if err != nil {
		return store.Table{}, err
	}
	return q.Query(ctx, sql)
}
