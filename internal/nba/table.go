// Package nba implements the NBA sport plugin: entity directory, fallback
// data chain, live scores, and response formatting over the stats.nba.com
// and cdn.nba.com upstreams.
package nba

import (
	"fmt"

	"github.com/josephoneill/basketball-bot-telegram/internal/nba/api"
	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
)

// Table is the normalized form of one tabular upstream result set: a
// column-name→index map over positional rows. Tables live for one request
// and are discarded with it.
//
// The nested live boxscore shape is deliberately not funnelled through
// Table; it decodes to named fields directly ([api.BoxscorePlayer]) and
// downstream extraction is written against those names.
type Table struct {
	Headers map[string]int
	Rows    [][]any
}

// Normalize builds a Table from rs. When the upstream repeats a column
// name, the later position wins — this mirrors the provider's own header
// maps and is likely an upstream defect, kept rather than fixed so row
// offsets stay aligned with what the provider documents.
func Normalize(rs *api.ResultSet) Table {
	headers := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		headers[h] = i
	}
	return Table{Headers: headers, Rows: rs.RowSet}
}

// FindResultSet locates the named result set in resp and normalizes it.
// A missing name means an invalid entity id or an upstream schema change;
// both are [stats.ErrMalformedResponse], surfaced and never retried.
func FindResultSet(resp *api.ResultSetResponse, name string) (Table, error) {
	if resp == nil {
		return Table{}, fmt.Errorf("%w: nil response looking for %q", stats.ErrMalformedResponse, name)
	}
	for i := range resp.ResultSets {
		if resp.ResultSets[i].Name == name {
			return Normalize(&resp.ResultSets[i]), nil
		}
	}
	return Table{}, fmt.Errorf("%w: result set %q absent", stats.ErrMalformedResponse, name)
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Value returns the named column of row, or nil when the row or column is
// out of range. Callers coerce the result with the stats package helpers,
// so absence degrades to zero instead of panicking.
func (t Table) Value(row []any, column string) any {
	idx, ok := t.Headers[column]
	if !ok || idx >= len(row) {
		return nil
	}
	return row[idx]
}

// Int is shorthand for defensively coercing a named column to an int.
func (t Table) Int(row []any, column string) int {
	return stats.Num(t.Value(row, column))
}

// Str is shorthand for coercing a named column to a string.
func (t Table) Str(row []any, column string) string {
	return stats.Str(t.Value(row, column))
}
