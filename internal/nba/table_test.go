package nba

import (
	"errors"
	"testing"

	"github.com/josephoneill/basketball-bot-telegram/internal/nba/api"
	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
)

func TestNormalizeDuplicateHeaderLastWins(t *testing.T) {
	table := Normalize(&api.ResultSet{
		Headers: []string{"PTS", "REB", "PTS"},
		RowSet:  [][]any{{float64(1), float64(2), float64(3)}},
	})
	if got := table.Int(table.Rows[0], "PTS"); got != 3 {
		t.Fatalf("duplicate column resolved to %d, want 3 (last occurrence)", got)
	}
	if got := table.Int(table.Rows[0], "REB"); got != 2 {
		t.Fatalf("REB = %d, want 2", got)
	}
}

func TestFindResultSet(t *testing.T) {
	resp := resultSets(api.ResultSet{
		Name:    "LineScore",
		Headers: []string{"TEAM_ID"},
		RowSet:  [][]any{{float64(1)}},
	})

	if _, err := FindResultSet(resp, "LineScore"); err != nil {
		t.Fatalf("FindResultSet(LineScore) error: %v", err)
	}

	_, err := FindResultSet(resp, "GameHeader")
	if !errors.Is(err, stats.ErrMalformedResponse) {
		t.Fatalf("missing set error = %v, want ErrMalformedResponse", err)
	}

	_, err = FindResultSet(nil, "LineScore")
	if !errors.Is(err, stats.ErrMalformedResponse) {
		t.Fatalf("nil response error = %v, want ErrMalformedResponse", err)
	}
}

func TestTableValueBounds(t *testing.T) {
	table := Normalize(&api.ResultSet{
		Headers: []string{"A", "B"},
		RowSet:  [][]any{{"x"}},
	})
	if got := table.Value(table.Rows[0], "B"); got != nil {
		t.Fatalf("short row lookup = %v, want nil", got)
	}
	if got := table.Str(table.Rows[0], "A"); got != "x" {
		t.Fatalf("A = %q, want %q", got, "x")
	}
	if got := table.Value(table.Rows[0], "MISSING"); got != nil {
		t.Fatalf("unknown column = %v, want nil", got)
	}
}
