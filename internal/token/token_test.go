package token

import (
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
	}{
		{"minimal", Token{EntityID: 2544, Op: OpCareerStats, Plugin: "nba"}},
		{"season bounds", Token{EntityID: 201939, Op: OpSeasonStats, Plugin: "nba", StartYear: "2015", EndYear: "16"}},
		{"start year only", Token{EntityID: 203999, Op: OpSeasonStats, Plugin: "nba", StartYear: "2021"}},
		{"custom op", Token{EntityID: 1629027, Op: OpCustom, Custom: "fts", Plugin: "nba"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.tok.Encode())
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.tok.Encode(), err)
			}
			if got != tt.tok {
				t.Fatalf("round trip = %+v, want %+v", got, tt.tok)
			}
		})
	}
}

func TestEncodeFitsCallbackDataLimit(t *testing.T) {
	// Telegram rejects callback_data above 64 bytes.
	tok := Token{EntityID: 1610612747, Op: OpSeasonStats, Plugin: "nba", StartYear: "2015", EndYear: "2016"}
	if n := len(tok.Encode()); n > 64 {
		t.Fatalf("encoded token is %d bytes, exceeds the 64-byte callback_data limit", n)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"id=abc,op=career_stats,pg=nba",
		"id=1,op=career_stats",
		"op=career_stats,pg=nba",
		"id=1,op=drop_tables,pg=nba",
		"id=1,op=custom,pg=nba",
		"id=1,op=career_stats,pg=nba,boom=1",
		"id=1,op=,pg=nba",
	}
	for _, s := range cases {
		if _, err := Decode(s); !errors.Is(err, ErrBadToken) {
			t.Fatalf("Decode(%q) err = %v, want ErrBadToken", s, err)
		}
	}
}

func TestDecodeTrimsSpacing(t *testing.T) {
	// The original keyboard payloads carried a space after each comma.
	got, err := Decode("id=2544, op=current_stats, pg=nba")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EntityID != 2544 || got.Op != OpCurrentStats || got.Plugin != "nba" {
		t.Fatalf("got %+v", got)
	}
}
