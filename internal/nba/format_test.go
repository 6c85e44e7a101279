package nba

import (
	"testing"

	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
)

func intp(n int) *int { return &n }

func TestFormatCareer(t *testing.T) {
	rec := stats.StatRecord{
		Tense:       stats.TenseCompleted,
		GamesPlayed: 100,
		Points:      intp(2710),
		Rebounds:    750,
		Assists:     738,
	}
	got := formatCareer(rec, "LeBron James")
	want := "LeBron James averages 27.1/7.5/7.4 in his career"
	if got != want {
		t.Fatalf("formatCareer() = %q, want %q", got, want)
	}
}

func TestFormatCareerInvalidInput(t *testing.T) {
	for name, rec := range map[string]stats.StatRecord{
		"nil points":   {GamesPlayed: 10},
		"zero games":   {Points: intp(100)},
		"empty record": {},
	} {
		if got := formatCareer(rec, "Someone"); got != "Invalid input" {
			t.Errorf("%s: formatCareer() = %q, want %q", name, got, "Invalid input")
		}
	}
}

func TestFormatSeasonTense(t *testing.T) {
	rec := stats.StatRecord{
		Season:      "2023-24",
		GamesPlayed: 10,
		Points:      intp(250),
		Rebounds:    80,
		Assists:     50,
	}

	rec.Tense = stats.TenseInProgress
	got := formatSeason(rec, "LeBron James")
	want := "LeBron James is averaging 25.0/8.0/5.0 in the 2023-24 season"
	if got != want {
		t.Fatalf("in-progress season = %q, want %q", got, want)
	}

	rec.Tense = stats.TenseCompleted
	got = formatSeason(rec, "LeBron James")
	want = "LeBron James averaged 25.0/8.0/5.0 in the 2023-24 season"
	if got != want {
		t.Fatalf("completed season = %q, want %q", got, want)
	}
}

func TestFormatCurrent(t *testing.T) {
	rec := stats.StatRecord{
		Tense:         stats.TenseInProgress,
		Points:        intp(31),
		Rebounds:      9,
		Assists:       11,
		FieldGoalPct:  52,
		ThreePointPct: 40,
		FreeThrowPct:  88,
		Minutes:       "34:12",
	}
	got := formatCurrent(rec, "LeBron James")
	want := "LeBron James has 31/9/11 on 52/40/88 shooting in 34:12 minutes"
	if got != want {
		t.Fatalf("live record = %q, want %q", got, want)
	}

	rec.Tense = stats.TenseCompleted
	rec.AsOfDate = "MAR 14, 2024"
	got = formatCurrent(rec, "LeBron James")
	want = "LeBron James had 31/9/11 on 52/40/88 shooting in 34:12 minutes on MAR 14, 2024"
	if got != want {
		t.Fatalf("game log record = %q, want %q", got, want)
	}
}

func TestFormatCurrentNotStarted(t *testing.T) {
	rec := stats.StatRecord{Tense: stats.TenseNotStarted, Status: "7:00 pm ET"}
	if got := formatCurrent(rec, "LeBron James"); got != "Game has not started yet" {
		t.Fatalf("formatCurrent() = %q, want %q", got, "Game has not started yet")
	}
}

func TestFormatFreeThrows(t *testing.T) {
	rec := stats.StatRecord{
		Tense:               stats.TenseInProgress,
		Points:              intp(20),
		FreeThrowsMade:      7,
		FreeThrowsAttempted: 8,
	}
	if got, want := formatFreeThrows(rec, "LeBron James"), "LeBron James has made 7/8 free throws"; got != want {
		t.Fatalf("in-progress = %q, want %q", got, want)
	}
	rec.Tense = stats.TenseCompleted
	if got, want := formatFreeThrows(rec, "LeBron James"), "LeBron James made 7/8 free throws"; got != want {
		t.Fatalf("completed = %q, want %q", got, want)
	}
}
