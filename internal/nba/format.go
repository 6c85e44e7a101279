package nba

import (
	"fmt"
	"strings"

	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
)

// User-facing fixed strings. These are designed answer states, not errors:
// a record without a usable denominator renders one of these instead of
// propagating a failure.
const (
	msgInvalidInput  = "Invalid input"
	msgNotStartedYet = "Game has not started yet"
)

// formatCareer renders a career-average line. Career averages are always
// present tense.
func formatCareer(rec stats.StatRecord, name string) string {
	if rec.Points == nil || rec.GamesPlayed == 0 {
		return msgInvalidInput
	}
	ppg := stats.PerGame(*rec.Points, rec.GamesPlayed)
	rpg := stats.PerGame(rec.Rebounds, rec.GamesPlayed)
	apg := stats.PerGame(rec.Assists, rec.GamesPlayed)
	return fmt.Sprintf("%s averages %.1f/%.1f/%.1f in his career", name, ppg, rpg, apg)
}

// formatSeason renders a season-average line, present tense only while the
// season is ongoing.
func formatSeason(rec stats.StatRecord, name string) string {
	if rec.Points == nil || rec.GamesPlayed == 0 {
		return msgInvalidInput
	}
	tense := "averaged"
	if rec.Tense == stats.TenseInProgress {
		tense = "is averaging"
	}
	ppg := stats.PerGame(*rec.Points, rec.GamesPlayed)
	rpg := stats.PerGame(rec.Rebounds, rec.GamesPlayed)
	apg := stats.PerGame(rec.Assists, rec.GamesPlayed)
	return fmt.Sprintf("%s %s %.1f/%.1f/%.1f in the %s season", name, tense, ppg, rpg, apg, rec.Season)
}

// formatCurrent renders a single-game stat line. Nil points means the game
// is on the schedule but has not tipped off. A record built from the game
// log rather than a live boxscore names the game's date.
func formatCurrent(rec stats.StatRecord, name string) string {
	if rec.Points == nil {
		return msgNotStartedYet
	}
	tense := "had"
	if rec.Tense == stats.TenseInProgress {
		tense = "has"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %d/%d/%d on %d/%d/%d shooting in %s minutes",
		name, tense, *rec.Points, rec.Rebounds, rec.Assists,
		rec.FieldGoalPct, rec.ThreePointPct, rec.FreeThrowPct, rec.Minutes)
	if rec.AsOfDate != "" {
		fmt.Fprintf(&b, " on %s", rec.AsOfDate)
	}
	return b.String()
}

// formatFreeThrows renders the free-throw-only line for the same record the
// current-game path produces.
func formatFreeThrows(rec stats.StatRecord, name string) string {
	if rec.Points == nil {
		return msgNotStartedYet
	}
	tense := "made"
	if rec.Tense == stats.TenseInProgress {
		tense = "has made"
	}
	return fmt.Sprintf("%s %s %d/%d free throws", name, tense, rec.FreeThrowsMade, rec.FreeThrowsAttempted)
}
