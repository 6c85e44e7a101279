// Package stats defines the sport-neutral data model shared by every sport
// plugin: normalized stat records, match scores, the tense flag used by the
// response formatter, and the error taxonomy the transport layer renders.
package stats

import "errors"

// Tense describes the temporal state of the game a stat record belongs to.
// The formatter chooses its phrasing ("has" vs "had", "is averaging" vs
// "averaged") from this flag alone.
type Tense string

const (
	// TenseInProgress marks a record from an ongoing game or the current season.
	TenseInProgress Tense = "in_progress"

	// TenseCompleted marks a record from a finished game or a past season.
	TenseCompleted Tense = "completed"

	// TenseNotStarted marks a placeholder record for a game that exists on
	// today's schedule but has not tipped off.
	TenseNotStarted Tense = "not_started"
)

// IsValid reports whether t is a recognised tense.
func (t Tense) IsValid() bool {
	switch t {
	case TenseInProgress, TenseCompleted, TenseNotStarted:
		return true
	}
	return false
}

// StatRecord is the uniform representation every upstream shape is mapped
// into before formatting. Absent metrics are explicit zeroes; Points is nil
// exactly when the game has not started, which is the only signal the
// formatter uses for "not started" phrasing.
type StatRecord struct {
	Tense Tense

	// Season is the season id ("2023-24") for season records; empty otherwise.
	Season string

	// AsOfDate is the date of the underlying game when the record was built
	// from a game log rather than a live source ("Mar 14, 2024").
	AsOfDate string

	// Status carries the schedule's status text for not-started placeholders
	// ("7:00 pm ET").
	Status string

	// GamesPlayed is the averaging denominator for season and career records.
	GamesPlayed int

	Points   *int
	Rebounds int
	Assists  int

	FieldGoalPct  int
	ThreePointPct int
	FreeThrowPct  int

	FreeThrowsMade      int
	FreeThrowsAttempted int

	// Minutes is the time played in "mm:ss" form for live records.
	Minutes string
}

// MatchScore is one game's score snapshot, home side first. Scores are nil
// exactly when the game has not started.
type MatchScore struct {
	HomeTeam   string
	HomeScore  *int
	HomeRecord string

	AwayTeam   string
	AwayScore  *int
	AwayRecord string

	Status       string
	StartTime    string
	CurrentClock string
}

// Started reports whether both sides have a score, i.e. the game has tipped off.
func (m MatchScore) Started() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Error taxonomy. Upstream and network failures are downgraded to one of
// these at the fallback-chain boundary so the transport layer only ever has
// a small fixed set of user-facing strings to render.
var (
	// ErrMalformedResponse means an expected container was absent from an
	// upstream payload: either the entity id was invalid or the provider
	// changed its schema. Never retried.
	ErrMalformedResponse = errors.New("stats: malformed upstream response")

	// ErrNoRecentGame means no live game, scheduled game, or game-log entry
	// could be found for the entity.
	ErrNoRecentGame = errors.New("stats: no recent game found")

	// ErrEntityNotFound means resolution produced zero candidates.
	ErrEntityNotFound = errors.New("stats: entity not found")
)
