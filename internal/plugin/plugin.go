// Package plugin defines the sport plugin interface and the process-wide
// registry that routes queries to the first plugin claiming support.
package plugin

import (
	"context"
	"time"

	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
	"github.com/josephoneill/basketball-bot-telegram/internal/token"
)

// SportPlugin is the contract every sport implementation satisfies.
// Capability predicates decide routing; the operation methods answer the
// routed query. All blocking methods take a context because capability
// probing and stat fetching both reach the sport's upstream provider.
type SportPlugin interface {
	// Name is the registry key, also stamped into disambiguation tokens so
	// a resumed selection reaches the plugin that issued it.
	Name() string

	// SupportsTeam reports whether this plugin can answer a scores query
	// for the given free-text team name.
	SupportsTeam(ctx context.Context, query string) bool

	// SupportsPlayer reports whether this plugin recognises the given
	// free-text player name or id.
	SupportsPlayer(ctx context.Context, query string) bool

	// LiveScores returns the score snapshot for the team's game on date
	// (today when date is zero). Returns [stats.ErrNoRecentGame] when the
	// team has no game.
	LiveScores(ctx context.Context, team string, date time.Time) (*stats.MatchScore, error)

	// PlayerCareerStats answers a career-average query.
	PlayerCareerStats(ctx context.Context, query string) (Result, error)

	// PlayerSeasonStats answers a season-average query, optionally bounded
	// to the season starting in startYear (or startYear-endYear form).
	PlayerSeasonStats(ctx context.Context, query, startYear, endYear string) (Result, error)

	// PlayerCurrentStats answers a "what is happening now or most recently"
	// query via the plugin's fallback data chain.
	PlayerCurrentStats(ctx context.Context, query string) (Result, error)

	// CustomOps lists extra named operations the transport should expose as
	// commands (e.g. the NBA plugin's free-throw line).
	CustomOps() []CustomOp

	// Resume replays the operation recorded in tok against its concrete
	// entity id. The result must be identical to resolving that entity
	// unambiguously in a single step.
	Resume(ctx context.Context, tok token.Token) (Result, error)
}

// CustomOp is one plugin-specific operation surfaced as a transport command.
type CustomOp struct {
	// Command is the command word without the leading slash ("fts").
	Command string

	Description string

	// Handle answers the command for a free-text query.
	Handle func(ctx context.Context, query string) (Result, error)
}

// Result is the union a plugin returns to the transport: a formatted text
// answer, a match score record for image rendering, or a disambiguation
// request. Exactly one field is set.
type Result struct {
	Text      string
	Score     *stats.MatchScore
	Selection *Selection
}

// Selection asks the user to pick one of several resolution candidates.
// Each option carries its own token; presenting one back resumes the
// original request.
type Selection struct {
	Prompt  string
	Options []SelectOption
}

// SelectOption is one pickable candidate.
type SelectOption struct {
	Label string
	Token string
}
