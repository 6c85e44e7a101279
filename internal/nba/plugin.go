// Package nba implements the NBA sport plugin: name resolution against the
// league player and team directories, the fallback data chain over the
// stats and live feeds, and the fixed-template response formatter.
package nba

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/josephoneill/basketball-bot-telegram/internal/plugin"
	"github.com/josephoneill/basketball-bot-telegram/internal/resolve"
	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
	"github.com/josephoneill/basketball-bot-telegram/internal/token"
)

// Name is the plugin's registry key.
const Name = "nba"

// selectPrompt asks the user to disambiguate between candidate players.
const selectPrompt = "Please select a player."

// upstream is everything the plugin needs from the stat hosts.
type upstream interface {
	statsAPI
	allPlayersFetcher
}

// Plugin answers NBA queries. It satisfies [plugin.SportPlugin].
type Plugin struct {
	directory *Directory
	players   *playerService
	scores    *scoreService
	logger    *slog.Logger
}

var _ plugin.SportPlugin = (*Plugin)(nil)

// New wires a plugin over the given upstream client. directoryRefresh
// bounds how long the player directory may serve a stale snapshot.
func New(client upstream, directoryRefresh time.Duration, logger *slog.Logger) *Plugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &Plugin{
		directory: NewDirectory(client, directoryRefresh, logger),
		players:   newPlayerService(client, logger),
		scores:    newScoreService(client, logger),
		logger:    logger,
	}
}

func (p *Plugin) Name() string { return Name }

// SupportsTeam reports whether the query names an NBA team. Team
// resolution always produces a best guess, so any non-empty query is
// supported.
func (p *Plugin) SupportsTeam(ctx context.Context, query string) bool {
	_, ok := resolve.Team(query, p.directory.Teams())
	return ok
}

// SupportsPlayer reports whether the query matches at least one player in
// the league directory.
func (p *Plugin) SupportsPlayer(ctx context.Context, query string) bool {
	players, err := p.directory.Players(ctx)
	if err != nil {
		p.logger.Debug("nba: player directory unavailable", "error", err)
		return false
	}
	name, _, _ := splitPlayerQuery(query)
	return resolve.Players(name, players).Kind != resolve.NotFound
}

// LiveScores answers a team scores query.
func (p *Plugin) LiveScores(ctx context.Context, team string, date time.Time) (*stats.MatchScore, error) {
	entry, ok := resolve.Team(team, p.directory.Teams())
	if !ok {
		return nil, fmt.Errorf("team %q: %w", team, stats.ErrEntityNotFound)
	}
	return p.scores.teamGame(ctx, entry.ID, date)
}

func (p *Plugin) PlayerCareerStats(ctx context.Context, query string) (plugin.Result, error) {
	return p.playerOp(ctx, query, token.Token{Op: token.OpCareerStats, Plugin: Name})
}

func (p *Plugin) PlayerSeasonStats(ctx context.Context, query, startYear, endYear string) (plugin.Result, error) {
	if startYear == "" {
		query, startYear, endYear = splitPlayerQuery(query)
	}
	return p.playerOp(ctx, query, token.Token{
		Op:        token.OpSeasonStats,
		Plugin:    Name,
		StartYear: startYear,
		EndYear:   endYear,
	})
}

func (p *Plugin) PlayerCurrentStats(ctx context.Context, query string) (plugin.Result, error) {
	return p.playerOp(ctx, query, token.Token{Op: token.OpCurrentStats, Plugin: Name})
}

// CustomOps exposes the free-throw line command.
func (p *Plugin) CustomOps() []plugin.CustomOp {
	return []plugin.CustomOp{{
		Command:     "fts",
		Description: "Free throws a player has made in their current game",
		Handle: func(ctx context.Context, query string) (plugin.Result, error) {
			return p.playerOp(ctx, query, token.Token{Op: token.OpCustom, Custom: "fts", Plugin: Name})
		},
	}}
}

// Resume replays a disambiguated request. The selected id resolves through
// the same directory as a direct id query, so the result is identical to a
// single-step unambiguous lookup.
func (p *Plugin) Resume(ctx context.Context, tok token.Token) (plugin.Result, error) {
	players, err := p.directory.Players(ctx)
	if err != nil {
		return plugin.Result{}, err
	}
	res := resolve.Players(strconv.Itoa(tok.EntityID), players)
	if res.Kind != resolve.Found {
		return plugin.Result{}, fmt.Errorf("player id %d: %w", tok.EntityID, stats.ErrEntityNotFound)
	}
	return p.answer(ctx, res.Entity, tok)
}

// playerOp resolves the query and either answers it, requests a selection,
// or reports the player as unknown. tok is the template stamped into each
// candidate's option.
func (p *Plugin) playerOp(ctx context.Context, query string, tok token.Token) (plugin.Result, error) {
	players, err := p.directory.Players(ctx)
	if err != nil {
		return plugin.Result{}, err
	}
	res := resolve.Players(query, players)
	switch res.Kind {
	case resolve.NotFound:
		return plugin.Result{}, fmt.Errorf("player %q: %w", query, stats.ErrEntityNotFound)
	case resolve.Ambiguous:
		return plugin.Result{Selection: p.selection(res.Candidates, tok)}, nil
	}
	return p.answer(ctx, res.Entity, tok)
}

func (p *Plugin) selection(candidates []resolve.Entity, tok token.Token) *plugin.Selection {
	sel := &plugin.Selection{Prompt: selectPrompt}
	for _, c := range candidates {
		tok.EntityID = c.ID
		sel.Options = append(sel.Options, plugin.SelectOption{Label: c.Name, Token: tok.Encode()})
	}
	return sel
}

// answer runs the resolved operation against a concrete player.
func (p *Plugin) answer(ctx context.Context, ent resolve.Entity, tok token.Token) (plugin.Result, error) {
	switch tok.Op {
	case token.OpCareerStats:
		rec, err := p.players.career(ctx, ent.ID)
		if err != nil {
			return plugin.Result{}, err
		}
		return plugin.Result{Text: formatCareer(rec, ent.Name)}, nil

	case token.OpSeasonStats:
		rec, err := p.players.season(ctx, ent.ID, tok.StartYear, tok.EndYear)
		if err != nil {
			return plugin.Result{}, err
		}
		return plugin.Result{Text: formatSeason(rec, ent.Name)}, nil

	case token.OpCurrentStats:
		rec, err := p.players.current(ctx, ent.ID)
		if err != nil {
			return plugin.Result{}, err
		}
		return plugin.Result{Text: formatCurrent(rec, ent.Name)}, nil

	case token.OpCustom:
		if tok.Custom != "fts" {
			return plugin.Result{}, fmt.Errorf("nba: unknown custom operation %q", tok.Custom)
		}
		rec, err := p.players.current(ctx, ent.ID)
		if err != nil {
			return plugin.Result{}, err
		}
		return plugin.Result{Text: formatFreeThrows(rec, ent.Name)}, nil
	}
	return plugin.Result{}, fmt.Errorf("nba: unknown operation %q", tok.Op)
}
