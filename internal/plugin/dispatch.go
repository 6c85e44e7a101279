package plugin

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/josephoneill/basketball-bot-telegram/internal/observe"
	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
	"github.com/josephoneill/basketball-bot-telegram/internal/token"
)

// The complete set of user-facing failure strings. Every upstream or
// resolution error is downgraded to one of these before it reaches the
// transport, which therefore never renders a raw error.
const (
	MsgTeamNotSupported = "Sorry, I couldn't find a supported team with that name"
	MsgPlayerNotFound   = "Sorry, I could not find a player with that name"
	MsgDataError        = "Sorry, there was an error getting the data"
	MsgNotPlaying       = "Player is not currently playing"
	MsgNoGames          = "No current games"
)

// Dispatcher is the inbound surface of the engine: it routes a query to
// the correct plugin by capability, and resumes disambiguation tokens.
type Dispatcher struct {
	reg     *Registry
	metrics *observe.Metrics
}

// NewDispatcher returns a dispatcher over reg.
func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg, metrics: observe.DefaultMetrics()}
}

// PlayerQuery routes a player stat query. startYear and endYear apply only
// to season-stats operations.
func (d *Dispatcher) PlayerQuery(ctx context.Context, op token.Operation, query, startYear, endYear string) Result {
	p, ok := d.reg.ForPlayer(ctx, query)
	if !ok {
		d.metrics.RecordQuery(ctx, string(op), "none", "unsupported")
		return Result{Text: MsgPlayerNotFound}
	}

	var (
		res Result
		err error
	)
	switch op {
	case token.OpCareerStats:
		res, err = p.PlayerCareerStats(ctx, query)
	case token.OpSeasonStats:
		res, err = p.PlayerSeasonStats(ctx, query, startYear, endYear)
	case token.OpCurrentStats:
		res, err = p.PlayerCurrentStats(ctx, query)
	default:
		slog.Warn("plugin: unhandled player operation", "op", op)
		return Result{Text: MsgDataError}
	}
	return d.finish(ctx, res, err, p.Name(), op)
}

// Custom routes one of a plugin's extra named operations by command word.
func (d *Dispatcher) Custom(ctx context.Context, command, query string) (Result, bool) {
	for _, p := range d.reg.All() {
		for _, op := range p.CustomOps() {
			if op.Command == command {
				res, err := op.Handle(ctx, query)
				return d.finish(ctx, res, err, p.Name(), token.OpCustom), true
			}
		}
	}
	return Result{}, false
}

// TeamScores routes a scores query for a free-text team name. date is the
// requested game date; zero means today.
func (d *Dispatcher) TeamScores(ctx context.Context, query string, date time.Time) Result {
	p, ok := d.reg.ForTeam(ctx, query)
	if !ok {
		d.metrics.RecordQuery(ctx, "scores", "none", "unsupported")
		return Result{Text: MsgTeamNotSupported}
	}
	ms, err := p.LiveScores(ctx, query, date)
	if err != nil {
		if errors.Is(err, stats.ErrNoRecentGame) {
			d.metrics.RecordQuery(ctx, "scores", p.Name(), "no_game")
			return Result{Text: MsgNoGames}
		}
		slog.Error("plugin: live scores failed", "plugin", p.Name(), "err", err)
		d.metrics.RecordQuery(ctx, "scores", p.Name(), "error")
		return Result{Text: MsgDataError}
	}
	d.metrics.RecordQuery(ctx, "scores", p.Name(), "ok")
	return Result{Score: ms}
}

// Resume consumes a previously issued disambiguation token and replays the
// original operation against the selected entity. A token naming an
// unknown plugin or failing to decode is answered with the generic data
// error; this engine enforces no token expiry or replay protection.
func (d *Dispatcher) Resume(ctx context.Context, encoded string) Result {
	tok, err := token.Decode(encoded)
	if err != nil {
		slog.Warn("plugin: undecodable selection token", "err", err)
		return Result{Text: MsgDataError}
	}
	p, ok := d.reg.ByName(tok.Plugin)
	if !ok {
		slog.Warn("plugin: token names unknown plugin", "plugin", tok.Plugin)
		return Result{Text: MsgDataError}
	}
	res, err := p.Resume(ctx, tok)
	return d.finish(ctx, res, err, p.Name(), tok.Op)
}

// CustomCommands lists every extra operation across all loaded plugins so
// the transport can register them.
func (d *Dispatcher) CustomCommands() []CustomOp {
	var ops []CustomOp
	for _, p := range d.reg.All() {
		ops = append(ops, p.CustomOps()...)
	}
	return ops
}

// finish maps taxonomy errors to their fixed user-facing strings, records
// the query outcome, and logs everything else as the generic data error.
func (d *Dispatcher) finish(ctx context.Context, res Result, err error, pluginName string, op token.Operation) Result {
	record := func(status string) {
		d.metrics.RecordQuery(ctx, string(op), pluginName, status)
	}
	switch {
	case err == nil && res.Selection != nil:
		record("ambiguous")
		return res
	case err == nil:
		record("ok")
		return res
	case errors.Is(err, stats.ErrEntityNotFound):
		record("not_found")
		return Result{Text: MsgPlayerNotFound}
	case errors.Is(err, stats.ErrNoRecentGame):
		record("no_game")
		return Result{Text: MsgNotPlaying}
	case errors.Is(err, stats.ErrMalformedResponse):
		slog.Error("plugin: malformed upstream response", "plugin", pluginName, "op", op, "err", err)
		record("malformed")
		return Result{Text: MsgDataError}
	default:
		slog.Error("plugin: operation failed", "plugin", pluginName, "op", op, "err", err)
		record("error")
		return Result{Text: MsgDataError}
	}
}
