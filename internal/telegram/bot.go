// Package telegram provides the chat transport for the bot: it owns the
// long-poll update loop, parses commands into dispatcher calls, renders
// results, and feeds selection callbacks back into the disambiguation flow.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/josephoneill/basketball-bot-telegram/internal/observe"
	"github.com/josephoneill/basketball-bot-telegram/internal/plugin"
	"github.com/josephoneill/basketball-bot-telegram/internal/token"
)

// cowboy is the /start greeting.
const cowboy = "\U0001F920"

const msgUnknownCommand = "Sorry, I don't recognise that command"

// Bot owns the Telegram connection and routes updates to the dispatcher.
type Bot struct {
	api     *tgbotapi.BotAPI
	disp    *plugin.Dispatcher
	logger  *slog.Logger
	metrics *observe.Metrics
}

// New authenticates against the bot API and returns a Bot ready to [Run].
func New(botToken string, disp *plugin.Dispatcher, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	logger.Info("telegram: authorized", "username", api.Self.UserName)
	return &Bot{
		api:     api,
		disp:    disp,
		logger:  logger,
		metrics: observe.DefaultMetrics(),
	}, nil
}

// Ping verifies the bot session is still accepted by the Telegram API.
// The underlying client has no context plumbing, so cancellation is only
// checked up front.
func (b *Bot) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := b.api.GetMe(); err != nil {
		return fmt.Errorf("telegram: getMe: %w", err)
	}
	return nil
}

// Run publishes the command menu and polls for updates until ctx is
// cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.publishCommands()

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, upd)
		}
	}
}

// publishCommands registers the Telegram command menu: the fixed stat
// commands plus every loaded plugin's custom operations. Failure is
// logged, not fatal; the bot still answers commands typed by hand.
func (b *Bot) publishCommands() {
	commands := []tgbotapi.BotCommand{
		{Command: "careerstats", Description: "Career points/rebounds/assists per game"},
		{Command: "seasonstats", Description: "Season averages, optionally for a given season"},
		{Command: "currentstats", Description: "Live or most recent game line"},
		{Command: "scores", Description: "Score of a team's current or latest game"},
	}
	for _, op := range b.disp.CustomCommands() {
		commands = append(commands, tgbotapi.BotCommand{
			Command:     op.Command,
			Description: op.Description,
		})
	}
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		b.logger.Warn("telegram: publish command menu failed", "err", err)
	}
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.CallbackQuery != nil:
		b.metrics.RecordUpdate(ctx, "callback")
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil && upd.Message.IsCommand():
		b.metrics.RecordUpdate(ctx, "command")
		b.handleCommand(ctx, upd.Message)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	cmd, args, chatID := msg.Command(), msg.CommandArguments(), msg.Chat.ID

	switch cmd {
	case "start":
		b.sendText(chatID, cowboy)
	case "careerstats":
		b.deliver(chatID, b.disp.PlayerQuery(ctx, token.OpCareerStats, args, "", ""))
	case "seasonstats":
		b.deliver(chatID, b.disp.PlayerQuery(ctx, token.OpSeasonStats, args, "", ""))
	case "currentstats":
		b.deliver(chatID, b.disp.PlayerQuery(ctx, token.OpCurrentStats, args, "", ""))
	case "scores":
		b.deliver(chatID, b.disp.TeamScores(ctx, args, time.Time{}))
	default:
		if res, ok := b.disp.Custom(ctx, cmd, args); ok {
			b.deliver(chatID, res)
			return
		}
		b.sendText(chatID, msgUnknownCommand)
	}
}

// handleCallback consumes one selection: the keyboard is cleared so the
// token cannot be presented twice from the same message, then the encoded
// token resumes the original request.
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.logger.Warn("telegram: callback ack failed", "err", err)
	}
	if cb.Message == nil {
		b.logger.Warn("telegram: callback without source message", "data", cb.Data)
		return
	}
	b.clearKeyboard(cb.Message.Chat.ID, cb.Message.MessageID)
	b.deliver(cb.Message.Chat.ID, b.disp.Resume(ctx, cb.Data))
}
