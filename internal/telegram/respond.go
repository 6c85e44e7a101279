package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/josephoneill/basketball-bot-telegram/internal/plugin"
	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
)

// deliver renders a dispatcher result into the chat: a selection becomes an
// inline keyboard, a score record becomes its sentence, anything else is
// plain text.
func (b *Bot) deliver(chatID int64, res plugin.Result) {
	switch {
	case res.Selection != nil:
		msg := tgbotapi.NewMessage(chatID, res.Selection.Prompt)
		msg.ReplyMarkup = selectionMarkup(res.Selection)
		b.send(msg)
	case res.Score != nil:
		b.sendText(chatID, ScoreMessage(*res.Score))
	default:
		b.sendText(chatID, res.Text)
	}
}

// selectionMarkup lays out one button per candidate, one per row, each
// carrying its resumption token as callback data.
func selectionMarkup(sel *plugin.Selection) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(sel.Options))
	for _, opt := range sel.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt.Label, opt.Token),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// ScoreMessage renders a match score as a sentence, winner first. Nil
// scores mean the game has not started.
func ScoreMessage(s stats.MatchScore) string {
	if !s.Started() {
		return fmt.Sprintf("The %s-%s game does not start until %s", s.HomeTeam, s.AwayTeam, s.StartTime)
	}

	verb := "are currently leading"
	if s.Status == "Final" {
		verb = "defeated"
	}

	home, away := *s.HomeScore, *s.AwayScore
	switch {
	case home > away:
		return fmt.Sprintf("The %s (%s) %s the %s (%s), %d-%d",
			s.HomeTeam, s.HomeRecord, verb, s.AwayTeam, s.AwayRecord, home, away)
	case home < away:
		return fmt.Sprintf("The %s (%s) %s the %s (%s), %d-%d",
			s.AwayTeam, s.AwayRecord, verb, s.HomeTeam, s.HomeRecord, away, home)
	default:
		return fmt.Sprintf("The %s (%s) are currently tied with the %s (%s), %d-%d",
			s.HomeTeam, s.HomeRecord, s.AwayTeam, s.AwayRecord, home, away)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Warn("telegram: send failed", "err", err)
	}
}

// clearKeyboard removes the inline keyboard from a delivered selection.
func (b *Bot) clearKeyboard(chatID int64, messageID int) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	if _, err := b.api.Request(edit); err != nil {
		b.logger.Debug("telegram: clear keyboard failed", "err", err)
	}
}
