// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"fmt"
	"strconv"

	"strategic_reminder/internal/domain/sender"

	"gopkg.in/telebot.v3"
)

// botSender is the part of *telebot.Bot the adapter needs.
type botSender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelebotAdapter implements sender.Sender using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot botSender
}

var _ sender.Sender = (*TelebotAdapter)(nil)

// NewTelebotAdapter creates an offline bot: it only sends and never polls for updates.
func NewTelebotAdapter(token string) (*TelebotAdapter, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   token,
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelebotAdapter{bot: b}, nil
}

// Send delivers msg.Body to the chat identified by msg.To and returns the Telegram message ID.
// msg.From is ignored: the bot is always the origin.
func (tba *TelebotAdapter) Send(ctx context.Context, msg sender.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	chatID, err := strconv.ParseInt(msg.To, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid telegram chat id %q: %w", msg.To, err)
	}

	sent, err := tba.bot.Send(telebot.ChatID(chatID), msg.Body, &telebot.SendOptions{DisableWebPagePreview: true})
	if err != nil {
		return "", fmt.Errorf("telegram send: %w", err)
	}
	return strconv.Itoa(sent.ID), nil
}
