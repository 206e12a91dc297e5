package telegram

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/samber/oops"
)

// Mirror forwards alert texts to a Telegram chat
type Mirror struct {
	bot    *bot.Bot
	chatID string
}

// NewMirror creates a send-only Telegram client for chatID. serverURL
// overrides the Bot API base URL when set.
func NewMirror(token, serverURL, chatID string) (*Mirror, error) {
	opts := []bot.Option{bot.WithSkipGetMe()}
	if serverURL != "" {
		opts = append(opts, bot.WithServerURL(serverURL))
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
	}

	return &Mirror{bot: b, chatID: chatID}, nil
}

// MirrorAlert sends text to the configured chat
func (m *Mirror) MirrorAlert(ctx context.Context, text string) error {
	_, err := m.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: m.chatID,
		Text:   text,
	})
	if err != nil {
		return oops.With("chat_id", m.chatID, "context", "failed to send telegram message").Wrap(err)
	}
	return nil
}
