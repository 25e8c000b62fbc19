// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3
// library. All messages go to the single chat fixed at construction time.
type TelebotAdapter struct {
	bot    *telebot.Bot
	chatID int64
}

func NewTelebotAdapter(b *telebot.Bot, chatID int64) *TelebotAdapter {
	return &TelebotAdapter{bot: b, chatID: chatID}
}

// SendMessage sends exactly one text message to the configured chat. There is
// no internal retry; a retry happens naturally on the next loop iteration.
func (tba *TelebotAdapter) SendMessage(text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	recipient := &telebot.User{ID: tba.chatID}
	if _, err := tba.bot.Send(recipient, text, options); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}
