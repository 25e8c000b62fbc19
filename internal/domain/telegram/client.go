package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
// The target chat is fixed at construction time; every message goes there.
type Client interface {
	SendMessage(text string, options *telebot.SendOptions) error
}
