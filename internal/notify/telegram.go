package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	logx "github.com/airep24/server/pkg/logger"
)

// Notifier alerts the merchant's operators about storefront events.
type Notifier interface {
	NewChat(shop, page, message string)
}

// TelegramNotifier posts new-chat alerts to a Telegram chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

// NewChat fires the notification in the background. Delivery failures are
// logged and never surface to the chat request.
func (n *TelegramNotifier) NewChat(shop, page, message string) {
	if page == "" {
		page = "Home"
	}
	text := fmt.Sprintf("<b>New AiRep24 Chat</b>\nStore: %s\nPage: %s\nMessage: %s", shop, page, message)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logx.Error().Interface("panic", r).Msg("telegram notify panicked")
			}
		}()
		msg := tgbotapi.NewMessage(n.chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := n.bot.Send(msg); err != nil {
			logx.Warn().Err(err).Str("shop", shop).Msg("telegram notify failed")
		}
	}()
}

// NoopNotifier is used when Telegram credentials are not configured.
type NoopNotifier struct{}

func (NoopNotifier) NewChat(shop, page, message string) {}
