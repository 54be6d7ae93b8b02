// Package bot runs the Telegram side of the app: the /start entry point
// with the mini-app button, and outgoing admin broadcasts.
package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const startText = "Где мои деньги?... 💰\nТвой личный контроль бюджета прямо в Telegram."

type Bot struct {
	api       *tgbotapi.BotAPI
	webAppURL string
}

func New(token, webAppURL string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	return &Bot{api: api, webAppURL: webAppURL}, nil
}

// Username returns the authorized bot account name.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Run long-polls for updates until the context is cancelled. Only /start
// is handled; everything else happens inside the mini app.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			if update.Message.Command() == "start" {
				b.handleStart(update.Message)
			}
		}
	}
}

// The pinned bot library predates Bot API 6.0 web-app buttons, so the
// reply markup is built by hand; BaseChat serializes ReplyMarkup as-is.
type webAppInfo struct {
	URL string `json:"url"`
}

type inlineButton struct {
	Text   string      `json:"text"`
	WebApp *webAppInfo `json:"web_app,omitempty"`
}

type inlineKeyboard struct {
	InlineKeyboard [][]inlineButton `json:"inline_keyboard"`
}

func startKeyboard(webAppURL string) inlineKeyboard {
	return inlineKeyboard{
		InlineKeyboard: [][]inlineButton{{
			{Text: "Открыть приложение 📱", WebApp: &webAppInfo{URL: webAppURL}},
		}},
	}
}

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, startText)
	reply.ReplyMarkup = startKeyboard(b.webAppURL)
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("send start reply to %d: %v", msg.Chat.ID, err)
	}
}

// Send delivers a plain text message to one chat.
func (b *Bot) Send(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
