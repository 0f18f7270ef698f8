package notify

import (
	"context"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"magis-backend/internal/models"
)

// Telegram delivers submission summaries as a photo with caption to a
// fixed chat. The underlying HTTP client is bounded to 10 seconds so a
// slow Bot API can never stall the submit pipeline for long.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	client := &http.Client{Timeout: 10 * time.Second}
	b, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, err
	}
	b.Debug = false
	return &Telegram{bot: b, chatID: chatID}, nil
}

func (t *Telegram) Notify(ctx context.Context, s models.Submission, att models.Attachment, stamp string) Status {
	photo := tgbotapi.NewPhoto(t.chatID, tgbotapi.FileBytes{
		Name:  att.Filename,
		Bytes: att.Data,
	})
	photo.Caption = Caption(s, stamp)
	photo.ParseMode = tgbotapi.ModeMarkdown

	resp, err := t.bot.Request(photo)
	if err == nil {
		return StatusSent
	}
	if resp != nil && resp.ErrorCode != 0 {
		// Bot API answered but rejected the request.
		log.Printf("telegram: sendPhoto rejected (%d): %v", resp.ErrorCode, err)
		return StatusFailed
	}
	log.Printf("telegram: sendPhoto: %v", err)
	return StatusException
}
