package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/shopmate/shopmate/internal/config"
)

const MaxMessageLen = config.MaxTelegramMessageLen

// SendHTML sends a potentially long message in HTML parse mode, splitting it
// into parts if needed and falling back to plain text when Telegram rejects
// the markup. The keyboard is attached to the last part. Returns the last
// sent message.
func SendHTML(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) (*models.Message, error) {
	parts := SplitMessage(text, MaxMessageLen)

	var last *models.Message
	for i, part := range parts {
		params := &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      part,
			ParseMode: models.ParseModeHTML,
		}
		if markup != nil && i == len(parts)-1 {
			params.ReplyMarkup = markup
		}

		msg, err := b.SendMessage(ctx, params)
		if err != nil {
			slog.Warn("html send failed, falling back to plain text", "error", err)
			params.ParseMode = ""
			msg, err = b.SendMessage(ctx, params)
			if err != nil {
				return nil, fmt.Errorf("send message: %w", err)
			}
		}
		last = msg
	}

	return last, nil
}

// EditHTML edits a message in place, truncating overlong text.
func EditHTML(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string, markup models.ReplyMarkup) error {
	if len([]rune(text)) > MaxMessageLen {
		text = string([]rune(text)[:MaxMessageLen-3]) + "..."
	}

	params := &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	_, err := b.EditMessageText(ctx, params)
	if err != nil {
		params.ParseMode = ""
		_, err = b.EditMessageText(ctx, params)
	}
	return err
}

// StartTyping sends the typing action every 4 seconds until the returned
// cancel function is called. This is the loading indicator of the chat
// surface.
func StartTyping(ctx context.Context, b *bot.Bot, chatID int64) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(4 * time.Second)
		defer ticker.Stop()
		b.SendChatAction(ctx, &bot.SendChatActionParams{
			ChatID: chatID,
			Action: models.ChatActionTyping,
		})
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.SendChatAction(ctx, &bot.SendChatActionParams{
					ChatID: chatID,
					Action: models.ChatActionTyping,
				})
			}
		}
	}()
	return cancel
}

// SendPhotoURL sends a photo by remote URL with an HTML caption, falling
// back to a plain text message when Telegram cannot fetch the image.
func SendPhotoURL(ctx context.Context, b *bot.Bot, chatID int64, photoURL, caption string, markup models.ReplyMarkup) (*models.Message, error) {
	params := &bot.SendPhotoParams{
		ChatID:    chatID,
		Photo:     &models.InputFileString{Data: photoURL},
		Caption:   caption,
		ParseMode: models.ParseModeHTML,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	msg, err := b.SendPhoto(ctx, params)
	if err != nil {
		slog.Warn("photo send failed, falling back to text", "error", err, "url", photoURL)
		return SendHTML(ctx, b, chatID, caption, markup)
	}
	return msg, nil
}

// DeleteMessage removes a message from the chat surface.
func DeleteMessage(ctx context.Context, b *bot.Bot, chatID int64, messageID int) error {
	_, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	return err
}
