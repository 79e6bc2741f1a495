package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
)

// OpsLogger mirrors notable events into an admin chat. A zero chat id
// disables it.
type OpsLogger struct {
	bot    *bot.Bot
	chatID int64
}

func NewOpsLogger(b *bot.Bot, chatID int64) *OpsLogger {
	return &OpsLogger{bot: b, chatID: chatID}
}

func (l *OpsLogger) LogRegistration(username string) {
	l.send(fmt.Sprintf("👤 New registration: %s", username))
}

func (l *OpsLogger) LogLogin(username string) {
	l.send(fmt.Sprintf("🔐 Login: %s", username))
}

func (l *OpsLogger) LogError(where string, err error) {
	l.send(fmt.Sprintf("❌ %s: %v", where, err))
}

func (l *OpsLogger) send(message string) {
	if l == nil || l.chatID == 0 {
		return
	}

	if len([]rune(message)) > MaxMessageLen {
		message = string([]rune(message)[:MaxMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := l.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: l.chatID,
		Text:   message,
	})
	if err != nil {
		slog.Error("failed to send ops log", "error", err)
	}
}
