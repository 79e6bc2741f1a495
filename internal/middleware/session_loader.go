package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/shopmate/shopmate/internal/domain"
	"github.com/shopmate/shopmate/internal/repository"
)

type ctxKey string

const SessionKey ctxKey = "session"

// GetSession extracts the stored session from context. Nil means the chat is
// not authenticated.
func GetSession(ctx context.Context) *domain.Session {
	s, ok := ctx.Value(SessionKey).(*domain.Session)
	if !ok {
		return nil
	}
	return s
}

// SessionLoader returns middleware that loads the chat's stored session into
// context. A missing session is normal; a store failure is logged and the
// update proceeds unauthenticated.
func SessionLoader(sessions repository.SessionRepository) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var chatID int64

			if update.Message != nil {
				chatID = update.Message.Chat.ID
			} else if update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil {
				chatID = update.CallbackQuery.Message.Message.Chat.ID
			}

			if chatID == 0 {
				next(ctx, b, update)
				return
			}

			sess, err := sessions.Get(ctx, chatID)
			if err != nil {
				if !errors.Is(err, domain.ErrNoSession) {
					slog.Error("load session", "error", err, "chat_id", chatID)
				}
				next(ctx, b, update)
				return
			}

			next(context.WithValue(ctx, SessionKey, sess), b, update)
		}
	}
}
