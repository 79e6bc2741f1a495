package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/shopmate/shopmate/internal/telegram"
)

// Recover returns middleware that recovers from panics, reporting them to the
// ops chat when one is configured.
func Recover(ops *telegram.OpsLogger) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("panic recovered in handler",
						"panic", r,
						"stack", string(debug.Stack()),
					)
					ops.LogError("handler panic", fmt.Errorf("%v", r))
				}
			}()
			next(ctx, b, update)
		}
	}
}
