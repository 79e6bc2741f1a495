package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/shopmate/shopmate/internal/middleware"
)

// handleLogout clears the stored session unconditionally. The server-side
// logout is best-effort; its failure never blocks signing out locally.
func (h *Handler) handleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	chatID := update.Message.Chat.ID

	sess := middleware.GetSession(ctx)
	if sess.Authenticated() {
		if err := h.api.WithToken(sess.Token).Logout(ctx); err != nil {
			slog.Debug("server logout", "error", err, "chat_id", chatID)
		}
	}

	if err := h.sessions.Clear(ctx, chatID); err != nil {
		slog.Error("clear session", "error", err, "chat_id", chatID)
	}
	h.forgetChatState(chatID)

	h.view.ShowText(ctx, chatID, "👋 You have been signed out.")
	h.view.ShowLoginPrompt(ctx, chatID, false)
}
