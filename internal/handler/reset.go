package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleReset(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	chatID := update.Message.Chat.ID

	sess := h.requireSession(ctx, chatID)
	if sess == nil {
		return
	}

	// Resetting drops the server-side conversation; always confirm first.
	h.view.ShowResetConfirm(ctx, chatID)
}

func (h *Handler) handleResetConfirm(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	if cb.Message.Message == nil {
		return
	}
	msg := cb.Message.Message
	chatID := msg.Chat.ID

	sess := h.requireSession(ctx, chatID)
	if sess == nil {
		return
	}

	stop := h.view.Typing(ctx, chatID)
	defer stop()

	if err := h.api.WithToken(sess.Token).ResetChat(ctx); err != nil {
		if h.dropIfUnauthorized(ctx, chatID, err) {
			return
		}
		h.view.ShowAlert(ctx, chatID, "Failed to reset chat session.")
		return
	}

	h.view.ReplaceText(ctx, chatID, msg.ID, "🔄 New chat session started.")

	// The whole view reloads, so the old results region is stale.
	h.forgetChatState(chatID)
	h.enterChat(ctx, chatID, sess)
}

func (h *Handler) handleResetCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	if cb.Message.Message == nil {
		return
	}
	msg := cb.Message.Message
	h.view.ReplaceText(ctx, msg.Chat.ID, msg.ID, "Reset cancelled.")
}
