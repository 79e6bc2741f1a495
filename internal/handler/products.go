package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/shopmate/shopmate/internal/domain"
	"github.com/shopmate/shopmate/internal/middleware"
	"github.com/shopmate/shopmate/internal/render"
	"github.com/shopmate/shopmate/internal/telegram"
)

func (h *Handler) handleProductDetail(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	if cb.Message.Message == nil {
		return
	}
	chatID := cb.Message.Message.Chat.ID

	sess := middleware.GetSession(ctx)
	if !sess.Authenticated() {
		h.view.ShowLoginPrompt(ctx, chatID, false)
		return
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(cb.Data, telegram.CallbackProduct), 10, 64)
	if err != nil {
		return
	}
	h.showProductDetail(ctx, chatID, sess, id)
}

// showProductDetail fetches one product and opens the modal. Failure leaves
// the modal unopened; the user is not alarmed over optional content.
func (h *Handler) showProductDetail(ctx context.Context, chatID int64, sess *domain.Session, productID int64) {
	stop := h.view.Typing(ctx, chatID)
	defer stop()

	p, err := h.api.WithToken(sess.Token).ProductByID(ctx, productID)
	if err != nil {
		if h.dropIfUnauthorized(ctx, chatID, err) {
			return
		}
		slog.Debug("product detail", "error", err, "product_id", productID)
		return
	}

	if err := h.view.ShowProductDetail(ctx, chatID, render.DetailImage(*p), render.ProductDetail(*p)); err != nil {
		slog.Debug("show product detail", "error", err, "product_id", productID)
	}
}

func (h *Handler) handleCloseDetail(ctx context.Context, b *bot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	if cb.Message.Message == nil {
		return
	}
	msg := cb.Message.Message
	if err := h.view.CloseProductDetail(ctx, msg.Chat.ID, msg.ID); err != nil {
		slog.Debug("close product detail", "error", err)
	}
}
