package handler

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/shopmate/shopmate/internal/domain"
	"github.com/shopmate/shopmate/internal/middleware"
	"github.com/shopmate/shopmate/internal/render"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	chatID := update.Message.Chat.ID

	sess := middleware.GetSession(ctx)
	if !sess.Authenticated() {
		h.view.ShowLoginPrompt(ctx, chatID, false)
		return
	}
	h.enterChat(ctx, chatID, sess)
}

// enterChat is the authenticated landing sequence: welcome text, then the
// best-effort initial loads in the same order the original surface used.
func (h *Handler) enterChat(ctx context.Context, chatID int64, sess *domain.Session) {
	welcome := fmt.Sprintf(
		"👋 Welcome, <b>%s</b>!\n\n"+
			"Ask me anything about our catalog, or use:\n"+
			"/search [category] [min] [max] — browse products\n"+
			"/reset — start a new chat session\n"+
			"/logout — sign out",
		html.EscapeString(sess.Username()),
	)
	h.view.ShowText(ctx, chatID, welcome)

	h.loadCategories(ctx, chatID, sess)
	h.loadRecommendations(ctx, chatID, sess)
	h.loadHistory(ctx, chatID, sess)
}

// loadCategories caches the filter facets for /search. Optional enrichment:
// failure is logged, never shown.
func (h *Handler) loadCategories(ctx context.Context, chatID int64, sess *domain.Session) {
	cats, err := h.api.WithToken(sess.Token).Categories(ctx)
	if err != nil {
		slog.Debug("load categories", "error", err, "chat_id", chatID)
		return
	}
	if len(cats) == 0 {
		return
	}
	h.mu.Lock()
	h.categories[chatID] = cats
	h.mu.Unlock()
	h.view.ShowText(ctx, chatID, "🏷 Categories: "+html.EscapeString(strings.Join(cats, ", ")))
}

// loadRecommendations shows the recommendations region. Optional
// enrichment: failure is logged, never shown.
func (h *Handler) loadRecommendations(ctx context.Context, chatID int64, sess *domain.Session) {
	products, err := h.api.WithToken(sess.Token).Recommendations(ctx, h.cfg.RecommendationLimit)
	if err != nil {
		slog.Debug("load recommendations", "error", err, "chat_id", chatID)
		return
	}
	grid := render.ProductGrid(products, render.TargetRecommendations)
	if _, err := h.view.ShowProductGrid(ctx, chatID, "✨ <b>Recommended for you</b>", grid, products); err != nil {
		slog.Debug("show recommendations", "error", err, "chat_id", chatID)
	}
}

// loadHistory replays persisted turns in their original order, timestamps
// localized. Optional enrichment: failure is logged, never shown.
func (h *Handler) loadHistory(ctx context.Context, chatID int64, sess *domain.Session) {
	msgs, err := h.api.WithToken(sess.Token).History(ctx)
	if err != nil {
		slog.Debug("load history", "error", err, "chat_id", chatID)
		return
	}
	for _, m := range msgs {
		ts := render.HistoryTime(m.Timestamp, time.Local)
		content := render.Message(m.Content, h.conv)
		if m.Sender == domain.SenderUser {
			h.view.ShowUserTurn(ctx, chatID, content, ts)
		} else {
			h.view.ShowBotTurn(ctx, chatID, content, ts)
		}
	}
}
