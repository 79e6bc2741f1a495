package handler

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shopspring/decimal"

	"github.com/shopmate/shopmate/internal/api"
	"github.com/shopmate/shopmate/internal/domain"
)

func (h *Handler) handleSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	chatID := update.Message.Chat.ID

	sess := h.requireSession(ctx, chatID)
	if sess == nil {
		return
	}

	filter, err := h.parseSearchArgs(update.Message.Text)
	if err != nil {
		h.view.ShowText(ctx, chatID, h.searchUsage(chatID))
		return
	}
	h.searchProducts(ctx, chatID, sess, filter)
}

// parseSearchArgs reads "/search [category] [min] [max]". A "-" skips a
// position; only the filled positions end up in the query.
func (h *Handler) parseSearchArgs(text string) (api.SearchFilter, error) {
	f := api.SearchFilter{Limit: h.cfg.SearchLimit}

	args := strings.Fields(text)
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) > 0 && args[0] != "-" {
		f.Category = args[0]
	}
	if len(args) > 1 && args[1] != "-" {
		min, err := decimal.NewFromString(args[1])
		if err != nil {
			return f, fmt.Errorf("bad min price %q", args[1])
		}
		f.MinPrice = &min
	}
	if len(args) > 2 && args[2] != "-" {
		max, err := decimal.NewFromString(args[2])
		if err != nil {
			return f, fmt.Errorf("bad max price %q", args[2])
		}
		f.MaxPrice = &max
	}
	return f, nil
}

func (h *Handler) searchUsage(chatID int64) string {
	usage := "Usage: /search [category] [min_price] [max_price]\nUse - to skip a field."

	h.mu.Lock()
	cats := h.categories[chatID]
	h.mu.Unlock()

	if len(cats) > 0 {
		usage += "\n\n🏷 Categories: " + html.EscapeString(strings.Join(cats, ", "))
	}
	return usage
}

// searchProducts fetches and re-renders the search result region. Failures
// are silent: search is an enrichment, not the critical path.
func (h *Handler) searchProducts(ctx context.Context, chatID int64, sess *domain.Session, filter api.SearchFilter) {
	stop := h.view.Typing(ctx, chatID)
	defer stop()

	products, err := h.api.WithToken(sess.Token).SearchProducts(ctx, filter)
	if err != nil {
		if h.dropIfUnauthorized(ctx, chatID, err) {
			return
		}
		slog.Debug("search products", "error", err, "chat_id", chatID)
		return
	}
	h.showSearchResults(ctx, chatID, products)
}
