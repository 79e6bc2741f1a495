package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/shopmate/shopmate/internal/domain"
	"github.com/shopmate/shopmate/internal/render"
)

// HandleText routes plain private messages into the chat exchange. It is
// registered as the bot's default text handler.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}
	chatID := update.Message.Chat.ID

	sess := h.requireSession(ctx, chatID)
	if sess == nil {
		return
	}
	h.sendMessage(ctx, chatID, sess, update.Message.Text)
}

// sendMessage is one chat exchange: surface the user turn, show the loading
// indicator for the duration of the call, then surface exactly one bot turn
// whether the call succeeded or failed.
func (h *Handler) sendMessage(ctx context.Context, chatID int64, sess *domain.Session, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	// The user's turn is surfaced before the network call resolves.
	h.view.ShowUserTurn(ctx, chatID, render.Message(text, h.conv), "")

	stop := h.view.Typing(ctx, chatID)
	defer stop()

	reply, err := h.api.WithToken(sess.Token).SendMessage(ctx, text)
	if err != nil {
		if h.dropIfUnauthorized(ctx, chatID, err) {
			return
		}
		// Chat failures are a bot turn, never the alert banner.
		h.view.ShowBotTurn(ctx, chatID, render.Message("Error: "+err.Error(), nil), "")
		return
	}

	h.view.ShowBotTurn(ctx, chatID, render.Message(reply.Response, h.conv), "")

	if len(reply.Products) > 0 {
		h.showSearchResults(ctx, chatID, reply.Products)
	}
}

// showSearchResults renders the search results region, replacing the
// previous one rather than appending. An empty result hides the region and
// leaves only the placeholder.
func (h *Handler) showSearchResults(ctx context.Context, chatID int64, products []domain.Product) {
	grid := render.ProductGrid(products, render.TargetSearch)

	h.mu.Lock()
	prevID := h.searchMsgs[chatID]
	h.mu.Unlock()

	if grid.Hidden {
		if prevID != 0 {
			if err := h.view.HideProductGrid(ctx, chatID, prevID); err != nil {
				slog.Debug("hide search results", "error", err, "chat_id", chatID)
			}
			h.mu.Lock()
			delete(h.searchMsgs, chatID)
			h.mu.Unlock()
		}
		h.view.ShowText(ctx, chatID, grid.Text)
		return
	}

	msgID, err := h.view.ReplaceProductGrid(ctx, chatID, prevID, "🛍 <b>Products</b>", grid, products)
	if err != nil {
		slog.Debug("show search results", "error", err, "chat_id", chatID)
		return
	}
	h.mu.Lock()
	h.searchMsgs[chatID] = msgID
	h.mu.Unlock()
}
