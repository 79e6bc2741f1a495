package handler

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/go-telegram/bot"

	"github.com/shopmate/shopmate/internal/api"
	"github.com/shopmate/shopmate/internal/config"
	"github.com/shopmate/shopmate/internal/domain"
	"github.com/shopmate/shopmate/internal/middleware"
	"github.com/shopmate/shopmate/internal/render"
	"github.com/shopmate/shopmate/internal/repository"
	"github.com/shopmate/shopmate/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot      *bot.Bot
	cfg      *config.Config
	api      *api.Client
	sessions repository.SessionRepository
	view     View
	conv     render.Converter
	ops      *telegram.OpsLogger

	mu         sync.Mutex
	searchMsgs map[int64]int      // chat id -> last search results message
	categories map[int64][]string // chat id -> cached filter facets
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot       *bot.Bot
	Cfg       *config.Config
	API       *api.Client
	Sessions  repository.SessionRepository
	View      View
	Converter render.Converter
	Ops       *telegram.OpsLogger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:        deps.Bot,
		cfg:        deps.Cfg,
		api:        deps.API,
		sessions:   deps.Sessions,
		view:       deps.View,
		conv:       deps.Converter,
		ops:        deps.Ops,
		searchMsgs: make(map[int64]int),
		categories: make(map[int64][]string),
	}
}

// requireSession returns the chat's session, or shows the login prompt and
// returns nil. Unauthenticated chats never reach the chat surface.
func (h *Handler) requireSession(ctx context.Context, chatID int64) *domain.Session {
	sess := middleware.GetSession(ctx)
	if sess.Authenticated() {
		return sess
	}
	h.view.ShowLoginPrompt(ctx, chatID, false)
	return nil
}

// dropIfUnauthorized clears the stored session when the server rejected the
// bearer token and sends the user back to the login prompt. Reports whether
// it did so.
func (h *Handler) dropIfUnauthorized(ctx context.Context, chatID int64, err error) bool {
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) || !reqErr.Unauthorized() {
		return false
	}
	if clearErr := h.sessions.Clear(ctx, chatID); clearErr != nil {
		slog.Error("clear session after 401", "error", clearErr, "chat_id", chatID)
	}
	h.forgetChatState(chatID)
	h.view.ShowAlert(ctx, chatID, "Your session has expired. Please sign in again.")
	h.view.ShowLoginPrompt(ctx, chatID, false)
	return true
}

func (h *Handler) forgetChatState(chatID int64) {
	h.mu.Lock()
	delete(h.searchMsgs, chatID)
	delete(h.categories, chatID)
	h.mu.Unlock()
}
