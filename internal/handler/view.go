package handler

import (
	"context"

	"github.com/shopmate/shopmate/internal/domain"
	"github.com/shopmate/shopmate/internal/render"
)

// View is the live chat surface the controllers drive. The Telegram
// implementation lives in internal/telegram; tests use a recording fake.
type View interface {
	// Conversation turns. A turn with an empty timestamp is live; a
	// timestamped one is replayed from history.
	ShowUserTurn(ctx context.Context, chatID int64, html, timestamp string) error
	ShowBotTurn(ctx context.Context, chatID int64, html, timestamp string) error

	// Typing starts the loading indicator and returns its stop function.
	Typing(ctx context.Context, chatID int64) func()

	// Alert banner, success notice and plain text.
	ShowAlert(ctx context.Context, chatID int64, text string) error
	ShowNotice(ctx context.Context, chatID int64, text string) error
	ShowText(ctx context.Context, chatID int64, text string) error

	// The two-state auth form.
	ShowLoginPrompt(ctx context.Context, chatID int64, showRegister bool) error
	SwitchLoginPrompt(ctx context.Context, chatID int64, messageID int, showRegister bool) error

	// Product regions. Show and Replace return the region's message id.
	ShowProductGrid(ctx context.Context, chatID int64, heading string, grid render.GridView, products []domain.Product) (int, error)
	ReplaceProductGrid(ctx context.Context, chatID int64, messageID int, heading string, grid render.GridView, products []domain.Product) (int, error)
	HideProductGrid(ctx context.Context, chatID int64, messageID int) error

	// Product detail modal.
	ShowProductDetail(ctx context.Context, chatID int64, photoURL, caption string) error
	CloseProductDetail(ctx context.Context, chatID int64, messageID int) error

	// Reset confirmation and in-place edits.
	ShowResetConfirm(ctx context.Context, chatID int64) error
	ReplaceText(ctx context.Context, chatID int64, messageID int, text string) error
}
