package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	chatID := update.Message.Chat.ID

	args := strings.Fields(update.Message.Text)
	if len(args) != 3 {
		h.view.ShowAlert(ctx, chatID, "Usage: /login <username> <password>")
		return
	}
	// Credentials should not linger in the chat.
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: update.Message.ID,
	})

	h.login(ctx, chatID, args[1], args[2])
}

// login attempts the credential exchange. On any failure the form stays put
// and the message lands on the alert banner.
func (h *Handler) login(ctx context.Context, chatID int64, username, password string) {
	sess, err := h.api.Login(ctx, username, password)
	if err != nil {
		h.view.ShowAlert(ctx, chatID, err.Error())
		return
	}

	if err := h.sessions.Put(ctx, chatID, sess); err != nil {
		slog.Error("store session", "error", err, "chat_id", chatID)
		h.view.ShowAlert(ctx, chatID, "Could not save your session. Please try again.")
		return
	}

	h.ops.LogLogin(sess.Username())
	h.enterChat(ctx, chatID, sess)
}

func (h *Handler) handleRegister(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	chatID := update.Message.Chat.ID

	args := strings.Fields(update.Message.Text)
	if len(args) != 4 {
		h.view.ShowAlert(ctx, chatID, "Usage: /register <username> <email> <password>")
		return
	}
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: update.Message.ID,
	})

	h.register(ctx, chatID, args[1], args[2], args[3])
}

// register attempts account creation; success transitions back to the
// sign-in form.
func (h *Handler) register(ctx context.Context, chatID int64, username, email, password string) {
	if _, err := h.api.Register(ctx, username, email, password); err != nil {
		// Stay on the registration form.
		h.view.ShowAlert(ctx, chatID, err.Error())
		return
	}

	h.ops.LogRegistration(username)
	h.view.ShowNotice(ctx, chatID, "Registration successful! Please sign in.")
	h.view.ShowLoginPrompt(ctx, chatID, false)
}

func (h *Handler) handleShowLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.switchAuthForm(ctx, b, update, false)
}

func (h *Handler) handleShowRegister(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.switchAuthForm(ctx, b, update, true)
}

// switchAuthForm toggles the auth form in place, discarding any alert shown
// on it.
func (h *Handler) switchAuthForm(ctx context.Context, b *bot.Bot, update *models.Update, showRegister bool) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: cb.ID})

	if cb.Message.Message == nil {
		return
	}
	msg := cb.Message.Message
	if err := h.view.SwitchLoginPrompt(ctx, msg.Chat.ID, msg.ID, showRegister); err != nil {
		slog.Debug("switch auth form", "error", err)
	}
}
