package handler

import (
	"github.com/go-telegram/bot"

	"github.com/shopmate/shopmate/internal/telegram"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypePrefix, h.handleLogin)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/register", bot.MatchTypePrefix, h.handleRegister)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/search", bot.MatchTypePrefix, h.handleSearch)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/reset", bot.MatchTypePrefix, h.handleReset)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypePrefix, h.handleLogout)

	// Auth form callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackShowLogin, bot.MatchTypeExact, h.handleShowLogin)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackShowRegister, bot.MatchTypeExact, h.handleShowRegister)

	// Product callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackProduct, bot.MatchTypePrefix, h.handleProductDetail)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackCloseDetail, bot.MatchTypeExact, h.handleCloseDetail)

	// Reset confirmation callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackResetConfirm, bot.MatchTypeExact, h.handleResetConfirm)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, telegram.CallbackResetCancel, bot.MatchTypeExact, h.handleResetCancel)
}
