package telegram

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/shopmate/shopmate/internal/domain"
)

// Callback data exchanged between keyboards and the handler registrations.
const (
	CallbackShowLogin    = "show_login"
	CallbackShowRegister = "show_register"
	CallbackProduct      = "prod_"
	CallbackResetConfirm = "reset_confirm"
	CallbackResetCancel  = "reset_cancel"
	CallbackCloseDetail  = "close_detail"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// LoginPromptKeyboard is the toggle between the sign-in and sign-up forms.
func LoginPromptKeyboard(showRegister bool) *models.InlineKeyboardMarkup {
	if showRegister {
		return InlineKeyboard(ButtonRow(InlineButton("Already have an account? Sign in", CallbackShowLogin)))
	}
	return InlineKeyboard(ButtonRow(InlineButton("Need an account? Register", CallbackShowRegister)))
}

// ProductButtons builds one "View details" button row per product.
func ProductButtons(products []domain.Product) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(products))
	for _, p := range products {
		rows = append(rows, ButtonRow(InlineButton(
			"🔍 "+p.Name,
			fmt.Sprintf("%s%d", CallbackProduct, p.ID),
		)))
	}
	return InlineKeyboard(rows...)
}

// DetailKeyboard closes the product detail "modal".
func DetailKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(InlineButton("✖️ Close", CallbackCloseDetail)))
}

// ConfirmResetKeyboard asks before dropping the chat session.
func ConfirmResetKeyboard() *models.InlineKeyboardMarkup {
	return InlineKeyboard(ButtonRow(
		InlineButton("✅ Yes, start over", CallbackResetConfirm),
		InlineButton("Cancel", CallbackResetCancel),
	))
}
