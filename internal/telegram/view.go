package telegram

import (
	"context"
	"html"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/shopmate/shopmate/internal/domain"
	"github.com/shopmate/shopmate/internal/render"
)

// View applies rendered output to the live chat surface. It is the
// imperative counterpart of the pure functions in internal/render.
type View struct {
	b *bot.Bot
}

func NewView(b *bot.Bot) *View {
	return &View{b: b}
}

// ShowUserTurn surfaces a user message. Telegram already displays the
// sender's own outgoing message, so only replayed turns (those carrying a
// timestamp) are rendered.
func (v *View) ShowUserTurn(ctx context.Context, chatID int64, htmlText, timestamp string) error {
	if timestamp == "" {
		return nil
	}
	_, err := SendHTML(ctx, v.b, chatID, "🧑 <i>"+html.EscapeString(timestamp)+"</i>\n"+htmlText, nil)
	return err
}

// ShowBotTurn surfaces an assistant message, with a timestamp prefix when
// replayed from history.
func (v *View) ShowBotTurn(ctx context.Context, chatID int64, htmlText, timestamp string) error {
	if timestamp != "" {
		htmlText = "🤖 <i>" + html.EscapeString(timestamp) + "</i>\n" + htmlText
	}
	_, err := SendHTML(ctx, v.b, chatID, htmlText, nil)
	return err
}

// Typing runs the loading indicator until the returned stop function is
// called.
func (v *View) Typing(ctx context.Context, chatID int64) func() {
	cancel := StartTyping(ctx, v.b, chatID)
	return func() { cancel() }
}

func (v *View) ShowAlert(ctx context.Context, chatID int64, text string) error {
	_, err := SendHTML(ctx, v.b, chatID, "⚠️ "+html.EscapeString(text), nil)
	return err
}

func (v *View) ShowNotice(ctx context.Context, chatID int64, text string) error {
	_, err := SendHTML(ctx, v.b, chatID, "✅ "+html.EscapeString(text), nil)
	return err
}

func (v *View) ShowText(ctx context.Context, chatID int64, text string) error {
	_, err := SendHTML(ctx, v.b, chatID, text, nil)
	return err
}

func loginPromptText(showRegister bool) string {
	if showRegister {
		return "📝 <b>Create an account</b>\n\n" +
			"Send /register &lt;username&gt; &lt;email&gt; &lt;password&gt;"
	}
	return "🔐 <b>Sign in</b>\n\n" +
		"Send /login &lt;username&gt; &lt;password&gt;"
}

// ShowLoginPrompt presents the two-state auth form as a fresh message.
func (v *View) ShowLoginPrompt(ctx context.Context, chatID int64, showRegister bool) error {
	_, err := SendHTML(ctx, v.b, chatID, loginPromptText(showRegister), LoginPromptKeyboard(showRegister))
	return err
}

// SwitchLoginPrompt toggles the existing form in place, which also discards
// any alert previously shown on it.
func (v *View) SwitchLoginPrompt(ctx context.Context, chatID int64, messageID int, showRegister bool) error {
	return EditHTML(ctx, v.b, chatID, messageID, loginPromptText(showRegister), LoginPromptKeyboard(showRegister))
}

// ShowProductGrid renders a product region and returns its message id so a
// later search can replace it.
func (v *View) ShowProductGrid(ctx context.Context, chatID int64, heading string, grid render.GridView, products []domain.Product) (int, error) {
	text := grid.Text
	if heading != "" {
		text = heading + "\n\n" + text
	}
	msg, err := SendHTML(ctx, v.b, chatID, text, gridMarkup(products))
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// ReplaceProductGrid edits the previous region in place; when that is no
// longer possible it falls back to a fresh message.
func (v *View) ReplaceProductGrid(ctx context.Context, chatID int64, messageID int, heading string, grid render.GridView, products []domain.Product) (int, error) {
	text := grid.Text
	if heading != "" {
		text = heading + "\n\n" + text
	}
	if messageID != 0 {
		if err := EditHTML(ctx, v.b, chatID, messageID, text, gridMarkup(products)); err == nil {
			return messageID, nil
		}
	}
	msg, err := SendHTML(ctx, v.b, chatID, text, gridMarkup(products))
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// HideProductGrid removes the region from the surface.
func (v *View) HideProductGrid(ctx context.Context, chatID int64, messageID int) error {
	return DeleteMessage(ctx, v.b, chatID, messageID)
}

// ShowProductDetail opens the modal: photo, caption, close button.
func (v *View) ShowProductDetail(ctx context.Context, chatID int64, photoURL, caption string) error {
	_, err := SendPhotoURL(ctx, v.b, chatID, photoURL, caption, DetailKeyboard())
	return err
}

func (v *View) CloseProductDetail(ctx context.Context, chatID int64, messageID int) error {
	return DeleteMessage(ctx, v.b, chatID, messageID)
}

func (v *View) ShowResetConfirm(ctx context.Context, chatID int64) error {
	_, err := SendHTML(ctx, v.b, chatID,
		"Are you sure you want to start a new chat session?", ConfirmResetKeyboard())
	return err
}

func (v *View) ReplaceText(ctx context.Context, chatID int64, messageID int, text string) error {
	return EditHTML(ctx, v.b, chatID, messageID, text, nil)
}

func gridMarkup(products []domain.Product) models.ReplyMarkup {
	if len(products) == 0 {
		return nil
	}
	return ProductButtons(products)
}
