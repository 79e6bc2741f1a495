package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopmate/shopmate/internal/api"
	"github.com/shopmate/shopmate/internal/config"
	"github.com/shopmate/shopmate/internal/domain"
	"github.com/shopmate/shopmate/internal/render"
	"github.com/shopmate/shopmate/internal/repository"
	"github.com/shopmate/shopmate/internal/telegram"
)

// viewEvent is one recorded call on the fake view.
type viewEvent struct {
	kind      string
	text      string
	timestamp string
	msgID     int
}

// fakeView records every call the controllers make on the chat surface.
type fakeView struct {
	mu           sync.Mutex
	events       []viewEvent
	nextMsgID    int
	typingStarts int
	typingStops  int
}

func newFakeView() *fakeView {
	return &fakeView{nextMsgID: 100}
}

func (v *fakeView) record(e viewEvent) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, e)
}

func (v *fakeView) kinds() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.events))
	for i, e := range v.events {
		out[i] = e.kind
	}
	return out
}

func (v *fakeView) count(kind string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, e := range v.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func (v *fakeView) find(kind string) (viewEvent, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, e := range v.events {
		if e.kind == kind {
			return e, true
		}
	}
	return viewEvent{}, false
}

func (v *fakeView) ShowUserTurn(ctx context.Context, chatID int64, html, timestamp string) error {
	v.record(viewEvent{kind: "user_turn", text: html, timestamp: timestamp})
	return nil
}

func (v *fakeView) ShowBotTurn(ctx context.Context, chatID int64, html, timestamp string) error {
	v.record(viewEvent{kind: "bot_turn", text: html, timestamp: timestamp})
	return nil
}

func (v *fakeView) Typing(ctx context.Context, chatID int64) func() {
	v.mu.Lock()
	v.typingStarts++
	v.mu.Unlock()
	return func() {
		v.mu.Lock()
		v.typingStops++
		v.mu.Unlock()
	}
}

func (v *fakeView) ShowAlert(ctx context.Context, chatID int64, text string) error {
	v.record(viewEvent{kind: "alert", text: text})
	return nil
}

func (v *fakeView) ShowNotice(ctx context.Context, chatID int64, text string) error {
	v.record(viewEvent{kind: "notice", text: text})
	return nil
}

func (v *fakeView) ShowText(ctx context.Context, chatID int64, text string) error {
	v.record(viewEvent{kind: "text", text: text})
	return nil
}

func (v *fakeView) ShowLoginPrompt(ctx context.Context, chatID int64, showRegister bool) error {
	kind := "login_prompt"
	if showRegister {
		kind = "register_prompt"
	}
	v.record(viewEvent{kind: kind})
	return nil
}

func (v *fakeView) SwitchLoginPrompt(ctx context.Context, chatID int64, messageID int, showRegister bool) error {
	kind := "switch_to_login"
	if showRegister {
		kind = "switch_to_register"
	}
	v.record(viewEvent{kind: kind, msgID: messageID})
	return nil
}

func (v *fakeView) ShowProductGrid(ctx context.Context, chatID int64, heading string, grid render.GridView, products []domain.Product) (int, error) {
	v.mu.Lock()
	v.nextMsgID++
	id := v.nextMsgID
	v.mu.Unlock()
	v.record(viewEvent{kind: "grid", text: grid.Text, msgID: id})
	return id, nil
}

func (v *fakeView) ReplaceProductGrid(ctx context.Context, chatID int64, messageID int, heading string, grid render.GridView, products []domain.Product) (int, error) {
	v.mu.Lock()
	v.nextMsgID++
	id := v.nextMsgID
	v.mu.Unlock()
	v.record(viewEvent{kind: "replace_grid", text: grid.Text, msgID: messageID})
	return id, nil
}

func (v *fakeView) HideProductGrid(ctx context.Context, chatID int64, messageID int) error {
	v.record(viewEvent{kind: "hide_grid", msgID: messageID})
	return nil
}

func (v *fakeView) ShowProductDetail(ctx context.Context, chatID int64, photoURL, caption string) error {
	v.record(viewEvent{kind: "detail", text: caption})
	return nil
}

func (v *fakeView) CloseProductDetail(ctx context.Context, chatID int64, messageID int) error {
	v.record(viewEvent{kind: "close_detail", msgID: messageID})
	return nil
}

func (v *fakeView) ShowResetConfirm(ctx context.Context, chatID int64) error {
	v.record(viewEvent{kind: "reset_confirm"})
	return nil
}

func (v *fakeView) ReplaceText(ctx context.Context, chatID int64, messageID int, text string) error {
	v.record(viewEvent{kind: "replace_text", text: text, msgID: messageID})
	return nil
}

// newTestHandler wires a Handler against the given API base URL with a fake
// view and an in-memory session store.
func newTestHandler(t *testing.T, apiURL string) (*Handler, *fakeView, *repository.MemorySessions) {
	t.Helper()

	view := newFakeView()
	sessions := repository.NewMemorySessions()
	h := New(Deps{
		Cfg:       &config.Config{RecommendationLimit: 4, SearchLimit: 12},
		API:       api.NewClient(apiURL),
		Sessions:  sessions,
		View:      view,
		Converter: render.NewTelegramConverter(),
		Ops:       telegram.NewOpsLogger(nil, 0),
	})
	return h, view, sessions
}

// apiStub serves canned JSON per path; unknown paths answer success=false so
// optional loads stay silent.
func apiStub(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if body, ok := responses[r.URL.Path]; ok {
			w.Write([]byte(body))
			return
		}
		w.Write([]byte(`{"success":false}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}
