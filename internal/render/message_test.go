package render

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type failingConverter struct{}

func (failingConverter) Convert(string) (string, error) { return "", errors.New("boom") }

func TestCleanMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"enclosing quotes stripped", `"hello"`, "hello"},
		{"inner quotes kept", `say "hi" now`, `say "hi" now`},
		{"single quote char", `"`, `"`},
		{"think span removed", "a<think>x</think>b", "ab"},
		{"think span case insensitive", "a<THINK>x</THINK>b", "ab"},
		{"think span across lines", "a<think>x\ny</think>b", "ab"},
		{"only think span", "<think>reasoning</think>", ""},
		{"two think spans", "<think>a</think>keep<think>b</think>", "keep"},
		{"surrounding whitespace", "  hi  ", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMessage(tt.in))
		})
	}
}

func TestMessageWithoutConverterEscapes(t *testing.T) {
	got := Message("<b>hi</b> & bye", nil)
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt; &amp; bye", got)
}

func TestMessageWithoutConverterKeepsNewlines(t *testing.T) {
	assert.Equal(t, "line one\nline two", Message("line one\nline two", nil))
}

func TestMessageConverterFailureFallsBack(t *testing.T) {
	got := Message("<b>hi</b>", failingConverter{})
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", got)
}

func TestMessageCleansBeforeConverting(t *testing.T) {
	conv := NewTelegramConverter()
	got := Message(`"<think>secret</think>**hi**"`, conv)
	assert.Equal(t, "<b>hi</b>", got)
}

func TestHistoryTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"server layout", "2024-01-02 10:30:00", "13:30"},
		{"rfc3339 fallback", "2024-01-02T10:30:00Z", "13:30"},
		{"unparseable shown verbatim", "yesterday", "yesterday"},
		{"empty shown verbatim", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HistoryTime(tt.in, loc))
		})
	}
}
