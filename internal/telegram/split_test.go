package telegram

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitMessageShort(t *testing.T) {
	assert.Equal(t, []string{"hello"}, SplitMessage("hello", 100))
}

func TestSplitMessagePrefersNewlineBoundary(t *testing.T) {
	text := strings.Repeat("a", 60) + "\n" + strings.Repeat("b", 60)

	parts := SplitMessage(text, 70)
	assert.Equal(t, []string{
		strings.Repeat("a", 60) + "\n",
		strings.Repeat("b", 60),
	}, parts)
}

func TestSplitMessageHardBreakWithoutNewline(t *testing.T) {
	text := strings.Repeat("x", 150)

	parts := SplitMessage(text, 70)
	assert.Len(t, parts, 3)
	for _, part := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(part), 70)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestSplitMessageMultibyteWithNewline(t *testing.T) {
	// Emoji are multiple bytes per rune; the newline boundary must be found
	// in rune terms, not byte terms.
	text := strings.Repeat("😀", 4000) + "\n" + strings.Repeat("a", 200)

	parts := SplitMessage(text, 4096)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, part := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(part), 4096)
	}
}

func TestSplitMessageMultibyteWithoutNewline(t *testing.T) {
	text := strings.Repeat("знач", 60)

	parts := SplitMessage(text, 70)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, part := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(part), 70)
	}
}

func TestSplitMessageLosesNothing(t *testing.T) {
	text := strings.Repeat("line of text\n", 40)

	parts := SplitMessage(text, 100)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, part := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(part), 100)
	}
}
