package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramConverterConvert(t *testing.T) {
	conv := NewTelegramConverter()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain paragraph", "hello", "hello"},
		{"two paragraphs", "first\n\nsecond", "first\n\nsecond"},
		{"bold and italic", "**bold** and _italic_", "<b>bold</b> and <i>italic</i>"},
		{"strikethrough", "~~gone~~", "<s>gone</s>"},
		{"heading becomes bold", "# Title\n\nbody", "<b>Title</b>\n\nbody"},
		{"unordered list", "- first\n- second", "• first\n• second"},
		{"ordered list", "1. one\n2. two", "1. one\n2. two"},
		{"inline code", "run `x := 1` now", "run <code>x := 1</code> now"},
		{"fenced code block", "```\nx := 1\n```", "<pre>x := 1</pre>"},
		{"link", "[site](https://example.com)", `<a href="https://example.com">site</a>`},
		{"text is escaped", "5 < 6 & 7", "5 &lt; 6 &amp; 7"},
		{"blockquote", "> quoted", "<blockquote>quoted</blockquote>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTelegramConverterCollapsesBlankRuns(t *testing.T) {
	conv := NewTelegramConverter()

	got, err := conv.Convert("# One\n\n# Two\n\ntext")
	require.NoError(t, err)
	assert.NotContains(t, got, "\n\n\n")
}
