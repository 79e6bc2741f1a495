package render

import (
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/shopmate/shopmate/internal/config"
)

// Hidden reasoning spans are stripped before display: non-greedy,
// case-insensitive, may cross lines.
var thinkRe = regexp.MustCompile(`(?is)<think>.*?</think>`)

// Converter turns Markdown into display markup. It is treated as a black
// box; any error falls back to plain escaped text.
type Converter interface {
	Convert(markdown string) (string, error)
}

// CleanMessage strips one layer of enclosing double quotes and removes any
// hidden reasoning spans, then trims surrounding whitespace.
func CleanMessage(content string) string {
	if len(content) >= 2 && strings.HasPrefix(content, `"`) && strings.HasSuffix(content, `"`) {
		content = content[1 : len(content)-1]
	}
	return strings.TrimSpace(thinkRe.ReplaceAllString(content, ""))
}

// Message renders one turn's content. With no converter, or a failing one,
// the text is escaped literally; line breaks are kept as-is.
func Message(content string, conv Converter) string {
	content = CleanMessage(content)
	if conv != nil {
		if out, err := conv.Convert(content); err == nil {
			return out
		}
	}
	return html.EscapeString(content)
}

// HistoryTime converts a persisted UTC timestamp to a short local
// time-of-day string. Unparseable input is shown verbatim rather than
// dropped.
func HistoryTime(ts string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(config.HistoryTimestampLayout, ts, time.UTC)
	if err != nil {
		t, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return ts
		}
	}
	return t.In(loc).Format("15:04")
}
