package render

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	xhtml "golang.org/x/net/html"
)

// TelegramConverter renders Markdown through goldmark and then flattens the
// HTML to the tag subset Telegram accepts (b, i, u, s, code, pre, a,
// blockquote). Unsupported elements keep their text content.
type TelegramConverter struct {
	md goldmark.Markdown
}

func NewTelegramConverter() *TelegramConverter {
	return &TelegramConverter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

func (c *TelegramConverter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return "", fmt.Errorf("parse converted html: %w", err)
	}

	body := doc.Find("body")
	if len(body.Nodes) == 0 {
		return "", fmt.Errorf("converted html has no body")
	}

	var sb strings.Builder
	renderChildren(&sb, body.Nodes[0])
	return strings.TrimSpace(blankRunRe.ReplaceAllString(sb.String(), "\n\n")), nil
}

func renderChildren(sb *strings.Builder, n *xhtml.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		renderNode(sb, child)
	}
}

func renderNode(sb *strings.Builder, n *xhtml.Node) {
	switch n.Type {
	case xhtml.TextNode:
		sb.WriteString(html.EscapeString(n.Data))
	case xhtml.ElementNode:
		renderElement(sb, n)
	}
}

func renderElement(sb *strings.Builder, n *xhtml.Node) {
	switch n.Data {
	case "b", "strong":
		wrap(sb, n, "b")
	case "i", "em":
		wrap(sb, n, "i")
	case "u", "ins":
		wrap(sb, n, "u")
	case "s", "del", "strike":
		wrap(sb, n, "s")
	case "code":
		// A code child of pre is emitted by the pre branch.
		if n.Parent != nil && n.Parent.Data == "pre" {
			renderChildren(sb, n)
			return
		}
		wrap(sb, n, "code")
	case "pre":
		sb.WriteString("<pre>")
		sb.WriteString(html.EscapeString(textContent(n)))
		sb.WriteString("</pre>\n")
	case "a":
		href := attr(n, "href")
		if href == "" {
			renderChildren(sb, n)
			return
		}
		sb.WriteString(`<a href="` + html.EscapeString(href) + `">`)
		renderChildren(sb, n)
		sb.WriteString("</a>")
	case "blockquote":
		var inner strings.Builder
		renderChildren(&inner, n)
		sb.WriteString("<blockquote>")
		sb.WriteString(strings.TrimSpace(inner.String()))
		sb.WriteString("</blockquote>\n")
	case "h1", "h2", "h3", "h4", "h5", "h6":
		wrap(sb, n, "b")
		sb.WriteString("\n\n")
	case "p":
		renderChildren(sb, n)
		sb.WriteString("\n\n")
	case "br":
		sb.WriteString("\n")
	case "ul":
		renderList(sb, n, false)
	case "ol":
		renderList(sb, n, true)
	case "li":
		// Stray list item outside ul/ol.
		sb.WriteString("• ")
		renderChildren(sb, n)
		sb.WriteString("\n")
	case "hr":
		sb.WriteString("\n")
	default:
		renderChildren(sb, n)
	}
}

func renderList(sb *strings.Builder, n *xhtml.Node, ordered bool) {
	num := 1
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xhtml.ElementNode || child.Data != "li" {
			continue
		}
		if ordered {
			fmt.Fprintf(sb, "%d. ", num)
			num++
		} else {
			sb.WriteString("• ")
		}
		var item strings.Builder
		renderChildren(&item, child)
		sb.WriteString(strings.TrimSpace(item.String()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func wrap(sb *strings.Builder, n *xhtml.Node, tag string) {
	sb.WriteString("<" + tag + ">")
	renderChildren(sb, n)
	sb.WriteString("</" + tag + ">")
}

func textContent(n *xhtml.Node) string {
	var sb strings.Builder
	var walk func(*xhtml.Node)
	walk = func(node *xhtml.Node) {
		if node.Type == xhtml.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimRight(sb.String(), "\n")
}

func attr(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
