package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/shopmate/shopmate/internal/config"
	"github.com/shopmate/shopmate/internal/domain"
)

// Target distinguishes the two product regions: search results may collapse
// when empty, recommendations never do.
type Target int

const (
	TargetSearch Target = iota
	TargetRecommendations
)

// GridView is the rendered product region. Hidden means the region should
// be removed from the live view entirely.
type GridView struct {
	Text   string
	Hidden bool
}

const NoProductsPlaceholder = "No products found."

// ProductGrid renders zero or more cards. Empty input yields the
// placeholder text; only the search target transitions to hidden.
func ProductGrid(products []domain.Product, target Target) GridView {
	if len(products) == 0 {
		return GridView{
			Text:   NoProductsPlaceholder,
			Hidden: target == TargetSearch,
		}
	}
	var sb strings.Builder
	for i, p := range products {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(ProductCard(p))
	}
	return GridView{Text: sb.String()}
}

// ProductCard is the summary view of one product.
func ProductCard(p domain.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(p.Name))
	if p.Brand != "" {
		fmt.Fprintf(&sb, "%s\n", html.EscapeString(p.Brand))
	}
	fmt.Fprintf(&sb, "$%s · ⭐ %s", p.Price.StringFixed(2), formatRating(p.Rating))
	return sb.String()
}

// ProductDetail is the full "modal" view, including a best-effort read of
// the specifications blob.
func ProductDetail(p domain.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(p.Name))
	if p.Brand != "" {
		fmt.Fprintf(&sb, "%s\n", html.EscapeString(p.Brand))
	}
	if p.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", html.EscapeString(p.Description))
	}
	fmt.Fprintf(&sb, "\n<b>$%s</b>\n", p.Price.StringFixed(2))
	fmt.Fprintf(&sb, "In Stock: %d · ⭐ %s\n", p.StockQuantity, formatRating(p.Rating))

	if specs := p.ParseSpecifications(); len(specs) > 0 {
		sb.WriteString("\n<b>Specifications</b>\n")
		for _, s := range specs {
			fmt.Fprintf(&sb, "%s: %s\n",
				html.EscapeString(strings.ReplaceAll(s.Key, "_", " ")),
				html.EscapeString(s.Value))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// CardImage returns the product image for card views, or the placeholder.
func CardImage(p domain.Product) string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return config.PlaceholderCardImage
}

// DetailImage returns the product image for the detail view, or the
// placeholder.
func DetailImage(p domain.Product) string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return config.PlaceholderDetailImage
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
