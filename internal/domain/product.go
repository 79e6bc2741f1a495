package domain

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

// Product is catalog data sourced entirely from the shop API, read-only on
// this side.
type Product struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Price          decimal.Decimal `json:"price"`
	Rating         float64         `json:"rating"`
	ImageURL       string          `json:"image_url"`
	Description    string          `json:"description"`
	Specifications string          `json:"specifications"`
	StockQuantity  int             `json:"stock_quantity"`
}

// Spec is one attribute row from a product's specifications blob.
type Spec struct {
	Key   string
	Value string
}

// ParseSpecifications decodes the JSON-encoded attribute map. Malformed data
// yields an empty list, never an error: a broken blob must not block the
// detail view. Keys are sorted for stable output.
func (p *Product) ParseSpecifications() []Spec {
	if p.Specifications == "" {
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(p.Specifications), &raw); err != nil {
		return nil
	}
	specs := make([]Spec, 0, len(raw))
	for k, v := range raw {
		specs = append(specs, Spec{Key: k, Value: specValue(v)})
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Key < specs[j].Key })
	return specs
}

func specValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
