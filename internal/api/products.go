package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shopmate/shopmate/internal/domain"
)

type categoriesResponse struct {
	envelope
	Categories []string `json:"categories"`
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.check("Failed to load categories."); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

type productsResponse struct {
	envelope
	Products []domain.Product `json:"products"`
}

func (c *Client) Recommendations(ctx context.Context, limit int) ([]domain.Product, error) {
	var resp productsResponse
	path := "/api/recommendations?limit=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.check("Failed to load recommendations."); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// SearchFilter holds the catalog filter facets. Nil or empty fields are left
// out of the query entirely.
type SearchFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Limit    int
}

func (f SearchFilter) query() string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(f.Limit))
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MinPrice != nil {
		q.Set("min_price", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q.Set("max_price", f.MaxPrice.String())
	}
	return q.Encode()
}

func (c *Client) SearchProducts(ctx context.Context, f SearchFilter) ([]domain.Product, error) {
	var resp productsResponse
	if err := c.do(ctx, http.MethodGet, "/api/products/search?"+f.query(), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.check("Product search failed."); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

type productResponse struct {
	envelope
	Product *domain.Product `json:"product"`
}

func (c *Client) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	var resp productResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.check("Product not found."); err != nil {
		return nil, err
	}
	if resp.Product == nil {
		return nil, domain.ErrProductNotFound
	}
	return resp.Product, nil
}
