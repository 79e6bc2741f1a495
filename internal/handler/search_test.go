package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchArgs(t *testing.T) {
	srv := apiStub(t, nil)
	h, _, _ := newTestHandler(t, srv.URL)

	t.Run("no args", func(t *testing.T) {
		f, err := h.parseSearchArgs("/search")
		require.NoError(t, err)
		assert.Empty(t, f.Category)
		assert.Nil(t, f.MinPrice)
		assert.Nil(t, f.MaxPrice)
		assert.Equal(t, 12, f.Limit)
	})

	t.Run("category only", func(t *testing.T) {
		f, err := h.parseSearchArgs("/search laptops")
		require.NoError(t, err)
		assert.Equal(t, "laptops", f.Category)
	})

	t.Run("skipped category with price range", func(t *testing.T) {
		f, err := h.parseSearchArgs("/search - 10 99.5")
		require.NoError(t, err)
		assert.Empty(t, f.Category)
		require.NotNil(t, f.MinPrice)
		assert.Equal(t, "10", f.MinPrice.String())
		require.NotNil(t, f.MaxPrice)
		assert.Equal(t, "99.5", f.MaxPrice.String())
	})

	t.Run("bad min price", func(t *testing.T) {
		_, err := h.parseSearchArgs("/search laptops cheap")
		assert.Error(t, err)
	})

	t.Run("bad max price", func(t *testing.T) {
		_, err := h.parseSearchArgs("/search laptops 10 expensive")
		assert.Error(t, err)
	})
}

func TestSearchProductsRendersGrid(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"success": true,
			"products": [
				{"id": 1, "name": "Laptop", "price": "999.99"},
				{"id": 2, "name": "Tablet", "price": "399.00"}
			]
		}`))
	}))
	t.Cleanup(srv.Close)

	h, view, _ := newTestHandler(t, srv.URL)
	filter, err := h.parseSearchArgs("/search laptops")
	require.NoError(t, err)

	h.searchProducts(context.Background(), 1, testSession(), filter)

	assert.Contains(t, gotQuery, "category=laptops")
	grid, ok := view.find("replace_grid")
	require.True(t, ok)
	assert.Contains(t, grid.text, "Laptop")
	assert.Contains(t, grid.text, "Tablet")
	assert.Equal(t, 1, view.typingStops)
}

func TestSearchProductsFailureIsSilent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	t.Cleanup(srv.Close)

	h, view, _ := newTestHandler(t, srv.URL)
	filter, err := h.parseSearchArgs("/search")
	require.NoError(t, err)

	h.searchProducts(context.Background(), 1, testSession(), filter)

	assert.Empty(t, view.kinds())
}

func TestSearchUsageListsCachedCategories(t *testing.T) {
	srv := apiStub(t, nil)
	h, _, _ := newTestHandler(t, srv.URL)

	assert.NotContains(t, h.searchUsage(1), "Categories")

	h.mu.Lock()
	h.categories[1] = []string{"laptops", "phones"}
	h.mu.Unlock()

	usage := h.searchUsage(1)
	assert.Contains(t, usage, "laptops, phones")
}
