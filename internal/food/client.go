// Package food looks products up in the Open Food Facts database, by
// barcode or free text, and caches barcode hits locally so repeat scans
// work offline.
package food

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	baseURL        = "https://world.openfoodfacts.org"
	requestTimeout = 10 * time.Second
	maxBodySize    = 4 << 20 // 4 MB; search pages are chunky
	searchPageSize = 10
	userAgent      = "mealtracker/1.0 (github.com/schmidtrico91/rico-mealtracker-main)"
)

var (
	// ErrNotFound indicates the barcode or query matched nothing.
	ErrNotFound = errors.New("food: product not found")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("food: rate limited")
)

// Client fetches product data from the Open Food Facts web API.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a lookup client.
func NewClient() *Client {
	return &Client{base: baseURL, http: &http.Client{}}
}

// NewClientWithBase creates a client against a custom base URL.
func NewClientWithBase(base string) *Client {
	return &Client{base: base, http: &http.Client{}}
}

// ByBarcode returns the product for an exact barcode.
func (c *Client) ByBarcode(ctx context.Context, code string) (Product, error) {
	body, err := c.get(ctx, "/api/v2/product/"+url.PathEscape(code)+".json")
	if err != nil {
		return Product{}, err
	}

	var resp productResponse
	if err := decode(body, &resp); err != nil {
		return Product{}, fmt.Errorf("food: parsing product: %w", err)
	}
	if resp.Status != 1 {
		return Product{}, ErrNotFound
	}

	p := resp.Product.normalize(time.Now())
	if p.Barcode == "" {
		p.Barcode = code
	}
	return p, nil
}

// Search returns up to searchPageSize candidates for a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]Product, error) {
	q := url.Values{}
	q.Set("search_terms", query)
	q.Set("search_simple", "1")
	q.Set("json", "1")
	q.Set("page_size", fmt.Sprintf("%d", searchPageSize))

	body, err := c.get(ctx, "/cgi/search.pl?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := decode(body, &resp); err != nil {
		return nil, fmt.Errorf("food: parsing search results: %w", err)
	}
	if len(resp.Products) == 0 {
		return nil, ErrNotFound
	}

	now := time.Now()
	products := make([]Product, 0, len(resp.Products))
	for _, raw := range resp.Products {
		p := raw.normalize(now)
		if p.Name == "" && p.Per100.Zero() {
			continue
		}
		products = append(products, p)
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return products, nil
}

// get performs a GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("food: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("food: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("food: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("food: reading response: %w", err)
	}
	return body, nil
}

// decode unmarshals with json.Number preserved for the nutriment fields.
func decode(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
