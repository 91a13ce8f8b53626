package deals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// SearchClient issues a single search request against the product search
// API. One page, no retries; callers decide what to do with an error.
type SearchClient struct {
	APIKey string
	Host   string

	// BaseURL overrides the https://<Host> endpoint, used by tests.
	BaseURL string
}

func (c *SearchClient) endpoint() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return "https://" + c.Host
}

func (c *SearchClient) Search(ctx context.Context, term string) ([]SearchProduct, error) {
	q := url.Values{}
	q.Set("query", term)
	q.Set("page", "1")
	q.Set("country", "US")
	q.Set("sort_by", "RELEVANCE")
	q.Set("product_condition", "ALL")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint()+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", c.APIKey)
	req.Header.Set("x-rapidapi-host", c.Host)
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return result.Data.Products, nil
}
