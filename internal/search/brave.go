package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mbaird/lensgate/internal/metrics"
	"github.com/mbaird/lensgate/internal/upstream"
)

const defaultBaseURL = "https://api.search.brave.com"

// Result is one web search hit, tagged with the query that produced it.
type Result struct {
	Query   string
	Title   string
	Snippet string
	URL     string
}

type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// BraveClient calls the Brave web search API.
type BraveClient struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewBraveClient(apiKey string, timeout time.Duration) *BraveClient {
	return &BraveClient{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		baseURL: defaultBaseURL,
	}
}

func (c *BraveClient) Search(ctx context.Context, query string, count int) ([]Result, error) {
	endpoint := fmt.Sprintf("%s/res/v1/web/search?q=%s&count=%d",
		c.baseURL, url.QueryEscape(query), count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Subscription-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.ObserveUpstream("brave", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to call brave: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close brave response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, upstream.ParseError("Brave", resp)
	}

	var respBody braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]Result, 0, len(respBody.Web.Results))
	for _, r := range respBody.Web.Results {
		results = append(results, Result{
			Query:   query,
			Title:   r.Title,
			Snippet: r.Description,
			URL:     r.URL,
		})
	}
	return results, nil
}
