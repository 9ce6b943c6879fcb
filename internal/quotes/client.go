package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.api-ninjas.com/v1/quotes"
	defaultAPIKey  = "kMPqtMH7/9ofago3kS7vnA==0nZjNtQVBixZHilY"
)

// Quote is a single quote with its author.
type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// Client fetches random quotes from the api-ninjas quotes endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a quotes client for the default endpoint.
func NewClient() *Client {
	return NewClientForEndpoint(&http.Client{Timeout: 10 * time.Second}, defaultBaseURL, defaultAPIKey)
}

// NewClientForEndpoint creates a quotes client against a specific
// endpoint. Tests point this at a local server.
func NewClientForEndpoint(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Random fetches one random quote. The endpoint returns an array; the
// first element is taken.
func (c *Client) Random(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to build quote request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote request failed with status %d", resp.StatusCode)
	}

	var quotes []Quote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		return Quote{}, fmt.Errorf("failed to decode quote response: %w", err)
	}
	if len(quotes) == 0 {
		return Quote{}, fmt.Errorf("no quotes returned")
	}

	return quotes[0], nil
}
