// Package serpapi queries the SerpAPI search-results endpoint for organic results.
package serpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/seo-optimizer/audit-api/audit"
)

const DefaultBaseURL = "https://serpapi.com"

// OrganicResult is one non-paid search result
type OrganicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
}

// Response is the subset of the search.json payload the client reads. A 2xx
// answer may carry Error alongside no results (e.g. a keyword with no matches);
// that is not a failure.
type Response struct {
	OrganicResults []OrganicResult `json:"organic_results"`
	Error          string          `json:"error,omitempty"`
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string, httpClient *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Search requests up to num organic results for query.
func (c *Client) Search(ctx context.Context, query string, num int) (*Response, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", strconv.Itoa(num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return nil, audit.Upstreamf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, audit.Upstreamf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		return nil, audit.Upstreamf("serpapi error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded Response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, audit.Malformedf("decode search response: %w", err)
	}
	return &decoded, nil
}

// OrganicLinks returns the link of each organic result in order, capped at limit.
// A response without organic results yields an empty slice.
func (c *Client) OrganicLinks(ctx context.Context, keyword string, limit int) ([]string, error) {
	resp, err := c.Search(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}
	if len(resp.OrganicResults) == 0 && resp.Error != "" {
		slog.Debug("search returned no organic results", "keyword", keyword, "reason", resp.Error)
	}

	results := resp.OrganicResults
	if len(results) > limit {
		results = results[:limit]
	}

	links := make([]string, 0, len(results))
	for i, r := range results {
		if r.Link == "" {
			return nil, audit.Malformedf("organic result %d has no link", i)
		}
		links = append(links, r.Link)
	}
	return links, nil
}
