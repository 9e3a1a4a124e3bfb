package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shelfmark/internal/domain"
)

// Client queries the external book recommendation service. The lookup is
// read-only and safe to retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
}

// NewClient creates a recommendation client. limit caps the number of
// titles requested per query.
func NewClient(baseURL string, limit int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		limit:   limit,
	}
}

// recommendResponse mirrors the recommender's JSON body
type recommendResponse struct {
	RecommendationsList []string `json:"recommendations_list"`
	Error               string   `json:"error"`
}

// Search asks the recommender for titles similar to query. Results keep
// the service's ordering. An answered-but-empty response is
// domain.ErrNoResults; anything broken at the HTTP layer wraps
// domain.ErrRecommenderUnavailable.
func (c *Client) Search(ctx context.Context, query string) ([]domain.BookRef, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("query", "is required")
	}

	params := url.Values{}
	params.Set("book_title", query)
	params.Set("num", fmt.Sprintf("%d", c.limit))
	reqURL := fmt.Sprintf("%s/api/recommend?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecommenderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNoResults
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrRecommenderUnavailable, resp.StatusCode)
	}

	var body recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrRecommenderUnavailable, err)
	}

	if len(body.RecommendationsList) == 0 {
		return nil, domain.ErrNoResults
	}

	books := make([]domain.BookRef, 0, len(body.RecommendationsList))
	for _, title := range body.RecommendationsList {
		books = append(books, domain.BookRef{Title: title})
	}

	return books, nil
}
