package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// WikipediaService fetches an intro extract for an allergen from the
// MediaWiki API.
type WikipediaService struct {
	baseURL string
	client  *http.Client
}

func NewWikipediaService() *WikipediaService {
	return &WikipediaService{
		baseURL: "https://en.wikipedia.org/w",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWikipediaServiceWithBase substitutes the endpoint and client, used by tests.
func NewWikipediaServiceWithBase(baseURL string, client *http.Client) *WikipediaService {
	return &WikipediaService{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type wikiContentResponse struct {
	Query struct {
		Pages map[string]struct {
			Title   string `json:"title"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// Extract returns the plain-text intro of the article matching the title,
// following redirects.
func (s *WikipediaService) Extract(ctx context.Context, title string) (string, error) {
	u := fmt.Sprintf(
		"%s/api.php?action=query&format=json&prop=extracts&exintro=1&explaintext=1&redirects=1&titles=%s",
		s.baseURL, url.QueryEscape(title),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create wikipedia request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call wikipedia API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read wikipedia response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia API error %d: %s", resp.StatusCode, string(body))
	}

	var wr wikiContentResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return "", fmt.Errorf("failed to parse wikipedia JSON: %w", err)
	}

	for _, page := range wr.Query.Pages {
		if page.Extract != "" {
			return page.Extract, nil
		}
	}
	return "", fmt.Errorf("no article found for %q", title)
}
