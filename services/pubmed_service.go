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

// PubMedService fetches scientific background on an allergen from the NCBI
// E-utilities (esearch + esummary over the pubmed database).
type PubMedService struct {
	baseURL string
	client  *http.Client
}

func NewPubMedService() *PubMedService {
	return &PubMedService{
		baseURL: "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewPubMedServiceWithBase substitutes the endpoint and client, used by tests.
func NewPubMedServiceWithBase(baseURL string, client *http.Client) *PubMedService {
	return &PubMedService{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type pubmedSearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// ArticleSummary is the condensed record shown on the allergen detail screen.
type ArticleSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	PubDate string `json:"pub_date"`
}

// SearchAllergen finds the most relevant PubMed article for an allergen
// name and returns its summary.
func (s *PubMedService) SearchAllergen(ctx context.Context, query string) (*ArticleSummary, error) {
	searchURL := fmt.Sprintf(
		"%s/esearch.fcgi?db=pubmed&term=%s&retmax=10&retmode=json&sort=relevance",
		s.baseURL, url.QueryEscape("allergen "+query),
	)

	var sr pubmedSearchResponse
	if err := s.getJSON(ctx, searchURL, &sr); err != nil {
		return nil, err
	}
	if len(sr.ESearchResult.IDList) == 0 {
		return nil, fmt.Errorf("no articles found for %q", query)
	}

	id := sr.ESearchResult.IDList[0]
	summaryURL := fmt.Sprintf("%s/esummary.fcgi?db=pubmed&id=%s&retmode=json", s.baseURL, id)

	// The esummary result object is keyed by article id.
	var raw struct {
		Result map[string]json.RawMessage `json:"result"`
	}
	if err := s.getJSON(ctx, summaryURL, &raw); err != nil {
		return nil, err
	}

	entry, ok := raw.Result[id]
	if !ok {
		return nil, fmt.Errorf("no summary returned for article %s", id)
	}
	var doc struct {
		Title   string `json:"title"`
		Source  string `json:"source"`
		PubDate string `json:"pubdate"`
	}
	if err := json.Unmarshal(entry, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse article summary: %w", err)
	}

	return &ArticleSummary{ID: id, Title: doc.Title, Source: doc.Source, PubDate: doc.PubDate}, nil
}

func (s *PubMedService) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create pubmed request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call pubmed API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read pubmed response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pubmed API error %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse pubmed JSON: %w", err)
	}
	return nil
}
