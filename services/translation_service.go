package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sultumov/AllergyTrackerr/logger"

	"go.uber.org/zap"
)

// TranslationService batch-translates text through a Yandex-style
// translation endpoint. It never fails its caller: any transport error,
// bad status, or short response falls back to the untranslated input.
type TranslationService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewTranslationService() *TranslationService {
	return &TranslationService{
		baseURL: "https://translate.api.cloud.yandex.net/translate/v2",
		apiKey:  os.Getenv("TRANSLATE_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewTranslationServiceWithBase substitutes the endpoint and client, used by tests.
func NewTranslationServiceWithBase(baseURL, apiKey string, client *http.Client) *TranslationService {
	return &TranslationService{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, client: client}
}

type translationRequest struct {
	SourceLanguageCode string   `json:"sourceLanguageCode"`
	TargetLanguageCode string   `json:"targetLanguageCode"`
	Texts              []string `json:"texts"`
	Format             string   `json:"format"`
}

type translationResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate returns the texts translated from source to target language,
// positionally matching the input. On any failure the input is returned
// unchanged.
func (s *TranslationService) Translate(ctx context.Context, texts []string, source, target string) []string {
	if len(texts) == 0 {
		return texts
	}

	translated, err := s.call(ctx, texts, source, target)
	if err != nil {
		logger.Warn("translation failed, falling back to source text", zap.Error(err))
		return texts
	}
	return translated
}

func (s *TranslationService) call(ctx context.Context, texts []string, source, target string) ([]string, error) {
	payload := translationRequest{
		SourceLanguageCode: source,
		TargetLanguageCode: target,
		Texts:              texts,
		Format:             "PLAIN_TEXT",
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal translation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/translate", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create translation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Api-Key "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call translation API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation API error %d: %s", resp.StatusCode, string(body))
	}

	var tr translationResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse translation JSON: %w", err)
	}
	if len(tr.Translations) != len(texts) {
		return nil, fmt.Errorf("translation response has %d items for %d inputs", len(tr.Translations), len(texts))
	}

	out := make([]string, len(tr.Translations))
	for i, t := range tr.Translations {
		out[i] = t.Text
	}
	return out, nil
}
