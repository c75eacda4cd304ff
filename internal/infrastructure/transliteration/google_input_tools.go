// Package transliteration adapts the Google Input Tools web service to the
// billing.Transliterator port: one plain-ASCII word in, its best-ranked
// Hindi spelling out. The adapter does exactly one request per lookup, no
// retry and no caching, and reports every anomaly as an error so the use
// case can apply its word-plus-space fallback.
package transliteration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gstbillpro/gst-billing-api/internal/application/billing"
)

// Compile-time check that the service implements the port.
var _ billing.Transliterator = (*GoogleInputToolsService)(nil)

// GoogleInputToolsService calls the public Input Tools transliteration
// endpoint. Plain net/http; no SDK exists or is needed.
type GoogleInputToolsService struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewGoogleInputToolsService builds the adapter. language is the target
// script, e.g. "hi". timeout bounds the whole request; callers may impose a
// shorter context deadline on top.
func NewGoogleInputToolsService(baseURL, language string, timeout time.Duration) *GoogleInputToolsService {
	return &GoogleInputToolsService{
		baseURL:  baseURL,
		language: language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Transliterate resolves one word. The wire format is a nested JSON array:
//
//	["SUCCESS",[["namaste",["नमस्ते", …],[],{}]]]
//
// The first candidate of the first result is returned.
func (s *GoogleInputToolsService) Transliterate(ctx context.Context, word string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("transliteration: no endpoint configured")
	}

	q := url.Values{}
	q.Set("text", word)
	q.Set("itc", s.language+"-t-i0-und")
	q.Set("num", "1")
	q.Set("ie", "utf-8")
	q.Set("oe", "utf-8")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("transliteration: build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transliteration: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transliteration: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("transliteration: read response: %w", err)
	}
	return parseResponse(body)
}

func parseResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("transliteration: malformed response: %w", err)
	}
	if len(payload) < 2 {
		return "", fmt.Errorf("transliteration: short response")
	}

	var status string
	if err := json.Unmarshal(payload[0], &status); err != nil || status != "SUCCESS" {
		return "", fmt.Errorf("transliteration: service status %q", status)
	}

	var results []json.RawMessage
	if err := json.Unmarshal(payload[1], &results); err != nil || len(results) == 0 {
		return "", fmt.Errorf("transliteration: empty result set")
	}

	var first []json.RawMessage
	if err := json.Unmarshal(results[0], &first); err != nil || len(first) < 2 {
		return "", fmt.Errorf("transliteration: malformed result entry")
	}

	var candidates []string
	if err := json.Unmarshal(first[1], &candidates); err != nil || len(candidates) == 0 {
		return "", fmt.Errorf("transliteration: no candidates")
	}
	return candidates[0], nil
}
