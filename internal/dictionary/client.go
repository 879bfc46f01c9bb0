// Package dictionary is a client for the Free Dictionary API (dictionaryapi.dev)
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lexilearn/backend/internal/models"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public Free Dictionary API endpoint for English entries
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond
	maxResponseSize   = 1 << 20
)

// Client looks up words in the dictionary API
type Client struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	logger     *zap.Logger
}

// NewClient creates a new dictionary client
//
// An empty baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		retryDelay: defaultRetryDelay,
		logger:     logger.With(zap.String("component", "dictionary")),
	}
}

// Lookup fetches the first definition of word
//
// Returns models.ErrDefinitionNotFound when the API has no entry for the word or the entry
// carries no definition.
func (c *Client) Lookup(ctx context.Context, word string) (*models.DictionaryEntry, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, models.ErrDefinitionNotFound
	}

	reqURL := c.baseURL + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create dictionary request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doWithRetry(ctx, req, word)
	if err != nil {
		c.logger.Error("dictionary request failed", zap.String("word", word), zap.Error(err))
		return nil, fmt.Errorf("failed to query dictionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrDefinitionNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dictionary returned unexpected status %d", resp.StatusCode)
	}

	var entries []apiEntry
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary response: %w", err)
	}

	entry, ok := firstDefinition(entries)
	if !ok {
		return nil, models.ErrDefinitionNotFound
	}

	c.logger.Debug("dictionary entry found",
		zap.String("word", word),
		zap.String("part_of_speech", entry.PartOfSpeech),
	)
	return entry, nil
}

// doWithRetry executes the request and retries once on a network error or 5xx status
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err == nil && resp.StatusCode < http.StatusInternalServerError {
		return resp, nil
	}
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.logger.Warn("retrying dictionary request", zap.String("word", word), zap.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.httpClient.Do(req)
}

// firstDefinition picks the first meaning's first definition of the first entry
//
// Synonyms and antonyms of the definition come before those of its meaning.
func firstDefinition(entries []apiEntry) (*models.DictionaryEntry, bool) {
	if len(entries) == 0 || len(entries[0].Meanings) == 0 {
		return nil, false
	}
	first := entries[0]
	meaning := first.Meanings[0]
	if len(meaning.Definitions) == 0 {
		return nil, false
	}
	def := meaning.Definitions[0]

	return &models.DictionaryEntry{
		Word:         first.Word,
		PartOfSpeech: meaning.PartOfSpeech,
		Definition:   def.Definition,
		Example:      def.Example,
		Synonyms:     append(append([]string{}, def.Synonyms...), meaning.Synonyms...),
		Antonyms:     append(append([]string{}, def.Antonyms...), meaning.Antonyms...),
	}, true
}
