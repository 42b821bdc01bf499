// Package api talks to the questlog backend: a single authenticated upsert
// per scraped problem.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/questlog/questlog/internal/extractor"
)

const defaultBaseURL = "https://cp.saksin.online/api/v1"

var (
	// ErrNotAuthenticated means no token is stored; run `questlog login`.
	ErrNotAuthenticated = errors.New("api: not authenticated")

	// ErrTokenRevoked means the backend rejected the token with a 401. The
	// stored token is cleared before this is returned.
	ErrTokenRevoked = errors.New("api: token revoked")
)

// Client posts problem upserts to the backend with bearer-token auth.
type Client struct {
	BaseURL string
	Timeout time.Duration

	// PseudoIDs fills questNumber with a deterministic hash-derived ID for
	// platforms without native numbering. Off by default; the backend
	// normally accepts a missing number.
	PseudoIDs bool

	tokens *TokenStore
	client *http.Client
}

// NewClient creates a backend client. An empty baseURL selects the default
// endpoint; a zero timeout defaults to 30s.
func NewClient(baseURL string, timeout time.Duration, tokens *TokenStore) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
		tokens:  tokens,
		client:  &http.Client{Timeout: timeout},
	}
}

// IsAuthenticated reports whether a token is currently stored.
func (c *Client) IsAuthenticated() bool {
	token, err := c.tokens.Load()
	return err == nil && token != ""
}

// upsertPayload is the POST body for the problems endpoint.
type upsertPayload struct {
	QuestName   string   `json:"questName"`
	QuestNumber string   `json:"questNumber,omitempty"`
	QuestLink   string   `json:"questLink,omitempty"`
	Platform    string   `json:"platform"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Topics      []string `json:"topics"`
	Status      string   `json:"status"`
	Notes       string   `json:"notes"`
	Bookmarked  bool     `json:"bookmarked"`
}

// SaveProblem upserts one extraction result, keyed by problem identity on
// the backend side. A 401 clears the stored token and returns
// ErrTokenRevoked; any other non-2xx status surfaces as an error carrying
// the response body.
func (c *Client) SaveProblem(ctx context.Context, res *extractor.Result) error {
	token, err := c.tokens.Load()
	if err != nil {
		return fmt.Errorf("api: failed to load token: %w", err)
	}
	if token == "" {
		return ErrNotAuthenticated
	}

	payload := c.buildPayload(res)
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("api: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/problems", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("api: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token revoked server-side: drop the local copy so the next run
		// prompts for a fresh login instead of retrying a dead token.
		if clearErr := c.tokens.Clear(); clearErr != nil {
			return fmt.Errorf("api: token revoked, and clearing it failed: %w", clearErr)
		}
		return ErrTokenRevoked
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	return nil
}

func (c *Client) buildPayload(res *extractor.Result) upsertPayload {
	number := res.Number
	if number == "" && c.PseudoIDs && res.Name != "" {
		number = extractor.PseudoID(res.Platform, res.Name)
	}

	status := "unsolved"
	if res.Solved {
		status = "solved"
	}

	topics := res.Topics
	if topics == nil {
		topics = []string{}
	}

	return upsertPayload{
		QuestName:   res.Name,
		QuestNumber: number,
		QuestLink:   res.URL,
		Platform:    string(res.Platform),
		Difficulty:  strings.ToLower(string(res.Difficulty)),
		Topics:      topics,
		Status:      status,
	}
}
