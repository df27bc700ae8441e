package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds every client call.
const DefaultTimeout = 5 * time.Second

// Client talks to a leaderboard Server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for baseURL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Submit posts a score and returns the stored entry. Names are validated
// locally first so bad input never reaches the network.
func (c *Client) Submit(ctx context.Context, name string, score int) (Entry, error) {
	if err := ValidateName(name); err != nil {
		return Entry{}, err
	}
	if score < 0 {
		return Entry{}, ErrInvalidScore
	}

	body, err := json.Marshal(submitRequest{Name: name, Score: score})
	if err != nil {
		return Entry{}, fmt.Errorf("leaderboard: encode request: %w", err)
	}

	var entry Entry
	if err := c.do(ctx, http.MethodPost, "/submit-score/", nil, body, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Leaderboard fetches one page of entries.
func (c *Client) Leaderboard(ctx context.Context, skip, limit int) ([]Entry, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var entries []Entry
	if err := c.do(ctx, http.MethodGet, "/get-leaderboard/", q, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// BestScore fetches the top score on the board.
func (c *Client) BestScore(ctx context.Context) (int, error) {
	var resp bestScoreResponse
	if err := c.do(ctx, http.MethodGet, "/get-best-score/", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.BestScore, nil
}

// do performs one request. Transport failures and 5xx responses wrap
// ErrUnavailable; 4xx responses carry the server's message.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body []byte, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		msg := http.StatusText(resp.StatusCode)
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return fmt.Errorf("leaderboard: %s (status %d)", msg, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("leaderboard: decode response: %w", err)
	}
	return nil
}
