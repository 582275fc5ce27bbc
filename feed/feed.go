// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTimeout = 30 * time.Second

// RawPost is one loosely-typed record from the feed. Every field may be
// missing; the normalizer fills in defaults.
type RawPost struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	URL             string         `json:"url"`
	BodySummary     string         `json:"body_summary"`
	RedditJudgments map[string]int `json:"reddit_judgments"`
	TotalJudged     int            `json:"total_judged"`
	RedditVerdict   *string        `json:"reddit_verdict"`
	FetchedUTC      string         `json:"fetched_utc"`
}

// Client fetches the raw scenario feed.
type Client interface {
	Fetch(ctx context.Context) ([]json.RawMessage, error)
}

type httpClient struct {
	client  *http.Client
	feedURL string
}

// NewClient creates a feed client for the given feed URL.
func NewClient(client *http.Client, feedURL string) Client {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &httpClient{client: client, feedURL: feedURL}
}

// Fetch retrieves the feed once. There is no retry: a failed load is
// surfaced to the caller and the previous dataset (if any) stays in place.
// Elements are returned undecoded so the normalizer can drop malformed
// records individually instead of failing the batch.
func (c *httpClient) Fetch(ctx context.Context) ([]json.RawMessage, error) {
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed URL: %w", err)
	}

	// Cache bust: the feed is regenerated in place daily.
	q := u.Query()
	q.Set("v", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating feed request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var raws []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		return nil, fmt.Errorf("decoding feed: %w", err)
	}

	return raws, nil
}
