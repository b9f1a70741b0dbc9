package rerank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/kindred/ai"
)

const defaultTimeout = 30 * time.Second

// Client implements ai.Reranker against a cross-encoder HTTP service.
//
// The service contract: POST {host}/rerank with
//
//	{"query": "...", "documents": ["...", ...], "top_k": n}
//
// and a response of
//
//	{"results": [{"document_index": 0, "score": 0.97}, ...]}
//
// The service may return fewer results than documents were sent; that is
// a valid truncation, not an error.
type Client struct {
	host   string
	client *http.Client
	logger *slog.Logger
}

var _ ai.Reranker = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewClient creates a reranker client for the given service host,
// e.g. "http://localhost:8501".
func NewClient(host string, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, ErrEmptyHost
	}

	c := &Client{
		host:   host,
		client: &http.Client{Timeout: defaultTimeout},
		logger: slog.Default().With("component", "rerank-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type rerankRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	TopK      int      `json:"top_k,omitempty"`
}

type rerankResponse struct {
	Results []struct {
		DocumentIndex int     `json:"document_index"`
		Score         float64 `json:"score"`
	} `json:"results"`
}

// Rerank scores each document against the query with the cross-encoder.
// An empty document list returns an empty result without a network call.
func (c *Client) Rerank(ctx context.Context, query string, documents []string, topK int) ([]ai.RerankResult, error) {
	if len(documents) == 0 {
		return []ai.RerankResult{}, nil
	}

	body, err := json.Marshal(rerankRequest{
		Query:     query,
		Documents: documents,
		TopK:      topK,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/rerank", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rerank request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var parsed rerankResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding rerank response: %w", err)
	}

	results := make([]ai.RerankResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.DocumentIndex < 0 || r.DocumentIndex >= len(documents) {
			c.logger.Warn("rerank result references unknown document", "index", r.DocumentIndex)
			continue
		}
		results = append(results, ai.RerankResult{
			DocumentIndex: r.DocumentIndex,
			Score:         r.Score,
		})
	}

	c.logger.Debug("reranked documents", "sent", len(documents), "scored", len(results))
	return results, nil
}
