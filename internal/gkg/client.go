// Package gkg queries the Google Knowledge Graph Search API for the
// canonical name of an entity.
package gkg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://kgsearch.googleapis.com/v1/entities:search"

// ErrAPIKeyRequired is returned when an API key is needed but not provided.
var ErrAPIKeyRequired = errors.New("API key required")

// Client calls the Knowledge Graph entities:search endpoint.
type Client struct {
	apiKey   string
	minScore float64
	log      *zap.Logger

	// BaseURL overrides the search endpoint, for tests.
	BaseURL string
	// HTTPClient overrides the default transport, for tests.
	HTTPClient *http.Client
}

type searchResponse struct {
	ItemListElement []struct {
		Result struct {
			Name string `json:"name"`
		} `json:"result"`
		ResultScore float64 `json:"resultScore"`
	} `json:"itemListElement"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates a Knowledge Graph client. The key must already be
// resolved; resolution order (flag, then GKG_API_KEY, then config file)
// is the config package's job.
func NewClient(apiKey string, minScore float64, log *zap.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set GKG_API_KEY environment variable or pass --gkg-api-key", ErrAPIKeyRequired)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{apiKey: apiKey, minScore: minScore, log: log}, nil
}

// Suggest asks the Knowledge Graph for the best entity match of query.
// It returns the entity name when the top result scores above the
// configured minimum, the query unchanged when nothing scores that high,
// and an empty string when a qualifying result carries no name.
func (c *Client) Suggest(ctx context.Context, query string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base, nil)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", "1")
	params.Set("key", c.apiKey)
	req.URL.RawQuery = params.Encode()

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("knowledge graph request: %w", err)
	}
	defer resp.Body.Close()

	var payload searchResponse
	if resp.StatusCode != http.StatusOK {
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Error != nil {
			return "", fmt.Errorf("knowledge graph: %s (HTTP %d)", payload.Error.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("knowledge graph: unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("knowledge graph response: %w", err)
	}

	if len(payload.ItemListElement) > 0 {
		item := payload.ItemListElement[0]
		if item.ResultScore > c.minScore {
			c.log.Debug("knowledge graph match",
				zap.String("query", query),
				zap.String("name", item.Result.Name),
				zap.Float64("score", item.ResultScore))
			return item.Result.Name, nil
		}
		c.log.Debug("knowledge graph result below minimum score",
			zap.String("query", query),
			zap.Float64("score", item.ResultScore),
			zap.Float64("min", c.minScore))
	}
	return query, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}
