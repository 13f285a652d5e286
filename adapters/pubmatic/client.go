package pubmatic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dealqa/domain/deal"

	"github.com/tidwall/gjson"
)

const dealsPath = "/v3/pmp/deals/"

// Config holds connection settings for the PubMatic deals API.
type Config struct {
	BaseURL   string
	AuthToken string

	// DataPath optionally selects a nested object in the response body
	// (gjson syntax) when the API wraps the deal record. Empty means the
	// body itself is the record.
	DataPath string

	// Timeout of zero leaves the client without a deadline, so a hanging
	// endpoint stalls the run.
	Timeout time.Duration
}

// Client fetches deal records over HTTP. One request per lookup; no
// retry, no rate limiting.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a deals API client.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// FetchDeal retrieves the record for one deal identifier. The identifier
// is sent path-escaped and otherwise untouched; whether the service
// accepts numeric IDs, string deal codes, or both is its own contract.
func (c *Client) FetchDeal(ctx context.Context, dealID string) (deal.RemoteRecord, error) {
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + dealsPath + url.PathEscape(dealID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", bearerValue(c.config.AuthToken))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseRecord(body, c.config.DataPath)
}

// bearerValue adds the "Bearer " prefix unless the token already carries
// one, so a pre-prefixed credential is never double-prefixed.
func bearerValue(token string) string {
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return token
	}
	return "Bearer " + token
}

// parseRecord extracts the deal object from the response body.
func parseRecord(body []byte, dataPath string) (deal.RemoteRecord, error) {
	raw := body
	if dataPath != "" {
		result := gjson.GetBytes(body, dataPath)
		if !result.Exists() {
			return nil, fmt.Errorf("data path %q not found in response", dataPath)
		}
		if !result.IsObject() {
			return nil, fmt.Errorf("data path %q is not an object", dataPath)
		}
		raw = []byte(result.Raw)
	}

	var record deal.RemoteRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to parse deal response: %w", err)
	}
	return record, nil
}
