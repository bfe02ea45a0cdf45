package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client speaks the Qdrant REST API. The serving path only searches;
// the ingest job also creates the collection and upserts chunks.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against a Qdrant base URL, e.g.
// http://localhost:6333.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// CreateCollection creates a collection with the given vector config.
// Creating a collection that already exists is an error.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, req.Name)
	return c.send(ctx, http.MethodPut, url, req, nil)
}

// UpsertPoints writes document chunks into a collection. Points with
// existing IDs are overwritten, which is what makes re-ingestion safe.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points", c.baseURL, collectionName)
	return c.send(ctx, http.MethodPut, url, req, nil)
}

// SearchPoints runs a similarity search and returns scored chunks.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points/search", c.baseURL, collectionName)

	var result SearchResponse
	if err := c.send(ctx, http.MethodPost, url, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePoints removes chunks by ID, e.g. when a source document is
// retired.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string) error {
	url := fmt.Sprintf("%s/collections/%s/points/delete", c.baseURL, collectionName)
	return c.send(ctx, http.MethodPost, url, DeletePointsRequest{Points: ids}, nil)
}

// send marshals payload, performs the request, and decodes the response
// into out when non-nil. Any non-2xx status is an error.
func (c *Client) send(ctx context.Context, method, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("qdrant: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("qdrant: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("qdrant: %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("qdrant: %s %s: unexpected status %d", method, url, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("qdrant: decode response: %w", err)
		}
	}
	return nil
}
