package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrNotFound is returned when the store has no document with the
// requested ID.
var ErrNotFound = errors.New("document not found")

// Client is the HTTP wrapper for the hosted document store REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new document store client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// Create inserts a document into the collection via
// POST /api/v1/collections/{collection}/documents.
func (c *Client) Create(ctx context.Context, collection string, data any) (*Document, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document data: %w", err)
	}

	var doc Document
	path := fmt.Sprintf("/api/v1/collections/%s/documents", collection)
	if err := c.do(ctx, http.MethodPost, path, createRequest{Data: raw}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Get fetches a single document by ID.
func (c *Client) Get(ctx context.Context, collection, id string) (*Document, error) {
	var doc Document
	path := fmt.Sprintf("/api/v1/collections/%s/documents/%s", collection, id)
	if err := c.do(ctx, http.MethodGet, path, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update replaces a document's data via PATCH.
func (c *Client) Update(ctx context.Context, collection, id string, data any) (*Document, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document data: %w", err)
	}

	var doc Document
	path := fmt.Sprintf("/api/v1/collections/%s/documents/%s", collection, id)
	if err := c.do(ctx, http.MethodPatch, path, createRequest{Data: raw}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes a document by ID. Deleting a missing document returns
// ErrNotFound.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	path := fmt.Sprintf("/api/v1/collections/%s/documents/%s", collection, id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// List fetches documents from a collection, optionally filtered on
// top-level data fields.
func (c *Client) List(ctx context.Context, collection string, opt ListOptions) ([]Document, error) {
	q := url.Values{}
	for k, v := range opt.Filter {
		q.Set("filter."+k, v)
	}
	if opt.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", opt.Limit))
	}

	path := fmt.Sprintf("/api/v1/collections/%s/documents", collection)
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out listResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

// do runs a single authenticated JSON round trip against the store.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call document store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("document store error %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode document store response: %w", err)
		}
	}
	return nil
}
