package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultAPIURL = "https://api.hubapi.com"

// Client is the HubSpot CRM v3 API client.
type Client struct {
	accessToken string
	apiURL      string
	httpClient  *http.Client
}

// NewClient creates a new HubSpot client with a private-app access token.
func NewClient(accessToken string) *Client {
	return &Client{
		accessToken: accessToken,
		apiURL:      defaultAPIURL,
		httpClient:  &http.Client{},
	}
}

// SetAPIURL overrides the default HubSpot API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// CreateContact creates a CRM contact via POST /crm/v3/objects/contacts.
func (c *Client) CreateContact(ctx context.Context, props ContactProperties) (*Contact, error) {
	url := fmt.Sprintf("%s/crm/v3/objects/contacts", c.apiURL)
	return c.upsert(ctx, http.MethodPost, url, props, http.StatusCreated)
}

// UpdateContact updates an existing CRM contact by ID.
func (c *Client) UpdateContact(ctx context.Context, id string, props ContactProperties) (*Contact, error) {
	url := fmt.Sprintf("%s/crm/v3/objects/contacts/%s", c.apiURL, id)
	return c.upsert(ctx, http.MethodPatch, url, props, http.StatusOK)
}

func (c *Client) upsert(ctx context.Context, method, url string, props ContactProperties, wantStatus int) (*Contact, error) {
	body, err := json.Marshal(createContactRequest{Properties: props})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call hubspot API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("hubspot API error %d: %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("hubspot API error %d: %s", resp.StatusCode, string(raw))
	}

	var contact Contact
	if err := json.NewDecoder(resp.Body).Decode(&contact); err != nil {
		return nil, fmt.Errorf("failed to decode hubspot response: %w", err)
	}
	return &contact, nil
}
