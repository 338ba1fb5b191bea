package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultAPIURL = "https://slack.com/api"

// Client is the Slack Web API client used to mirror workspace chat
// into Slack channels.
type Client struct {
	botToken   string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Slack client with the given bot token.
func NewClient(botToken string) *Client {
	return &Client{
		botToken:   botToken,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Slack API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// PostMessage posts text to a Slack channel via chat.postMessage and
// returns the message timestamp.
func (c *Client) PostMessage(ctx context.Context, channelID, text string) (string, error) {
	payload := postMessageRequest{
		Channel: channelID,
		Text:    text,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/chat.postMessage", c.apiURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.botToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call slack API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("slack API error %d: %s", resp.StatusCode, string(raw))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode slack response: %w", err)
	}
	// Slack reports API failures inside a 200 body.
	if !apiResp.OK {
		return "", fmt.Errorf("slack chat.postMessage failed: %s", apiResp.Error)
	}

	return apiResp.TS, nil
}
