package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aether/pkg/slack"
)

func TestPostMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat.postMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer xoxb-") {
			t.Errorf("missing bot token, got %q", r.Header.Get("Authorization"))
		}

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["channel"] != "C123" || body["text"] != "hello" {
			t.Errorf("unexpected body %v", body)
		}

		json.NewEncoder(w).Encode(map[string]any{"ok": true, "ts": "1718445600.000100"})
	}))
	defer ts.Close()

	client := slack.NewClient("xoxb-test")
	client.SetAPIURL(ts.URL)

	msgTS, err := client.PostMessage(context.Background(), "C123", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msgTS != "1718445600.000100" {
		t.Errorf("unexpected ts %q", msgTS)
	}
}

func TestPostMessageAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Slack returns HTTP 200 with ok=false on API-level failures.
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "channel_not_found"})
	}))
	defer ts.Close()

	client := slack.NewClient("xoxb-test")
	client.SetAPIURL(ts.URL)

	_, err := client.PostMessage(context.Background(), "C404", "hello")
	if err == nil || !strings.Contains(err.Error(), "channel_not_found") {
		t.Errorf("expected channel_not_found error, got %v", err)
	}
}
