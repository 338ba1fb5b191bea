package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aether/pkg/gemini"
)

func TestNew(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}

	client, err := gemini.New(gemini.Config{APIKey: "key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "key" {
			t.Errorf("missing api key in query")
		}

		var req gemini.GenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "write a post" {
			t.Errorf("unexpected request %+v", req)
		}

		json.NewEncoder(w).Encode(gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Parts: []gemini.Part{{Text: "generated"}}}},
			},
			UsageMetadata: &gemini.UsageMetadata{TotalTokenCount: 42},
		})
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "key", APIURL: ts.URL})

	resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: "write a post"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "generated" {
		t.Errorf("expected generated text, got %q", resp.Text())
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "key", APIURL: ts.URL})
	if _, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{}); err == nil {
		t.Fatalf("expected error on 429")
	}
}

func TestResponseText(t *testing.T) {
	var empty gemini.GenerateResponse
	if empty.Text() != "" {
		t.Errorf("empty response should yield empty text")
	}
}
