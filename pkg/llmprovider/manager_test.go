package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"aether/pkg/llmprovider"
	"aether/pkg/log"
)

// fakeProvider counts calls and fails a configurable number of times
// before succeeding.
type fakeProvider struct {
	name      string
	calls     int
	failUntil int // fail the first N calls
	err       error
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	if f.calls <= f.failUntil {
		if f.err != nil {
			return nil, f.err
		}
		return nil, errors.New("transient failure")
	}
	return &llmprovider.Response{
		Text:         "ok from " + f.name,
		ProviderName: f.name,
		Usage:        &llmprovider.Usage{TotalTokens: 10},
	}, nil
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return f.name + "-model" }

func managerConfig() *llmprovider.Config {
	return &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: time.Second,
	}
}

func TestGenerateContentFirstProviderSucceeds(t *testing.T) {
	primary := &fakeProvider{name: "primary"}
	secondary := &fakeProvider{name: "secondary"}

	m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary}, managerConfig(), log.NewNoop())

	resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("expected primary, got %s", resp.ProviderName)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary should not have been called")
	}
}

func TestGenerateContentRetriesBeforeFallback(t *testing.T) {
	// Fails once, then succeeds on the retry.
	primary := &fakeProvider{name: "primary", failUntil: 1}
	secondary := &fakeProvider{name: "secondary"}

	m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary}, managerConfig(), log.NewNoop())

	resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("retry should have recovered primary, got %s", resp.ProviderName)
	}
	if primary.calls != 2 {
		t.Errorf("expected 2 calls on primary, got %d", primary.calls)
	}
}

func TestGenerateContentFallsBack(t *testing.T) {
	primary := &fakeProvider{name: "primary", failUntil: 100}
	secondary := &fakeProvider{name: "secondary"}

	m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary}, managerConfig(), log.NewNoop())

	resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("expected fallback to secondary, got %s", resp.ProviderName)
	}
}

func TestGenerateContentAllFail(t *testing.T) {
	primary := &fakeProvider{name: "primary", failUntil: 100}
	secondary := &fakeProvider{name: "secondary", failUntil: 100}

	m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary}, managerConfig(), log.NewNoop())

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateContentFallbackDisabled(t *testing.T) {
	primary := &fakeProvider{name: "primary", failUntil: 100}
	secondary := &fakeProvider{name: "secondary"}

	cfg := managerConfig()
	cfg.FallbackEnabled = false

	m := llmprovider.NewManager([]llmprovider.Provider{primary, secondary}, cfg, log.NewNoop())

	if _, err := m.GenerateContent(context.Background(), &llmprovider.Request{}); err == nil {
		t.Fatalf("expected failure with fallback disabled")
	}
	if secondary.calls != 0 {
		t.Errorf("secondary must not be tried when fallback is disabled")
	}
}

func TestGenerateContentNoProviders(t *testing.T) {
	m := llmprovider.NewManager(nil, managerConfig(), log.NewNoop())

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}
