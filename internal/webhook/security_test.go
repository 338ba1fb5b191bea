package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

const testSecret = "8f742231b10e8888abcd99yyyzzz85a5"

func signPayload(secret string, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:", timestamp)
	mac.Write(body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func newTestValidator(t *testing.T, now time.Time) *SecurityValidator {
	t.Helper()
	v := NewSecurityValidator(SecurityConfig{
		SigningSecret:   testSecret,
		RateLimitPerMin: 60,
	})
	v.now = func() time.Time { return now }
	return v
}

func TestValidateSlackSignature(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	v := newTestValidator(t, now)

	body := []byte(`{"type":"event_callback"}`)
	ts := strconv.FormatInt(now.Unix(), 10)

	if err := v.ValidateSlackSignature(body, ts, signPayload(testSecret, ts, body)); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
}

func TestValidateSlackSignatureWrongSecret(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	v := newTestValidator(t, now)

	body := []byte(`{"type":"event_callback"}`)
	ts := strconv.FormatInt(now.Unix(), 10)

	err := v.ValidateSlackSignature(body, ts, signPayload("wrong-secret", ts, body))
	if err == nil {
		t.Fatal("signature with wrong secret accepted")
	}
}

func TestValidateSlackSignatureTamperedBody(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	v := newTestValidator(t, now)

	body := []byte(`{"type":"event_callback"}`)
	ts := strconv.FormatInt(now.Unix(), 10)
	sig := signPayload(testSecret, ts, body)

	if err := v.ValidateSlackSignature([]byte(`{"type":"tampered"}`), ts, sig); err == nil {
		t.Fatal("tampered body accepted")
	}
}

func TestValidateSlackSignatureStaleTimestamp(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	v := newTestValidator(t, now)

	body := []byte(`{}`)
	stale := strconv.FormatInt(now.Add(-6*time.Minute).Unix(), 10)

	err := v.ValidateSlackSignature(body, stale, signPayload(testSecret, stale, body))
	if err == nil {
		t.Fatal("stale timestamp accepted, replay window open")
	}
}

func TestValidateSlackSignatureBadFormat(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	v := newTestValidator(t, now)
	ts := strconv.FormatInt(now.Unix(), 10)

	cases := map[string]string{
		"missing prefix": "deadbeef",
		"bad hex":        "v0=zzzz",
		"empty":          "",
	}
	for name, sig := range cases {
		if err := v.ValidateSlackSignature([]byte(`{}`), ts, sig); err == nil {
			t.Errorf("%s: malformed signature accepted", name)
		}
	}
}

func TestValidateSlackSignatureNoSecret(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 60})

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	if err := v.ValidateSlackSignature([]byte(`{}`), ts, "v0=00"); err == nil {
		t.Fatal("validator without a secret must reject everything")
	}
}

func TestCheckRateLimit(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{
		SigningSecret:   testSecret,
		RateLimitPerMin: 10, // burst of 1
	})

	if err := v.CheckRateLimit("T0001"); err != nil {
		t.Fatalf("first request rejected: %v", err)
	}
	if err := v.CheckRateLimit("T0001"); err == nil {
		t.Error("burst exhausted but request allowed")
	}
	// Separate teams get separate buckets.
	if err := v.CheckRateLimit("T0002"); err != nil {
		t.Errorf("other team blocked: %v", err)
	}
}

func TestValidateIPAddress(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{
		SigningSecret:   testSecret,
		AllowedIPs:      []string{"10.1.2.3", "192.168.0.0/16"},
		RateLimitPerMin: 60,
	})

	r := httptest.NewRequest("POST", "/webhooks/slack/events", nil)
	r.RemoteAddr = "10.1.2.3:52011"
	if err := v.ValidateIPAddress(r); err != nil {
		t.Errorf("whitelisted IP rejected: %v", err)
	}

	r.RemoteAddr = "192.168.44.9:52011"
	if err := v.ValidateIPAddress(r); err != nil {
		t.Errorf("CIDR-whitelisted IP rejected: %v", err)
	}

	r.RemoteAddr = "203.0.113.7:52011"
	if err := v.ValidateIPAddress(r); err == nil {
		t.Error("unlisted IP accepted")
	}

	open := NewSecurityValidator(SecurityConfig{SigningSecret: testSecret, RateLimitPerMin: 60})
	if err := open.ValidateIPAddress(r); err != nil {
		t.Errorf("empty whitelist should allow all: %v", err)
	}
}
