package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cabanas/pkg/logger"
)

func limiterLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: logger.TEXT, Service: "test"})
}

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	limiter := NewClientRateLimiter(3, time.Minute, DefaultClientExtractor, limiterLogger())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("client-1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("client-1") {
		t.Error("request over the limit should be denied")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewClientRateLimiter(1, time.Minute, DefaultClientExtractor, limiterLogger())
	defer limiter.Stop()

	if !limiter.Allow("client-a") {
		t.Fatal("first request for client-a should be allowed")
	}
	if !limiter.Allow("client-b") {
		t.Error("client-b should not share client-a's budget")
	}
}

func TestRateLimiterEmptyKeyExempt(t *testing.T) {
	limiter := NewClientRateLimiter(1, time.Minute, DefaultClientExtractor, limiterLogger())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		if !limiter.Allow("") {
			t.Fatal("empty key should never be limited")
		}
	}
}

func TestClientRateLimitMiddlewareReturns429(t *testing.T) {
	limiter := NewClientRateLimiter(1, time.Minute, DefaultClientExtractor, limiterLogger())
	defer limiter.Stop()

	handler := ClientRateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	makeRequest := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cabins", nil)
		req.RemoteAddr = "10.0.0.1:54321"
		handler.ServeHTTP(rec, req)
		return rec
	}

	if rec := makeRequest(); rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}
	if rec := makeRequest(); rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected second request limited with 429, got %d", rec.Code)
	}
}

func TestDefaultClientExtractorPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")

	if got := DefaultClientExtractor(req); got != "203.0.113.7" {
		t.Errorf("expected forwarded address, got %q", got)
	}

	req.Header.Del("X-Forwarded-For")
	if got := DefaultClientExtractor(req); got != "10.0.0.1" {
		t.Errorf("expected host from remote addr, got %q", got)
	}
}
