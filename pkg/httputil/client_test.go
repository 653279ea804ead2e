package httputil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/config"
	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/logger"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Env:      "test",
		LogLevel: "debug",
	}
	log := logger.New(cfg)

	client := New(cfg, log)
	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.httpClient == nil {
		t.Error("Expected http.Client to be initialized")
	}

	if client.logger == nil {
		t.Error("Expected logger to be set")
	}

	if client.retryConfig.MaxRetries != 3 {
		t.Errorf("Expected MaxRetries=3, got %d", client.retryConfig.MaxRetries)
	}
}

func TestNewUsesConfig(t *testing.T) {
	cfg := &config.Config{
		Env:      "test",
		LogLevel: "error",
		HTTP: config.HTTPConfig{
			Timeout:    5 * time.Second,
			MaxRetries: 7,
			RateLimit:  2,
		},
	}
	log := logger.New(cfg)

	client := New(cfg, log)

	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("Expected timeout=5s, got %v", client.httpClient.Timeout)
	}

	if client.retryConfig.MaxRetries != 7 {
		t.Errorf("Expected MaxRetries=7, got %d", client.retryConfig.MaxRetries)
	}

	if client.rateLimiter == nil {
		t.Error("Expected rate limiter to be set")
	}
}

func TestNewWithTimeout(t *testing.T) {
	cfg := &config.Config{
		Env:      "test",
		LogLevel: "error", // Reduce log noise
	}
	log := logger.New(cfg)

	timeout := 5 * time.Second
	client := NewWithTimeout(cfg, log, timeout)

	if client.httpClient.Timeout != timeout {
		t.Errorf("Expected timeout=%v, got %v", timeout, client.httpClient.Timeout)
	}
}

func TestWithRetry(t *testing.T) {
	cfg := &config.Config{
		Env:      "test",
		LogLevel: "error",
	}
	log := logger.New(cfg)

	client := New(cfg, log).WithRetry(5, 2*time.Second)

	if client.retryConfig.MaxRetries != 5 {
		t.Errorf("Expected MaxRetries=5, got %d", client.retryConfig.MaxRetries)
	}

	if client.retryConfig.InitialDelay != 2*time.Second {
		t.Errorf("Expected InitialDelay=2s, got %v", client.retryConfig.InitialDelay)
	}
}

func TestDisableRetry(t *testing.T) {
	cfg := &config.Config{
		Env:      "test",
		LogLevel: "error",
	}
	log := logger.New(cfg)

	client := New(cfg, log).DisableRetry()

	if client.retryConfig.Enabled {
		t.Error("Expected retry to be disabled")
	}
}

func TestGet(t *testing.T) {
	// Create test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		Env:      "test",
		LogLevel: "error",
	}
	log := logger.New(cfg)

	client := New(cfg, log)
	ctx := context.Background()

	resp, err := client.Get(ctx, server.URL)
	if err != nil {
		t.Fatalf("GET request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestGetWithHeaders(t *testing.T) {
	// Create test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("Expected User-Agent=test-agent, got %s", got)
		}

		if got := r.Header.Get("Referer"); got != "https://example.com/" {
			t.Errorf("Expected Referer=https://example.com/, got %s", got)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		Env:      "test",
		LogLevel: "error",
	}
	log := logger.New(cfg)

	client := New(cfg, log)
	ctx := context.Background()

	resp, err := client.GetWithHeaders(ctx, server.URL, map[string]string{
		"User-Agent": "test-agent",
		"Referer":    "https://example.com/",
	})
	if err != nil {
		t.Fatalf("GET request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestRetryOn5xx(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			// Return 503 for first 2 attempts
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		// Success on 3rd attempt
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	cfg := &config.Config{
		Env:      "test",
		LogLevel: "error",
	}
	log := logger.New(cfg)

	client := New(cfg, log).WithRetry(3, 100*time.Millisecond)
	ctx := context.Background()

	resp, err := client.Get(ctx, server.URL)
	if err != nil {
		t.Fatalf("Request failed after retries: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		statusCode int
		want       bool
	}{
		{200, false},
		{201, false},
		{400, false},
		{404, false},
		{429, true}, // Too Many Requests - should retry
		{500, true}, // Internal Server Error
		{502, true}, // Bad Gateway
		{503, true}, // Service Unavailable
		{504, true}, // Gateway Timeout
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.statusCode), func(t *testing.T) {
			got := IsRetryableError(tt.statusCode)
			if got != tt.want {
				t.Errorf("IsRetryableError(%d) = %v, want %v", tt.statusCode, got, tt.want)
			}
		})
	}
}
