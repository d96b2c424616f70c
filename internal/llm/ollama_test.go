package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOllamaClient_Generate(t *testing.T) {
	var gotReq ollamaRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s, want /api/generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ollamaResponse{Response: "  {\"day\": 1}  "})
	}))
	defer server.Close()

	c := NewOllamaClient(server.URL, "llama3.1:8b-instruct-q4_K_M", time.Minute)
	got, err := c.Generate(context.Background(), "plan day 1", Options{
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   250,
		Seed:        7919,
		JSONFormat:  true,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != `{"day": 1}` {
		t.Errorf("Generate() = %q, want trimmed response", got)
	}

	if gotReq.Model != "llama3.1:8b-instruct-q4_K_M" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("stream should be false")
	}
	if gotReq.Format != "json" {
		t.Errorf("format = %q, want json", gotReq.Format)
	}
	if gotReq.Options.Seed != 7919 {
		t.Errorf("seed = %d, want 7919", gotReq.Options.Seed)
	}
	if gotReq.Options.NumPredict != 250 {
		t.Errorf("num_predict = %d, want 250", gotReq.Options.NumPredict)
	}
}

func TestOllamaClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewOllamaClient(server.URL, "m", time.Minute)
	_, err := c.Generate(context.Background(), "p", Options{})
	if err == nil {
		t.Fatal("Generate() succeeded, want error")
	}

	// Non-2xx must be distinguishable from transport failures.
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", statusErr.StatusCode)
	}
}

func TestOllamaClient_APIErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(ollamaResponse{Error: "model is loading"})
	}))
	defer server.Close()

	c := NewOllamaClient(server.URL, "m", time.Minute)
	_, err := c.Generate(context.Background(), "p", Options{})
	if err == nil {
		t.Fatal("Generate() succeeded, want error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("in-body api error should not be a StatusError: %v", err)
	}
}

func TestOllamaClient_ContextCancelled(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	c := NewOllamaClient(server.URL, "m", time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Generate(ctx, "p", Options{})
	if err == nil {
		t.Fatal("Generate() succeeded, want context error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}
