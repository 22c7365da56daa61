package whttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendHTTPRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test") != "1" {
			t.Errorf("custom header not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client, err := NewClient(ClientOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{
		URL:     srv.URL,
		Headers: []WHTTPHeader{{Name: "X-Test", Value: "1"}},
	}, client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != 200 || res.BodyString != `{"ok":true}` || res.HTTPTitle != "" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestSendHTTPRequestPassesThroughServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("<html><head><title>\n  Service Unavailable\n</title></head></html>"))
	}))
	defer srv.Close()

	client, _ := NewClient(ClientOptions{Retries: 0})
	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{URL: srv.URL}, client)
	if err != nil {
		t.Fatalf("expected response, got error: %v", err)
	}
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", res.StatusCode)
	}
	if res.HTTPTitle != "Service Unavailable" {
		t.Fatalf("unexpected title %q", res.HTTPTitle)
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestPageSummary(t *testing.T) {
	tests := map[string]string{
		"<html><head><title>Not Found</title></head><body><h1>Ignored</h1></body></html>": "Not Found",
		"<html><body><h1>Bad Gateway</h1><p>nginx</p></body></html>":                     "Bad Gateway",
		"<html><head><title></title></head><body><h1>Fallback</h1></body></html>":          "Fallback",
		"plain text body": "",
	}
	for body, want := range tests {
		if got := PageSummary(body); got != want {
			t.Fatalf("PageSummary(%q) = %q, want %q", body, got, want)
		}
	}
}

func TestNewClientRejectsBadProxy(t *testing.T) {
	if _, err := NewClient(ClientOptions{Proxy: "://bad"}); err == nil {
		t.Fatalf("expected proxy parse error")
	}
}
