package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client, err := NewHTTPClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil *HTTPClient with embedded *resty.Client")
	}
}

func TestNewHTTPClient_HasCookieJar(t *testing.T) {
	client, _ := NewHTTPClient()

	if client.GetClient().Jar == nil {
		t.Fatal("expected cookie jar to be set")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1, _ := NewHTTPClient()
	client2, _ := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected different *resty.Client instances")
	}
	if client1.GetClient().Jar == client2.GetClient().Jar {
		t.Fatal("expected clients not to share a cookie jar")
	}
}

func TestHTTPClient_KeepsCookies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/set" {
			http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "abc", Path: "/"})
			return
		}
		c, err := r.Cookie("session_id")
		if err != nil || c.Value != "abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, _ := NewHTTPClient()
	client.SetBaseURL(srv.URL)

	if _, err := client.R().Get("/set"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := client.R().Get("/check")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("expected cookie to be sent back, got status %d", resp.StatusCode())
	}
}
