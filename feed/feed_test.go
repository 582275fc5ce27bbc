// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") == "" {
			t.Error("expected cache-busting query parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"abc","title":"Test post"},{"id":"def"}]`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)
	raws, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(raws) != 2 {
		t.Errorf("expected 2 records, got %d", len(raws))
	}
}

func TestFetchEmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)
	raws, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(raws) != 0 {
		t.Errorf("expected empty feed, got %d records", len(raws))
	}
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
