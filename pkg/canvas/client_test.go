package canvas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shapesmith/shapesmith/pkg/cache"
	"github.com/shapesmith/shapesmith/pkg/errors"
)

const fileResponse = `{
	"name": "Landing Page",
	"version": "42",
	"lastModified": "2026-08-01T12:00:00Z",
	"document": {
		"id": "0:0",
		"name": "Document",
		"type": "DOCUMENT",
		"children": [
			{"id": "0:1", "name": "Page 1", "type": "CANVAS", "children": [
				{"id": "1:2", "name": "Hero", "type": "FRAME"}
			]},
			{"id": "0:2", "name": "Page 2", "type": "CANVAS"}
		]
	}
}`

func TestClientFile(t *testing.T) {
	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Api-Token")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fileResponse))
	}))
	defer srv.Close()

	c := NewClient("secret-token", WithBaseURL(srv.URL))
	file, err := c.File(context.Background(), "aBcD1234eFgH5678", FileOptions{})
	if err != nil {
		t.Fatalf("File error: %v", err)
	}

	if gotPath != "/v1/files/aBcD1234eFgH5678" {
		t.Errorf("path = %q", gotPath)
	}
	if gotToken != "secret-token" {
		t.Errorf("token header = %q", gotToken)
	}
	if file.Name != "Landing Page" {
		t.Errorf("Name = %q", file.Name)
	}
	if pages := file.Pages(); len(pages) != 2 {
		t.Errorf("expected 2 pages, got %d", len(pages))
	}
	if n := file.Document.Count(); n != 4 {
		t.Errorf("Count = %d, want 4", n)
	}
}

func TestClientFileQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"name":"x","document":{"id":"0:0"}}`))
	}))
	defer srv.Close()

	c := NewClient("t", WithBaseURL(srv.URL))
	_, err := c.File(context.Background(), "key12345678", FileOptions{
		Version:    "42",
		IDs:        []string{"1:2", "3:4"},
		Depth:      2,
		Geometry:   "paths",
		PluginData: []string{"shared"},
		BranchData: true,
	})
	if err != nil {
		t.Fatalf("File error: %v", err)
	}

	want := map[string]string{
		"version":     "42",
		"ids":         "1:2,3:4",
		"depth":       "2",
		"geometry":    "paths",
		"plugin_data": "shared",
		"branch_data": "true",
	}
	for k, v := range want {
		if got := gotQuery[k]; len(got) != 1 || got[0] != v {
			t.Errorf("query %s = %v, want %q", k, got, v)
		}
	}
}

func TestClientFileCaching(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(fileResponse))
	}))
	defer srv.Close()

	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	c := NewClient("t", WithBaseURL(srv.URL), WithCache(store))

	ctx := context.Background()
	if _, err := c.File(ctx, "key12345678", FileOptions{}); err != nil {
		t.Fatalf("first File error: %v", err)
	}
	if _, err := c.File(ctx, "key12345678", FileOptions{}); err != nil {
		t.Fatalf("second File error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", calls)
	}

	// Different options miss the cache
	if _, err := c.File(ctx, "key12345678", FileOptions{Depth: 1}); err != nil {
		t.Fatalf("third File error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 upstream calls, got %d", calls)
	}
}

func TestClientFileErrors(t *testing.T) {
	tests := []struct {
		status int
		want   errors.Code
	}{
		{http.StatusUnauthorized, errors.ErrCodeUnauthorized},
		{http.StatusForbidden, errors.ErrCodeForbidden},
		{http.StatusNotFound, errors.ErrCodeDocumentNotFound},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tt.status)
		}))
		c := NewClient("t", WithBaseURL(srv.URL))
		_, err := c.File(context.Background(), "key12345678", FileOptions{})
		srv.Close()
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: got %v, want code %s", tt.status, err, tt.want)
		}
	}
}

func TestClientFileErrorKeepsBodyVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "usage at 85% of quota", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("t", WithBaseURL(srv.URL))
	_, err := c.File(context.Background(), "key12345678", FileOptions{})
	if !errors.Is(err, errors.ErrCodeForbidden) {
		t.Fatalf("got %v, want code %s", err, errors.ErrCodeForbidden)
	}
	if !strings.Contains(err.Error(), "usage at 85% of quota") {
		t.Errorf("error should carry the API body unmangled, got %q", err)
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 2 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(fileResponse))
	}))
	defer srv.Close()

	c := NewClient("t", WithBaseURL(srv.URL))
	if _, err := c.File(context.Background(), "key12345678", FileOptions{}); err != nil {
		t.Fatalf("File error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}
