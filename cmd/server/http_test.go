package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/recipelist/internal/storage"
	"github.com/mmynk/recipelist/internal/storage/memory"
)

type downStore struct{ storage.Store }

func (downStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name  string
		store storage.Store
		want  int
	}{
		{name: "empty store is healthy", store: memory.New(), want: http.StatusOK},
		{name: "failing store", store: downStore{memory.New()}, want: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			healthHandler(tt.store)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestStaticHandler(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "index.html"), []byte("index"), 0o600)
	os.WriteFile(filepath.Join(dir, "app.js"), []byte("app"), 0o600)

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{path: "/", wantCode: http.StatusOK, wantBody: "index"},
		{path: "/app.js", wantCode: http.StatusOK, wantBody: "app"},
		{path: "/recipes/123", wantCode: http.StatusOK, wantBody: "index"},
		{path: "/recipelist.v1.RecipeService/Nope", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			staticHandler(dir)(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
