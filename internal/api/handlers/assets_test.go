package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"rookery/internal/assets"
)

func TestGetAssets(t *testing.T) {
	root := t.TempDir()
	for _, sub := range []string{"backgrounds", "pieces", "boards"} {
		if err := os.MkdirAll(filepath.Join(root, sub, "Default"), 0o755); err != nil {
			t.Fatalf("creating %s: %v", sub, err)
		}
	}

	handler := GetAssets(assets.NewScanner(root))
	r := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	var cat assets.Catalog
	if err := json.NewDecoder(w.Body).Decode(&cat); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	for name, list := range map[string][]string{
		"backgrounds": cat.Backgrounds,
		"pieces":      cat.Pieces,
		"boards":      cat.Boards,
	} {
		if len(list) != 1 || list[0] != "Default" {
			t.Errorf("%s = %v, want [Default]", name, list)
		}
	}
}

func TestGetAssets_EmptyTree(t *testing.T) {
	handler := GetAssets(assets.NewScanner(t.TempDir()))
	r := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	// Lists serialize as [] rather than null.
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	for _, key := range []string{"backgrounds", "pieces", "boards"} {
		if string(raw[key]) != "[]" {
			t.Errorf("%s = %s, want []", key, raw[key])
		}
	}
}
