package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/framesmith/pkg/cache"
	"github.com/mkoenig/framesmith/pkg/history"
	"github.com/mkoenig/framesmith/pkg/pipeline"
)

const testSceneJSON = `{
	"name": "Landing",
	"nodes": [{
		"name": "Card",
		"type": "FRAME",
		"width": 300,
		"height": 120,
		"children": [{
			"name": "Label",
			"type": "TEXT",
			"x": 10,
			"y": 10,
			"width": 80,
			"height": 20,
			"characters": "Hi!",
			"style": {"fontFamily": "Inter", "fontSize": 14}
		}]
	}]
}`

func testServer(t *testing.T, store history.Store) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewNullCache(), cache.NewDefaultKeyer(), nil, logger)
	return New(":0", runner, store, logger)
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q, want ok status", rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestCompile(t *testing.T) {
	srv := testServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compile", strings.NewReader(testSceneJSON))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp compileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "Card" {
		t.Errorf("Name = %q, want %q", resp.Name, "Card")
	}
	if !strings.Contains(resp.Markup, "Hi!") {
		t.Errorf("markup missing text content:\n%s", resp.Markup)
	}
	if resp.Stylesheet == "" {
		t.Error("empty stylesheet")
	}
	if resp.Stats.Nodes != 2 {
		t.Errorf("Stats.Nodes = %d, want 2", resp.Stats.Nodes)
	}
}

func TestCompileNameOverride(t *testing.T) {
	srv := testServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compile?name=Hero+Card", strings.NewReader(testSceneJSON))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp compileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "HeroCard" {
		t.Errorf("Name = %q, want %q", resp.Name, "HeroCard")
	}
}

func TestCompileInvalidDocument(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "malformed json", body: "{nope"},
		{name: "no roots", body: `{"name": "Empty", "nodes": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testServer(t, nil)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/compile", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Router().ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if !strings.HasPrefix(resp.Error.Code, "INVALID") {
				t.Errorf("error code = %q, want INVALID_*", resp.Error.Code)
			}
		})
	}
}

func TestCompileRecordsHistory(t *testing.T) {
	store := history.NewMemoryStore(10)
	srv := testServer(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/compile", strings.NewReader(testSceneJSON))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("compile status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=5", nil)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Records []history.Record `json:"records"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(resp.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(resp.Records))
	}
	r0 := resp.Records[0]
	if r0.Name != "Card" || r0.Roots != 1 || r0.Nodes != 2 {
		t.Errorf("record = %+v", r0)
	}
	if time.Since(r0.CreatedAt) > time.Minute {
		t.Errorf("stale CreatedAt: %v", r0.CreatedAt)
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	srv := testServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHistoryBadLimit(t *testing.T) {
	srv := testServer(t, history.NewMemoryStore(10))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=zero", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
