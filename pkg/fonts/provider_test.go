package fonts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mkoenig/framesmith/pkg/httputil"
)

func TestProviderResolve(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		if r.Header.Get("User-Agent") == "" {
			t.Error("request missing user agent")
		}
		w.Write([]byte("@font-face { font-family: 'Inter'; }"))
	}))
	defer server.Close()

	r := NewProviderResolver(server.URL, nil, nil)
	css, err := r.Resolve(context.Background(), []string{"Inter", "Arial"})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if !strings.Contains(css, "@font-face") {
		t.Errorf("css = %q, want provider response", css)
	}
	if !strings.Contains(gotPath, "family=Inter") {
		t.Errorf("request path = %q, want Inter family", gotPath)
	}
	if strings.Contains(gotPath, "Arial") {
		t.Errorf("system family requested: %q", gotPath)
	}
}

func TestProviderResolveNoRemoteFamilies(t *testing.T) {
	r := NewProviderResolver("http://unreachable.invalid", nil, nil)

	css, err := r.Resolve(context.Background(), []string{"Arial", "Helvetica"})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if css != "" {
		t.Errorf("css = %q, want empty for system-only families", css)
	}
}

func TestProviderResolveFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	r := NewProviderResolver(server.URL, nil, nil)
	css, err := r.Resolve(context.Background(), []string{"Inter"})
	if err != nil {
		t.Fatalf("Resolve() should degrade, got error: %v", err)
	}
	if !strings.HasPrefix(css, "@import url('") {
		t.Errorf("css = %q, want @import fallback", css)
	}
	if !strings.Contains(css, "family=Inter") {
		t.Errorf("fallback missing family: %q", css)
	}
}

func TestProviderResolveCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("css"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewProviderResolver(server.URL, nil, nil)
	if _, err := r.Resolve(ctx, []string{"Inter"}); err == nil {
		t.Error("Resolve() should propagate cancellation")
	}
}

func TestProviderResolveUsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("cached css"))
	}))

	cache, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache error: %v", err)
	}

	r := NewProviderResolver(server.URL, cache, nil)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, []string{"Inter"}); err != nil {
		t.Fatalf("first Resolve() error: %v", err)
	}
	server.Close()

	css, err := r.Resolve(ctx, []string{"Inter"})
	if err != nil {
		t.Fatalf("second Resolve() error: %v", err)
	}
	if css != "cached css" {
		t.Errorf("css = %q, want cached response", css)
	}
	if calls != 1 {
		t.Errorf("provider called %d times, want 1", calls)
	}
}

func TestProviderSkipsInvalidFamilies(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	r := NewProviderResolver(server.URL, nil, nil)
	if _, err := r.Resolve(context.Background(), []string{"Inter", "bad/family"}); err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if strings.Contains(gotPath, "bad") {
		t.Errorf("invalid family requested: %q", gotPath)
	}
}
