package fonts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/framesmith/pkg/errors"
	"github.com/mkoenig/framesmith/pkg/httputil"
)

const httpTimeout = 10 * time.Second

// Browsers negotiate font formats through the user agent; pinning one
// keeps the provider's CSS answer stable across runs.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// ProviderResolver fetches stylesheet CSS from a Google-Fonts-
// compatible endpoint, caching responses and retrying transient
// failures. Provider outages degrade to the @import fallback.
type ProviderResolver struct {
	baseURL string
	http    *http.Client
	cache   *httputil.Cache
	log     *log.Logger
}

// NewProviderResolver creates a resolver against baseURL (empty means
// DefaultBaseURL). The cache may be nil to disable response caching.
func NewProviderResolver(baseURL string, cache *httputil.Cache, logger *log.Logger) *ProviderResolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if cache != nil {
		cache = cache.Namespace("fonts:")
	}
	return &ProviderResolver{
		baseURL: baseURL,
		http:    &http.Client{Timeout: httpTimeout},
		cache:   cache,
		log:     logger,
	}
}

// Resolve returns CSS covering the given families. System families are
// filtered out first; families failing validation are skipped with a
// warning. An unreachable provider yields the @import fallback, never
// an error; only context cancellation propagates.
func (r *ProviderResolver) Resolve(ctx context.Context, families []string) (string, error) {
	remote := r.usable(Filter(families))
	if len(remote) == 0 {
		return "", nil
	}

	key := strings.Join(remote, "|")
	if r.cache != nil {
		var css string
		if ok, _ := r.cache.Get(key, &css); ok {
			return css, nil
		}
	}

	css, err := r.fetch(ctx, remote)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if r.log != nil {
			wrapped := errors.Wrap(errors.ErrCodeFontProvider, err, "font provider unreachable")
			r.log.Warn("falling back to @import", "families", remote, "err", wrapped)
		}
		return ImportFallback(r.baseURL, remote), nil
	}

	if r.cache != nil {
		_ = r.cache.Set(key, css)
	}
	return css, nil
}

func (r *ProviderResolver) usable(families []string) []string {
	var out []string
	for _, f := range families {
		if err := errors.ValidateFontFamily(f); err != nil {
			if r.log != nil {
				r.log.Warn("skipping invalid font family", "family", f, "err", err)
			}
			continue
		}
		out = append(out, f)
	}
	return out
}

func (r *ProviderResolver) fetch(ctx context.Context, families []string) (string, error) {
	reqURL := CSSURL(r.baseURL, families)

	var css string
	err := httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := r.http.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		defer resp.Body.Close()

		if err := checkStatus(resp.StatusCode); err != nil {
			return err
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		css = string(body)
		return nil
	})
	return css, err
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusTooManyRequests || code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("provider status %d", code)}
	default:
		return fmt.Errorf("provider status %d", code)
	}
}

var _ Resolver = (*ProviderResolver)(nil)
