// Package fonts resolves the font families a compiled unit references
// into CSS its stylesheet can carry.
//
// System families are recognized by a fixed denylist and never
// requested from the provider. Everything else is fetched from a
// Google-Fonts-compatible CSS endpoint; when the provider cannot be
// reached the resolver degrades to an @import rule pointing at the
// same endpoint instead of failing the compilation.
package fonts

import (
	"context"
	"net/url"
	"strings"
)

// DefaultBaseURL is the CSS endpoint used when none is configured.
const DefaultBaseURL = "https://fonts.googleapis.com/css2"

// systemFamilies never resolve remotely; browsers provide them. The
// list covers the CSS generic families and the entries of the common
// system font stack alongside the classic web-safe names.
var systemFamilies = map[string]struct{}{
	"arial":              {},
	"helvetica":          {},
	"helvetica neue":     {},
	"roboto":             {},
	"segoe ui":           {},
	"-apple-system":      {},
	"blinkmacsystemfont": {},
	"system-ui":          {},
	"ui-sans-serif":      {},
	"ui-serif":           {},
	"ui-monospace":       {},
	"ui-rounded":         {},
	"sans-serif":         {},
	"serif":              {},
	"monospace":          {},
	"cursive":            {},
	"fantasy":            {},
}

// IsSystem reports whether the family is on the system denylist.
// Matching is case-insensitive.
func IsSystem(family string) bool {
	_, ok := systemFamilies[strings.ToLower(strings.TrimSpace(family))]
	return ok
}

// Filter returns the families that need remote resolution, preserving
// order.
func Filter(families []string) []string {
	var remote []string
	for _, f := range families {
		if !IsSystem(f) {
			remote = append(remote, f)
		}
	}
	return remote
}

// Resolver turns font family names into stylesheet CSS.
type Resolver interface {
	Resolve(ctx context.Context, families []string) (string, error)
}

// CSSURL builds the provider request URL for a set of families. Query
// encoding keeps the family parameters in input order.
func CSSURL(base string, families []string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{}
	for _, f := range families {
		q.Add("family", f)
	}
	q.Set("display", "swap")
	return base + "?" + q.Encode()
}

// ImportFallback builds the @import rule emitted when provider CSS is
// unavailable. The rule resolves the same families at render time.
func ImportFallback(base string, families []string) string {
	if len(families) == 0 {
		return ""
	}
	return "@import url('" + CSSURL(base, families) + "');\n"
}
