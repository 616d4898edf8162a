package compiler

import (
	"encoding/base64"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mkoenig/framesmith/pkg/scene"
)

// EmbedKind says which asset form a node renders as.
type EmbedKind int

const (
	// EmbedNone means the node carries no usable pre-rendered payload.
	EmbedNone EmbedKind = iota
	// EmbedVector inlines decoded vector markup.
	EmbedVector
	// EmbedRaster references a raster image source.
	EmbedRaster
)

// Decision is the outcome of inspecting a node's asset payloads.
type Decision struct {
	Kind EmbedKind

	// Markup holds decoded vector markup, already escaped for embedding
	// inside a template literal.
	Markup string

	// Source holds the raster image reference, normalized to a URL or
	// data URI.
	Source string
}

// Embedder decides how asset payloads embed into the output. A vector
// payload that cannot be decoded never fails the compilation; the node
// falls back to its raster payload and then to structural rendering.
type Embedder struct {
	Log *log.Logger
}

// Decide inspects a node's payloads in vector-first order.
func (e *Embedder) Decide(n *scene.Node) Decision {
	if n.HasVector() {
		if markup, ok := decodeVector(n.VectorData); ok {
			return Decision{Kind: EmbedVector, Markup: EscapeTemplate(markup)}
		}
		if e.Log != nil {
			e.Log.Warn("undecodable vector payload", "node", n.Name)
		}
	}
	if n.HasRaster() {
		return Decision{Kind: EmbedRaster, Source: rasterSource(n.RasterData)}
	}
	return Decision{}
}

// decodeVector accepts vector markup either verbatim or base64-encoded.
// Anything that does not decode to markup is rejected.
func decodeVector(payload string) (string, bool) {
	trimmed := strings.TrimSpace(payload)
	if isVectorMarkup(trimmed) {
		return trimmed, true
	}
	decoded, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return "", false
	}
	s := strings.TrimSpace(string(decoded))
	if !isVectorMarkup(s) {
		return "", false
	}
	return s, true
}

func isVectorMarkup(s string) bool {
	return strings.HasPrefix(s, "<svg") || strings.HasPrefix(s, "<?xml")
}

// rasterSource passes URLs and data URIs through and wraps bare base64
// payloads as PNG data URIs.
func rasterSource(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	return "data:image/png;base64," + ref
}
