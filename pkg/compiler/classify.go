package compiler

import (
	"strings"

	"github.com/mkoenig/framesmith/pkg/scene"
)

// Kind is the semantic widget class of a node.
type Kind int

const (
	KindNone Kind = iota
	KindButton
	KindTextField
	KindCheckbox
	KindTypography
)

// String returns the kind's stable lowercase label.
func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindTextField:
		return "text-field"
	case KindCheckbox:
		return "checkbox"
	case KindTypography:
		return "typography"
	default:
		return "none"
	}
}

// widgetPattern pairs name keywords with the kind they select. Patterns
// are checked in order and the first match wins.
type widgetPattern struct {
	keywords      []string
	containerOnly bool
	kind          Kind
}

var widgetPatterns = []widgetPattern{
	{keywords: []string{"button", "btn"}, containerOnly: true, kind: KindButton},
	{keywords: []string{"input", "field", "search"}, kind: KindTextField},
	{keywords: []string{"checkbox", "tick"}, kind: KindCheckbox},
}

// Classify maps a node to a widget kind from its name and type. Name
// matching is case-insensitive substring matching; nodes matching no
// pattern classify as typography when they are text, otherwise none.
func Classify(n *scene.Node) Kind {
	if n == nil {
		return KindNone
	}
	name := strings.ToLower(n.Name)
	for _, p := range widgetPatterns {
		if p.containerOnly && !n.IsContainer() {
			continue
		}
		for _, kw := range p.keywords {
			if strings.Contains(name, kw) {
				return p.kind
			}
		}
	}
	if n.IsText() {
		return KindTypography
	}
	return KindNone
}
