package scene

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Units for line height and letter spacing values.
const (
	UnitAuto    = "AUTO"
	UnitPixels  = "PIXELS"
	UnitPercent = "PERCENT"
)

// TextStyle holds typography attributes of a TEXT node.
type TextStyle struct {
	FontFamily          string     `json:"fontFamily,omitempty"`
	FontWeight          Weight     `json:"fontWeight,omitempty"`
	FontSize            float64    `json:"fontSize,omitempty"`
	LetterSpacing       *UnitValue `json:"letterSpacing,omitempty"`
	LineHeight          *UnitValue `json:"lineHeight,omitempty"`
	TextAlignHorizontal string     `json:"textAlignHorizontal,omitempty"`
}

// Weight is a font weight as extracted: either a numeric weight or a
// style name like "SemiBold" or "Bold Italic". The zero value means
// unspecified and resolves to 400.
type Weight string

// weightNames maps normalized style-name tokens to numeric weights.
// Normalization lowercases and strips spaces and hyphens, so "Semi Bold",
// "semi-bold" and "SemiBold" all resolve to 600.
var weightNames = map[string]int{
	"thin":       100,
	"hairline":   100,
	"extralight": 200,
	"ultralight": 200,
	"light":      300,
	"regular":    400,
	"normal":     400,
	"book":       400,
	"medium":     500,
	"semibold":   600,
	"demibold":   600,
	"bold":       700,
	"extrabold":  800,
	"ultrabold":  800,
	"black":      900,
	"heavy":      900,
}

// UnmarshalJSON accepts either a JSON number (600) or a style-name
// string ("SemiBold").
func (w *Weight) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = Weight(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*w = Weight(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// MarshalJSON emits the raw extracted form.
func (w Weight) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(w)); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(w))
}

// CSS resolves the weight to a numeric CSS font weight using the
// style-name vocabulary, with numeric passthrough. Unrecognized names
// and the zero value resolve to 400.
func (w Weight) CSS() int {
	raw := strings.TrimSpace(string(w))
	if raw == "" {
		return 400
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		v := int(n)
		if v < 1 || v > 1000 {
			return 400
		}
		return v
	}

	// Style names may compound, e.g. "Bold Italic" or "Semi Bold".
	// Strip the italic token, then normalize the rest.
	norm := normalizeWeightName(raw)
	if v, ok := weightNames[norm]; ok {
		return v
	}
	return 400
}

// Italic reports whether the extracted style name carries an italic
// variant, e.g. "Bold Italic" or "Italic".
func (w Weight) Italic() bool {
	return strings.Contains(strings.ToLower(string(w)), "italic")
}

func normalizeWeightName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "italic", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	if s == "" {
		// A bare "Italic" style name is regular weight.
		return "regular"
	}
	return s
}

// UnitValue is a measurement with a unit, used for line height and
// letter spacing. The wire form is either an object
// {"unit": "PIXELS", "value": 24} or a bare number, which is treated
// as pixels.
type UnitValue struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// UnmarshalJSON accepts the object form or a bare numeric (pixels).
func (u *UnitValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		u.Unit = UnitPixels
		u.Value = n
		return nil
	}

	type alias UnitValue
	var v alias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*u = UnitValue(v)
	if u.Unit == "" {
		u.Unit = UnitPixels
	}
	return nil
}

// FontFamilyName normalizes an extracted font family for lookup and
// emission: surrounding quotes are stripped and only the first
// comma-separated alternative is kept. Later fallbacks are dropped on
// purpose; the target environment is expected to have the exact font.
func FontFamilyName(family string) string {
	first := family
	if i := strings.IndexByte(family, ','); i >= 0 {
		first = family[:i]
	}
	first = strings.TrimSpace(first)
	first = strings.Trim(first, `"'`)
	return strings.TrimSpace(first)
}
