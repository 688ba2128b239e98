package analyzer

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/tidwall/gjson"
)

// extractJSON strips markdown fences and surrounding prose, returning the
// outermost JSON object in the model's reply. Models occasionally wrap JSON
// despite response_format=json_object; the parser tolerates the wrapping but
// nothing else.
func extractJSON(content string) (string, bool) {
	s := strings.TrimSpace(content)
	if fenced := strings.TrimPrefix(s, "```json"); fenced != s {
		s = strings.TrimSuffix(strings.TrimSpace(fenced), "```")
	} else if fenced := strings.TrimPrefix(s, "```"); fenced != s {
		s = strings.TrimSuffix(strings.TrimSpace(fenced), "```")
	}
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	s = s[start : end+1]
	if !gjson.Valid(s) {
		return "", false
	}
	return s, true
}

// parseDocument validates and returns the reply as a gjson document.
func parseDocument(content string) (gjson.Result, *Error) {
	raw, ok := extractJSON(content)
	if !ok {
		return gjson.Result{}, schemaError("model reply is not a JSON object: %.120q", content)
	}
	return gjson.Parse(raw), nil
}

// requireString extracts a non-empty string field.
func requireString(doc gjson.Result, path string) (string, *Error) {
	v := doc.Get(path)
	if v.Type != gjson.String || strings.TrimSpace(v.String()) == "" {
		return "", schemaError("field %q missing or not a string", path)
	}
	return strings.TrimSpace(v.String()), nil
}

// requireNumber extracts a numeric field.
func requireNumber(doc gjson.Result, path string) (float64, *Error) {
	v := doc.Get(path)
	if v.Type != gjson.Number {
		return 0, schemaError("field %q missing or not a number", path)
	}
	return v.Float(), nil
}

// stringSlice extracts an array of strings, dropping empties.
func stringSlice(doc gjson.Result, path string) []string {
	var out []string
	for _, v := range doc.Get(path).Array() {
		s := strings.TrimSpace(v.String())
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// snapToHalf rounds to the nearest 0.5 and clamps into [0, 10].
func snapToHalf(score float64) float64 {
	snapped := math.Round(score*2) / 2
	if snapped < 0 {
		return 0
	}
	if snapped > 10 {
		return 10
	}
	return snapped
}

// clamp01 clamps a confidence into [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// truncateGraphemes cuts s to at most max user-perceived characters,
// never splitting a grapheme cluster.
func truncateGraphemes(s string, max int) string {
	if uniseg.GraphemeClusterCount(s) <= max {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for n := 0; g.Next() && n < max; n++ {
		b.WriteString(g.Str())
	}
	return strings.TrimRight(b.String(), " ")
}

// truncateRunesAt caps s at max runes (used for the 150-char summary).
func truncateRunesAt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max]), " ")
}
