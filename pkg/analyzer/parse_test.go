package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONVariants(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		valid bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"fenced json", "```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`, true},
		{"leading prose", "Here is the result: {\"a\":1}", `{"a":1}`, true},
		{"no object", "I cannot answer that.", "", false},
		{"broken json", `{"a": }`, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractJSON(tc.in)
			assert.Equal(t, tc.valid, ok)
			if tc.valid {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestSnapToHalf(t *testing.T) {
	assert.Equal(t, 7.5, snapToHalf(7.3))
	assert.Equal(t, 7.0, snapToHalf(7.2))
	assert.Equal(t, 0.0, snapToHalf(-1))
	assert.Equal(t, 10.0, snapToHalf(12.8))
	assert.Equal(t, 5.5, snapToHalf(5.5))
}

func TestTruncateGraphemesKeepsClustersWhole(t *testing.T) {
	// Family emoji is one grapheme built from multiple runes.
	s := "call mom 👨‍👩‍👧"
	assert.Equal(t, s, truncateGraphemes(s, 45))
	assert.Equal(t, "call mom", truncateGraphemes(s, 9))
	assert.Equal(t, "call mom 👨‍👩‍👧", truncateGraphemes(s, 10))
}

func TestRequireFieldErrors(t *testing.T) {
	doc, aerr := parseDocument(`{"n": 3, "s": "x", "empty": "  "}`)
	require.Nil(t, aerr)

	_, aerr = requireString(doc, "missing")
	assert.NotNil(t, aerr)
	_, aerr = requireString(doc, "n")
	assert.NotNil(t, aerr)
	_, aerr = requireString(doc, "empty")
	assert.NotNil(t, aerr)
	_, aerr = requireNumber(doc, "s")
	assert.NotNil(t, aerr)

	v, aerr := requireNumber(doc, "n")
	require.Nil(t, aerr)
	assert.Equal(t, 3.0, v)
}
