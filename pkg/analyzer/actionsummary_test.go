package analyzer

import (
	"context"
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

func TestActionSummaryHappyPath(t *testing.T) {
	client := &fakeLLM{replies: []string{`{"text": "Breathe nightly + keep sleep log"}`}}
	unit := NewActionSummarizer(testDeps(client))

	sc := testSessionContext()
	sc.Topics = topicsFixture()

	out, aerr := unit.Analyze(context.Background(), sc, Attempt{Number: 1})
	require.Nil(t, aerr)

	payload := out.Payload.(*models.ActionSummaryResult)
	assert.Equal(t, "Breathe nightly + keep sleep log", payload.Text)

	req := client.lastRequest()
	assert.Contains(t, req.Messages[1].Content, "Practice breathing exercise nightly")
	assert.Zero(t, req.Temperature, "action summary runs deterministic")
	assert.Equal(t, "gpt-4.1-nano", req.Model, "uses the cheapest tier")
}

func TestActionSummaryTruncatesOnGraphemes(t *testing.T) {
	// 50 flag emoji: 50 graphemes but 400 bytes. Byte or rune truncation
	// would split a cluster; grapheme truncation keeps 45 whole flags.
	overshoot := ""
	for i := 0; i < 50; i++ {
		overshoot += "🇨🇦"
	}
	client := &fakeLLM{replies: []string{`{"text": "` + overshoot + `"}`}}
	unit := NewActionSummarizer(testDeps(client))

	sc := testSessionContext()
	sc.Topics = topicsFixture()

	out, aerr := unit.Analyze(context.Background(), sc, Attempt{Number: 1})
	require.Nil(t, aerr)

	text := out.Payload.(*models.ActionSummaryResult).Text
	assert.Equal(t, 45, uniseg.GraphemeClusterCount(text))
}

func TestActionSummaryRequiresTopics(t *testing.T) {
	unit := NewActionSummarizer(testDeps(&fakeLLM{}))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassConfig, aerr.Class)
	assert.False(t, aerr.Retryable())
}

func TestActionSummaryEmptyTextIsSchemaFailure(t *testing.T) {
	client := &fakeLLM{replies: []string{`{"text": "  "}`}}
	unit := NewActionSummarizer(testDeps(client))

	sc := testSessionContext()
	sc.Topics = topicsFixture()

	_, aerr := unit.Analyze(context.Background(), sc, Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassSchema, aerr.Class)
}
