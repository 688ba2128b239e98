package analyzer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

const breakthroughReply = `{
	"has_breakthrough": true,
	"primary": {
		"type": "cognitive_insight",
		"description": "Patient recognized self-judgment was blocking the exercise.",
		"evidence": "At 41s the patient states they stopped judging their performance.",
		"confidence": %s,
		"timestamp_start": 41,
		"timestamp_end": 75,
		"dialogue_excerpt": "I stopped telling myself I was failing at it."
	},
	"all_breakthroughs": []
}`

func TestBreakthroughHappyPath(t *testing.T) {
	client := &fakeLLM{replies: []string{fmt.Sprintf(breakthroughReply, "0.82")}}
	unit := NewBreakthroughDetector(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)

	payload := out.Payload.(*models.BreakthroughResult)
	assert.True(t, payload.HasBreakthrough)
	require.NotNil(t, payload.Primary)
	assert.Equal(t, models.BreakthroughCognitiveInsight, payload.Primary.Type)
	assert.Equal(t, 41.0, payload.Primary.TimestampStart)
	assert.Equal(t, 0.82, out.Confidence)
	assert.Equal(t, "gpt-4o", out.ModelID, "breakthrough routes to the precision tier")
}

func TestBreakthroughGuardrailDemotesLowConfidence(t *testing.T) {
	// Default threshold is 0.6; the model asserts a breakthrough anyway.
	client := &fakeLLM{replies: []string{fmt.Sprintf(breakthroughReply, "0.35")}}
	unit := NewBreakthroughDetector(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)

	payload := out.Payload.(*models.BreakthroughResult)
	assert.False(t, payload.HasBreakthrough, "guardrail overrides the model's assertion")
	assert.Nil(t, payload.Primary)
	require.Len(t, payload.All, 1, "the demoted candidate stays reviewable")
	assert.Equal(t, 0.35, payload.All[0].Confidence)
}

func TestBreakthroughNoneDetected(t *testing.T) {
	client := &fakeLLM{replies: []string{`{"has_breakthrough": false, "all_breakthroughs": []}`}}
	unit := NewBreakthroughDetector(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)

	payload := out.Payload.(*models.BreakthroughResult)
	assert.False(t, payload.HasBreakthrough)
	assert.Nil(t, payload.Primary)
	assert.Zero(t, out.Confidence)
}

func TestBreakthroughUnknownTypeIsSchemaFailure(t *testing.T) {
	client := &fakeLLM{replies: []string{`{
		"has_breakthrough": true,
		"primary": {
			"type": "sudden_epiphany",
			"description": "d", "evidence": "e", "confidence": 0.9,
			"timestamp_start": 1, "timestamp_end": 2, "dialogue_excerpt": "x"
		}
	}`}}
	unit := NewBreakthroughDetector(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassSchema, aerr.Class)
}

func TestBreakthroughAssertedWithoutPrimaryIsSchemaFailure(t *testing.T) {
	client := &fakeLLM{replies: []string{`{"has_breakthrough": true}`}}
	unit := NewBreakthroughDetector(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassSchema, aerr.Class)
}

func TestBreakthroughInvertedTimestampsRejected(t *testing.T) {
	client := &fakeLLM{replies: []string{`{
		"has_breakthrough": true,
		"primary": {
			"type": "emotional_shift",
			"description": "d", "evidence": "e", "confidence": 0.9,
			"timestamp_start": 80, "timestamp_end": 41, "dialogue_excerpt": "x"
		}
	}`}}
	unit := NewBreakthroughDetector(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassSchema, aerr.Class)
}
