package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/pkg/llm"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

func TestMoodAnalyzeHappyPath(t *testing.T) {
	client := &fakeLLM{replies: []string{`{
		"score": 7.3,
		"confidence": 0.85,
		"rationale": "The patient reports improved sleep and reduced self-criticism.",
		"key_indicators": ["improved sleep", "reduced self-judgment"],
		"emotional_tone": "hopeful"
	}`}}
	unit := NewMoodAnalyzer(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)

	payload := out.Payload.(*models.MoodResult)
	assert.Equal(t, 7.5, payload.Score, "score snaps to the nearest 0.5")
	assert.Equal(t, 0.85, payload.Confidence)
	assert.Equal(t, "hopeful", payload.EmotionalTone)
	assert.Len(t, payload.KeyIndicators, 2)
	assert.Equal(t, "gpt-4o-mini", out.ModelID)
	assert.Positive(t, out.CostUSD)
}

func TestMoodPromptUsesPatientDialogueOnly(t *testing.T) {
	client := &fakeLLM{replies: []string{`{"score": 5, "confidence": 0.5, "rationale": "ok", "emotional_tone": "flat"}`}}
	unit := NewMoodAnalyzer(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)

	req := client.lastRequest()
	require.NotNil(t, req)
	user := req.Messages[1].Content
	assert.Contains(t, user, "breathing exercise")
	assert.NotContains(t, user, "How have you been sleeping", "therapist turns are filtered out")
	assert.True(t, req.JSONOnly)
}

func TestMoodScoreClampsToRange(t *testing.T) {
	client := &fakeLLM{replies: []string{`{"score": 11.4, "confidence": 1.7, "rationale": "r", "emotional_tone": "t"}`}}
	unit := NewMoodAnalyzer(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)

	payload := out.Payload.(*models.MoodResult)
	assert.Equal(t, 10.0, payload.Score)
	assert.Equal(t, 1.0, payload.Confidence)
}

func TestMoodMissingFieldIsSchemaFailure(t *testing.T) {
	client := &fakeLLM{replies: []string{`{"confidence": 0.8, "rationale": "r", "emotional_tone": "t"}`}}
	unit := NewMoodAnalyzer(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassSchema, aerr.Class)
	assert.True(t, aerr.Retryable())

	// The call itself succeeded, so the tokens it consumed stay priced.
	assert.Equal(t, 100, aerr.Usage.PromptTokens)
	assert.Equal(t, 20, aerr.Usage.CompletionTokens)
	assert.Positive(t, aerr.CostUSD)
	assert.Equal(t, "gpt-4o-mini", aerr.ModelID)
}

func TestMoodToleratesFencedJSON(t *testing.T) {
	client := &fakeLLM{replies: []string{"```json\n{\"score\": 4, \"confidence\": 0.6, \"rationale\": \"r\", \"emotional_tone\": \"low\"}\n```"}}
	unit := NewMoodAnalyzer(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)
	assert.Equal(t, 4.0, out.Payload.(*models.MoodResult).Score)
}

func TestMoodRateLimitMapsToTransientWithHint(t *testing.T) {
	client := &fakeLLM{errs: []error{&llm.Error{
		Category:   llm.CategoryRateLimited,
		RetryAfter: 2_000_000_000, // 2s
		Err:        context.DeadlineExceeded,
	}}}
	unit := NewMoodAnalyzer(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassTransient, aerr.Class)
	assert.Equal(t, int64(2_000_000_000), int64(aerr.RetryAfter))
}

func TestMoodStrictRepromptAppendsReminder(t *testing.T) {
	client := &fakeLLM{replies: []string{`{"score": 5, "confidence": 0.5, "rationale": "r", "emotional_tone": "flat"}`}}
	unit := NewMoodAnalyzer(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 2, StrictJSON: true})
	require.Nil(t, aerr)

	req := client.lastRequest()
	require.Len(t, req.Messages, 3)
	assert.True(t, strings.Contains(req.Messages[2].Content, "ONLY a single valid JSON object"))
}

func TestMoodNoPatientDialogue(t *testing.T) {
	segments := []transcript.Segment{
		{StartSec: 0, EndSec: 5, Speaker: "SPEAKER_00", Text: "Hello?"},
	}
	sc := &SessionContext{SessionID: "s", Transcript: transcript.New(segments, "SPEAKER_00")}

	unit := NewMoodAnalyzer(testDeps(&fakeLLM{}))
	_, aerr := unit.Analyze(context.Background(), sc, Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassSchema, aerr.Class)
}
