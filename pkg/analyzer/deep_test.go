package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

const deepReply = `{
	"progress_indicators": ["applied breathing exercise independently"],
	"coping_skills": ["paced breathing", "non-judgmental stance"],
	"relational_patterns": ["seeks approval before self-evaluation"],
	"risk_flags": [{"flag": "residual insomnia", "severity": "low", "evidence": "wakes at night"}],
	"recommended_follow_up_topics": ["generalizing the non-judgmental stance"],
	"unresolved_concerns": ["work stress not yet addressed"],
	"analysis_confidence": 0.74
}`

func deepContext() *SessionContext {
	sc := testSessionContext()
	sc.Topics = topicsFixture()
	sc.Mood = &models.MoodResult{Score: 7.5, Confidence: 0.85, Rationale: "improving", EmotionalTone: "hopeful"}
	return sc
}

func TestDeepAnalyzeHappyPath(t *testing.T) {
	client := &fakeLLM{replies: []string{deepReply}}
	unit := NewDeepAnalyzer(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), deepContext(), Attempt{Number: 1})
	require.Nil(t, aerr)

	payload := out.Payload.(*models.DeepResult)
	assert.Equal(t, 0.74, payload.Confidence)
	require.Len(t, payload.RiskFlags, 1)
	assert.Equal(t, models.RiskLow, payload.RiskFlags[0].Severity)
	assert.Equal(t, "gpt-4o", out.ModelID, "deep analysis routes to the precision tier")
}

func TestDeepPromptEmbedsWave1PayloadsVerbatim(t *testing.T) {
	client := &fakeLLM{replies: []string{deepReply}}
	unit := NewDeepAnalyzer(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), deepContext(), Attempt{Number: 1})
	require.Nil(t, aerr)

	user := client.lastRequest().Messages[1].Content
	assert.Contains(t, user, `"score":7.5`, "mood payload embedded as JSON")
	assert.Contains(t, user, "Keep a sleep log", "topics payload embedded")
	assert.Contains(t, user, "(analysis unavailable for this session)", "absent breakthrough marked missing")
	assert.Contains(t, user, "(none supplied)", "absent prior sessions marked missing")
}

func TestDeepRequiresTopics(t *testing.T) {
	unit := NewDeepAnalyzer(testDeps(&fakeLLM{}))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassConfig, aerr.Class)
}

func TestDeepUnknownRiskSeverityRejected(t *testing.T) {
	client := &fakeLLM{replies: []string{`{
		"risk_flags": [{"flag": "x", "severity": "catastrophic"}],
		"analysis_confidence": 0.7
	}`}}
	unit := NewDeepAnalyzer(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), deepContext(), Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassSchema, aerr.Class)
}

func TestDeepEmptyListsAreValid(t *testing.T) {
	client := &fakeLLM{replies: []string{`{"analysis_confidence": 0.55}`}}
	unit := NewDeepAnalyzer(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), deepContext(), Attempt{Number: 1})
	require.Nil(t, aerr)
	assert.Empty(t, out.Payload.(*models.DeepResult).RiskFlags)
}
