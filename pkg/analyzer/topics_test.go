package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

func TestTopicsAnalyzeHappyPath(t *testing.T) {
	client := &fakeLLM{replies: []string{`{
		"topics": ["sleep difficulties", "self-criticism"],
		"action_items": ["Practice breathing exercise nightly", "Keep a sleep log"],
		"technique_id": "cognitive_restructuring",
		"summary": "Patient consolidated gains on sleep; worked on softening self-judgment.",
		"extraction_confidence": 0.92
	}`}}
	unit := NewTopicExtractor(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)

	payload := out.Payload.(*models.TopicsResult)
	assert.Len(t, payload.Topics, 2)
	assert.Len(t, payload.ActionItems, 2)
	assert.Equal(t, "cognitive_restructuring", payload.TechniqueID)
	assert.Equal(t, 0.92, payload.Confidence)

	// The prompt advertises the known technique ids.
	req := client.lastRequest()
	assert.Contains(t, req.Messages[1].Content, "cognitive_restructuring")
}

func TestTopicsClampsToTwoTopics(t *testing.T) {
	client := &fakeLLM{replies: []string{`{
		"topics": ["a", "b", "c"],
		"action_items": ["x", "y"],
		"summary": "s",
		"extraction_confidence": 0.5
	}`}}
	unit := NewTopicExtractor(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)
	assert.Equal(t, []string{"a", "b"}, out.Payload.(*models.TopicsResult).Topics)
}

func TestTopicsRequiresExactlyTwoActionItems(t *testing.T) {
	client := &fakeLLM{replies: []string{`{
		"topics": ["a"],
		"action_items": ["only one"],
		"summary": "s",
		"extraction_confidence": 0.5
	}`}}
	unit := NewTopicExtractor(testDeps(client))

	_, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.NotNil(t, aerr)
	assert.Equal(t, ClassSchema, aerr.Class)
}

func TestTopicsSummaryTruncatedTo150(t *testing.T) {
	long := strings.Repeat("clinical observation ", 20)
	client := &fakeLLM{replies: []string{`{
		"topics": ["a"],
		"action_items": ["x", "y"],
		"summary": "` + long + `",
		"extraction_confidence": 0.5
	}`}}
	unit := NewTopicExtractor(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)
	assert.LessOrEqual(t, len([]rune(out.Payload.(*models.TopicsResult).Summary)), 150)
}

func TestTopicsUnknownTechniqueAcceptedAsFreeText(t *testing.T) {
	client := &fakeLLM{replies: []string{`{
		"topics": ["grief"],
		"action_items": ["x", "y"],
		"technique_id": "narrative_therapy",
		"summary": "s",
		"extraction_confidence": 0.7
	}`}}
	unit := NewTopicExtractor(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)
	assert.Equal(t, "narrative_therapy", out.Payload.(*models.TopicsResult).TechniqueID)
}

func TestTopicsMissingTechniqueIsAllowed(t *testing.T) {
	client := &fakeLLM{replies: []string{`{
		"topics": ["grief"],
		"action_items": ["x", "y"],
		"summary": "s",
		"extraction_confidence": 0.7
	}`}}
	unit := NewTopicExtractor(testDeps(client))

	out, aerr := unit.Analyze(context.Background(), testSessionContext(), Attempt{Number: 1})
	require.Nil(t, aerr)
	assert.Empty(t, out.Payload.(*models.TopicsResult).TechniqueID)
}
