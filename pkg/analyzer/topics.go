package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

const topicsSystemPrompt = `You are a clinical documentation assistant extracting structured notes from a therapy session transcript.

Identify:
- the 1-2 main discussion topics of the session
- exactly 2 concrete action items: specific, doable homework the patient is likely to have taken away
- the single dominant therapeutic technique used, as a technique id from the list provided (use a short free-text id if none fits)
- a brief clinician-style summary of the session, at most 150 characters

Respond with a single JSON object:
{
  "topics": ["<topic>", "<topic if a clear second exists>"],
  "action_items": ["<action>", "<action>"],
  "technique_id": "<id>",
  "summary": "<summary>",
  "extraction_confidence": <number in [0.0, 1.0]>
}`

// TopicExtractor pulls topics, homework action items, the dominant
// technique, and a short summary from the full transcript.
type TopicExtractor struct {
	deps Deps
}

// NewTopicExtractor creates the topics unit.
func NewTopicExtractor(deps Deps) *TopicExtractor {
	return &TopicExtractor{deps: deps}
}

// Kind implements Analyzer.
func (a *TopicExtractor) Kind() models.Kind { return models.KindTopics }

// Task implements Analyzer.
func (a *TopicExtractor) Task() string { return "topics" }

// Dependencies implements Analyzer.
func (a *TopicExtractor) Dependencies() []models.Kind { return nil }

// Analyze implements Analyzer.
func (a *TopicExtractor) Analyze(ctx context.Context, sc *SessionContext, attempt Attempt) (*Output, *Error) {
	dialogue := fitToBudget(sc.Transcript, sc.Transcript.Segments, a.deps.Analysis.TranscriptTokenBudget)

	ids := a.deps.Techniques.IDs()
	sort.Strings(ids)

	user := fmt.Sprintf("Known technique ids: %s\n\nSession transcript:\n\n%s",
		strings.Join(ids, ", "), dialogue)

	doc, meta, aerr := a.deps.callJSON(ctx, a.Task(), systemAndUser(topicsSystemPrompt, user), 0.3, 1024, attempt)
	if aerr != nil {
		return nil, aerr
	}

	topics := stringSlice(doc, "topics")
	if len(topics) == 0 {
		return nil, meta.tag(schemaError("field %q must name at least one topic", "topics"))
	}
	if len(topics) > 2 {
		topics = topics[:2]
	}

	actionItems := stringSlice(doc, "action_items")
	if len(actionItems) != 2 {
		return nil, meta.tag(schemaError("field %q must contain exactly 2 items, got %d", "action_items", len(actionItems)))
	}

	summary, aerr := requireString(doc, "summary")
	if aerr != nil {
		return nil, meta.tag(aerr)
	}
	confidence, aerr := requireNumber(doc, "extraction_confidence")
	if aerr != nil {
		return nil, meta.tag(aerr)
	}

	// technique_id is accepted as free text; unknown ids simply resolve to
	// no definition downstream.
	techniqueID := strings.TrimSpace(doc.Get("technique_id").String())

	payload := &models.TopicsResult{
		Topics:      topics,
		ActionItems: actionItems,
		TechniqueID: techniqueID,
		Summary:     truncateRunesAt(summary, 150),
		Confidence:  clamp01(confidence),
		ModelID:     meta.ModelID,
		ProducedAt:  time.Now().UTC(),
	}

	return &Output{
		Payload:    payload,
		Confidence: payload.Confidence,
		ModelID:    meta.ModelID,
		Usage:      meta.Usage,
		CostUSD:    meta.CostUSD,
	}, nil
}
