package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

const actionSummarySystemPrompt = `You condense two therapy homework items into one short phrase for a session card.

Rules:
- at most 45 characters
- combine or pick the essence of both items
- imperative phrasing, no trailing punctuation

Respond with a single JSON object:
{"text": "<phrase>"}`

// actionSummaryMaxGraphemes is the display budget on session cards.
const actionSummaryMaxGraphemes = 45

// ActionSummarizer condenses the two topic action items into a card phrase.
// It runs sequentially after the topic extractor succeeds and uses the
// cheapest tier at deterministic temperature.
type ActionSummarizer struct {
	deps Deps
}

// NewActionSummarizer creates the action-summary unit.
func NewActionSummarizer(deps Deps) *ActionSummarizer {
	return &ActionSummarizer{deps: deps}
}

// Kind implements Analyzer.
func (a *ActionSummarizer) Kind() models.Kind { return models.KindActionSummary }

// Task implements Analyzer.
func (a *ActionSummarizer) Task() string { return "action_summary" }

// Dependencies implements Analyzer.
func (a *ActionSummarizer) Dependencies() []models.Kind {
	return []models.Kind{models.KindTopics}
}

// Analyze implements Analyzer.
func (a *ActionSummarizer) Analyze(ctx context.Context, sc *SessionContext, attempt Attempt) (*Output, *Error) {
	if sc.Topics == nil || len(sc.Topics.ActionItems) != 2 {
		return nil, &Error{Class: ClassConfig, Err: fmt.Errorf("action summary requires the topics artifact")}
	}

	user := fmt.Sprintf("Homework items:\n1. %s\n2. %s", sc.Topics.ActionItems[0], sc.Topics.ActionItems[1])

	doc, meta, aerr := a.deps.callJSON(ctx, a.Task(), systemAndUser(actionSummarySystemPrompt, user), 0, 128, attempt)
	if aerr != nil {
		return nil, aerr
	}

	text, aerr := requireString(doc, "text")
	if aerr != nil {
		return nil, meta.tag(aerr)
	}

	payload := &models.ActionSummaryResult{
		Text:       truncateGraphemes(text, actionSummaryMaxGraphemes),
		ModelID:    meta.ModelID,
		ProducedAt: time.Now().UTC(),
	}

	return &Output{
		Payload:    payload,
		Confidence: 1,
		ModelID:    meta.ModelID,
		Usage:      meta.Usage,
		CostUSD:    meta.CostUSD,
	}, nil
}
