package analyzer

import (
	"context"
	"time"

	"github.com/tidwall/gjson"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

const breakthroughSystemPrompt = `You are a clinical analysis assistant detecting breakthrough moments in a therapy session transcript.

A breakthrough is a clearly observable shift, one of:
- cognitive_insight: the patient articulates a new understanding of their own thinking
- emotional_shift: a marked in-session change in emotional state or expression
- behavioral_commitment: a specific, self-initiated commitment to act differently
- relational_realization: a new understanding of a relationship pattern
- self_compassion: a shift from self-criticism toward self-acceptance

Requirements:
- cite evidence as specific dialogue lines with their timestamps; never paraphrase without quoting
- report at most one primary breakthrough (the most significant) plus any secondary ones
- if nothing qualifies, say so; most sessions have no breakthrough

Respond with a single JSON object:
{
  "has_breakthrough": <bool>,
  "primary": {
    "type": "<one of the five types>",
    "description": "<what shifted>",
    "evidence": "<why this qualifies, citing the dialogue>",
    "confidence": <number in [0.0, 1.0]>,
    "timestamp_start": <seconds>,
    "timestamp_end": <seconds>,
    "dialogue_excerpt": "<verbatim patient words>"
  },
  "all_breakthroughs": [<same shape as primary>, ...]
}
Omit "primary" when has_breakthrough is false.`

// BreakthroughDetector identifies breakthrough moments with cited dialogue
// evidence. A confidence guardrail overrides the model's own assertion.
type BreakthroughDetector struct {
	deps Deps
}

// NewBreakthroughDetector creates the breakthrough unit.
func NewBreakthroughDetector(deps Deps) *BreakthroughDetector {
	return &BreakthroughDetector{deps: deps}
}

// Kind implements Analyzer.
func (a *BreakthroughDetector) Kind() models.Kind { return models.KindBreakthrough }

// Task implements Analyzer.
func (a *BreakthroughDetector) Task() string { return "breakthrough" }

// Dependencies implements Analyzer.
func (a *BreakthroughDetector) Dependencies() []models.Kind { return nil }

// Analyze implements Analyzer.
func (a *BreakthroughDetector) Analyze(ctx context.Context, sc *SessionContext, attempt Attempt) (*Output, *Error) {
	dialogue := fitToBudget(sc.Transcript, sc.Transcript.Segments, a.deps.Analysis.TranscriptTokenBudget)

	doc, meta, aerr := a.deps.callJSON(ctx, a.Task(),
		systemAndUser(breakthroughSystemPrompt, "Session transcript:\n\n"+dialogue), 0.3, 2048, attempt)
	if aerr != nil {
		return nil, aerr
	}

	has := doc.Get("has_breakthrough")
	if !has.IsBool() {
		return nil, meta.tag(schemaError("field %q missing or not a boolean", "has_breakthrough"))
	}

	var all []models.Breakthrough
	for _, item := range doc.Get("all_breakthroughs").Array() {
		bt, aerr := parseBreakthrough(item)
		if aerr != nil {
			return nil, meta.tag(aerr)
		}
		all = append(all, *bt)
	}

	payload := &models.BreakthroughResult{
		HasBreakthrough: has.Bool(),
		All:             all,
		ModelID:         meta.ModelID,
		ProducedAt:      time.Now().UTC(),
	}

	if payload.HasBreakthrough {
		primaryDoc := doc.Get("primary")
		if !primaryDoc.IsObject() {
			return nil, meta.tag(schemaError("has_breakthrough is true but %q is missing", "primary"))
		}
		primary, aerr := parseBreakthrough(primaryDoc)
		if aerr != nil {
			return nil, meta.tag(aerr)
		}

		// Guardrail: a low-confidence primary is reported as no
		// breakthrough, whatever the model asserted. The candidate stays in
		// all_breakthroughs for clinician review.
		if primary.Confidence < a.deps.Analysis.BreakthroughConfidenceThreshold {
			payload.HasBreakthrough = false
			if !containsBreakthrough(payload.All, primary) {
				payload.All = append(payload.All, *primary)
			}
		} else {
			payload.Primary = primary
		}
	}

	confidence := 0.0
	if payload.Primary != nil {
		confidence = payload.Primary.Confidence
	}

	return &Output{
		Payload:    payload,
		Confidence: confidence,
		ModelID:    meta.ModelID,
		Usage:      meta.Usage,
		CostUSD:    meta.CostUSD,
	}, nil
}

// parseBreakthrough validates one breakthrough object.
func parseBreakthrough(doc gjson.Result) (*models.Breakthrough, *Error) {
	typ, aerr := requireString(doc, "type")
	if aerr != nil {
		return nil, aerr
	}
	btType := models.BreakthroughType(typ)
	if !models.ValidBreakthroughType(btType) {
		return nil, schemaError("unknown breakthrough type %q", typ)
	}

	description, aerr := requireString(doc, "description")
	if aerr != nil {
		return nil, aerr
	}
	evidence, aerr := requireString(doc, "evidence")
	if aerr != nil {
		return nil, aerr
	}
	excerpt, aerr := requireString(doc, "dialogue_excerpt")
	if aerr != nil {
		return nil, aerr
	}
	confidence, aerr := requireNumber(doc, "confidence")
	if aerr != nil {
		return nil, aerr
	}
	start, aerr := requireNumber(doc, "timestamp_start")
	if aerr != nil {
		return nil, aerr
	}
	end, aerr := requireNumber(doc, "timestamp_end")
	if aerr != nil {
		return nil, aerr
	}
	if end < start {
		return nil, schemaError("breakthrough timestamps are inverted: %f > %f", start, end)
	}

	return &models.Breakthrough{
		Type:            btType,
		Description:     description,
		Evidence:        evidence,
		Confidence:      clamp01(confidence),
		TimestampStart:  start,
		TimestampEnd:    end,
		DialogueExcerpt: excerpt,
	}, nil
}

func containsBreakthrough(list []models.Breakthrough, bt *models.Breakthrough) bool {
	for _, existing := range list {
		if existing.Type == bt.Type && existing.TimestampStart == bt.TimestampStart {
			return true
		}
	}
	return false
}
