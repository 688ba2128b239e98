package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

const moodSystemPrompt = `You are a clinical assessment assistant scoring the mood of a therapy patient from their dialogue in one session. You only see the patient's side of the conversation.

Score mood on a 0.0-10.0 scale in 0.5 increments, where 0 is severe distress and 10 is stable, positive wellbeing. Weigh, in order:
- suicidal or self-harm ideation (any presence pulls the score sharply down)
- hopelessness and anhedonia
- prevalence and intensity of negative emotional language
- clinical symptom markers (sleep, appetite, energy, concentration)
- hopefulness, future orientation, and engagement with the session

The score is a holistic assessment of the whole session, not the final minutes.

Respond with a single JSON object:
{
  "score": <number, multiple of 0.5 in [0.0, 10.0]>,
  "confidence": <number in [0.0, 1.0]>,
  "rationale": "<2-3 sentences citing the dialogue>",
  "key_indicators": ["<short phrase>", ...],
  "emotional_tone": "<one- or two-word label>"
}`

// MoodAnalyzer scores per-session patient mood from the patient-only
// transcript view.
type MoodAnalyzer struct {
	deps Deps
}

// NewMoodAnalyzer creates the mood unit.
func NewMoodAnalyzer(deps Deps) *MoodAnalyzer {
	return &MoodAnalyzer{deps: deps}
}

// Kind implements Analyzer.
func (a *MoodAnalyzer) Kind() models.Kind { return models.KindMood }

// Task implements Analyzer.
func (a *MoodAnalyzer) Task() string { return "mood" }

// Dependencies implements Analyzer.
func (a *MoodAnalyzer) Dependencies() []models.Kind { return nil }

// Analyze implements Analyzer.
func (a *MoodAnalyzer) Analyze(ctx context.Context, sc *SessionContext, attempt Attempt) (*Output, *Error) {
	patientView := sc.Transcript.PatientOnly()
	if len(patientView) == 0 {
		return nil, schemaError("session %s has no patient dialogue to score", sc.SessionID)
	}
	dialogue := fitToBudget(sc.Transcript, patientView, a.deps.Analysis.TranscriptTokenBudget)

	messages := systemAndUser(moodSystemPrompt,
		fmt.Sprintf("Patient dialogue from the session:\n\n%s", dialogue))

	doc, meta, aerr := a.deps.callJSON(ctx, a.Task(), messages, 0.3, 1024, attempt)
	if aerr != nil {
		return nil, aerr
	}

	score, aerr := requireNumber(doc, "score")
	if aerr != nil {
		return nil, meta.tag(aerr)
	}
	confidence, aerr := requireNumber(doc, "confidence")
	if aerr != nil {
		return nil, meta.tag(aerr)
	}
	rationale, aerr := requireString(doc, "rationale")
	if aerr != nil {
		return nil, meta.tag(aerr)
	}
	tone, aerr := requireString(doc, "emotional_tone")
	if aerr != nil {
		return nil, meta.tag(aerr)
	}

	payload := &models.MoodResult{
		Score:         snapToHalf(score),
		Confidence:    clamp01(confidence),
		Rationale:     rationale,
		KeyIndicators: stringSlice(doc, "key_indicators"),
		EmotionalTone: tone,
		ModelID:       meta.ModelID,
		ProducedAt:    time.Now().UTC(),
	}

	return &Output{
		Payload:    payload,
		Confidence: payload.Confidence,
		ModelID:    meta.ModelID,
		Usage:      meta.Usage,
		CostUSD:    meta.CostUSD,
	}, nil
}
