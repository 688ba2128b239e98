package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

const deepSystemPrompt = `You are a clinical analysis assistant producing a structured deep analysis of a therapy session. You receive the transcript plus the outputs of earlier per-session analyses (mood, topics, breakthrough). Some earlier analyses may be marked unavailable; work with what exists and never invent their contents.

Cover:
- progress indicators relative to prior sessions (only if prior session notes are supplied; otherwise return an empty list)
- coping skills the patient used or rehearsed
- relational patterns visible in the dialogue
- risk flags with severity ("low", "moderate", or "high") and supporting evidence
- recommended follow-up topics for the next session
- unresolved concerns the session surfaced but did not close

Respond with a single JSON object:
{
  "progress_indicators": ["<observation>", ...],
  "coping_skills": ["<skill>", ...],
  "relational_patterns": ["<pattern>", ...],
  "risk_flags": [{"flag": "<risk>", "severity": "<low|moderate|high>", "evidence": "<dialogue basis>"}, ...],
  "recommended_follow_up_topics": ["<topic>", ...],
  "unresolved_concerns": ["<concern>", ...],
  "analysis_confidence": <number in [0.0, 1.0]>
}`

// DeepAnalyzer produces the Wave-2 clinical analysis, consuming every
// Wave-1 payload verbatim as context.
type DeepAnalyzer struct {
	deps Deps
}

// NewDeepAnalyzer creates the deep-analysis unit.
func NewDeepAnalyzer(deps Deps) *DeepAnalyzer {
	return &DeepAnalyzer{deps: deps}
}

// Kind implements Analyzer.
func (a *DeepAnalyzer) Kind() models.Kind { return models.KindDeep }

// Task implements Analyzer.
func (a *DeepAnalyzer) Task() string { return "deep" }

// Dependencies implements Analyzer.
func (a *DeepAnalyzer) Dependencies() []models.Kind {
	return []models.Kind{models.KindTopics}
}

// Analyze implements Analyzer.
func (a *DeepAnalyzer) Analyze(ctx context.Context, sc *SessionContext, attempt Attempt) (*Output, *Error) {
	if sc.Topics == nil {
		return nil, &Error{Class: ClassConfig, Err: fmt.Errorf("deep analysis requires the topics artifact")}
	}

	dialogue := fitToBudget(sc.Transcript, sc.Transcript.Segments, a.deps.Analysis.TranscriptTokenBudget)

	var b strings.Builder
	b.WriteString("Earlier per-session analyses:\n")
	writeWaveContext(&b, "mood", sc.Mood)
	writeWaveContext(&b, "topics", sc.Topics)
	writeWaveContext(&b, "breakthrough", sc.Breakthrough)

	b.WriteString("\nPrior session notes:\n")
	if len(sc.PriorSessionSummaries) == 0 {
		b.WriteString("(none supplied)\n")
	} else {
		for i, summary := range sc.PriorSessionSummaries {
			fmt.Fprintf(&b, "%d. %s\n", i+1, summary)
		}
	}

	b.WriteString("\nSession transcript:\n\n")
	b.WriteString(dialogue)

	doc, meta, aerr := a.deps.callJSON(ctx, a.Task(), systemAndUser(deepSystemPrompt, b.String()), 0.3, 4096, attempt)
	if aerr != nil {
		return nil, aerr
	}

	confidence, aerr := requireNumber(doc, "analysis_confidence")
	if aerr != nil {
		return nil, meta.tag(aerr)
	}

	riskFlags, aerr := parseRiskFlags(doc.Get("risk_flags"))
	if aerr != nil {
		return nil, meta.tag(aerr)
	}

	payload := &models.DeepResult{
		ProgressIndicators: stringSlice(doc, "progress_indicators"),
		CopingSkills:       stringSlice(doc, "coping_skills"),
		RelationalPatterns: stringSlice(doc, "relational_patterns"),
		RiskFlags:          riskFlags,
		FollowUpTopics:     stringSlice(doc, "recommended_follow_up_topics"),
		UnresolvedConcerns: stringSlice(doc, "unresolved_concerns"),
		Confidence:         clamp01(confidence),
		ModelID:            meta.ModelID,
		ProducedAt:         time.Now().UTC(),
	}

	return &Output{
		Payload:    payload,
		Confidence: payload.Confidence,
		ModelID:    meta.ModelID,
		Usage:      meta.Usage,
		CostUSD:    meta.CostUSD,
	}, nil
}

// writeWaveContext embeds one Wave-1 payload verbatim, or marks it missing.
// Absent analyses are stated explicitly so the model cannot fabricate them.
func writeWaveContext(b *strings.Builder, name string, payload interface{}) {
	fmt.Fprintf(b, "\n## %s\n", name)
	if isNilPayload(payload) {
		b.WriteString("(analysis unavailable for this session)\n")
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		b.WriteString("(analysis unavailable for this session)\n")
		return
	}
	b.Write(raw)
	b.WriteString("\n")
}

func isNilPayload(payload interface{}) bool {
	switch v := payload.(type) {
	case *models.MoodResult:
		return v == nil
	case *models.TopicsResult:
		return v == nil
	case *models.BreakthroughResult:
		return v == nil
	}
	return payload == nil
}

// parseRiskFlags validates the risk_flags array. An empty or missing array
// is valid — most sessions carry no flagged risk.
func parseRiskFlags(arr gjson.Result) ([]models.RiskFlag, *Error) {
	var flags []models.RiskFlag
	for _, item := range arr.Array() {
		flag, aerr := requireString(item, "flag")
		if aerr != nil {
			return nil, aerr
		}
		severity := models.RiskSeverity(strings.ToLower(item.Get("severity").String()))
		switch severity {
		case models.RiskLow, models.RiskModerate, models.RiskHigh:
		default:
			return nil, schemaError("risk flag %q has unknown severity %q", flag, item.Get("severity").String())
		}
		flags = append(flags, models.RiskFlag{
			Flag:     flag,
			Severity: severity,
			Evidence: strings.TrimSpace(item.Get("evidence").String()),
		})
	}
	return flags, nil
}
