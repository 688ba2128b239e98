// Package models defines the shared request, response, and artifact payload
// types exchanged between the API layer, services, and the orchestrator.
package models

import "time"

// Kind identifies one analyzer output type.
type Kind string

// Analyzer kinds.
const (
	KindMood          Kind = "mood"
	KindTopics        Kind = "topics"
	KindActionSummary Kind = "action_summary"
	KindBreakthrough  Kind = "breakthrough"
	KindDeep          Kind = "deep"
)

// AllKinds lists every artifact kind in wave order.
var AllKinds = []Kind{KindMood, KindTopics, KindActionSummary, KindBreakthrough, KindDeep}

// Wave1Kinds are the independent kinds scheduled concurrently in Wave 1.
var Wave1Kinds = []Kind{KindMood, KindTopics, KindBreakthrough}

// Valid reports whether k names a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindMood, KindTopics, KindActionSummary, KindBreakthrough, KindDeep:
		return true
	}
	return false
}

// MoodResult is the current mood artifact stored on the session row.
// Score is a holistic per-session assessment snapped to multiples of 0.5
// in [0, 10].
type MoodResult struct {
	Score         float64   `json:"score"`
	Confidence    float64   `json:"confidence"`
	Rationale     string    `json:"rationale"`
	KeyIndicators []string  `json:"key_indicators"`
	EmotionalTone string    `json:"emotional_tone"`
	ModelID       string    `json:"model_id"`
	ProducedAt    time.Time `json:"produced_at"`
}

// TopicsResult is the current topics artifact stored on the session row.
type TopicsResult struct {
	Topics      []string  `json:"topics"`
	ActionItems []string  `json:"action_items"`
	TechniqueID string    `json:"technique_id,omitempty"`
	Summary     string    `json:"summary"`
	Confidence  float64   `json:"extraction_confidence"`
	ModelID     string    `json:"model_id"`
	ProducedAt  time.Time `json:"produced_at"`
}

// ActionSummaryResult condenses the two action items into a display phrase
// of at most 45 graphemes.
type ActionSummaryResult struct {
	Text       string    `json:"text"`
	ModelID    string    `json:"model_id"`
	ProducedAt time.Time `json:"produced_at"`
}

// BreakthroughType classifies a detected breakthrough moment.
type BreakthroughType string

// Breakthrough typology.
const (
	BreakthroughCognitiveInsight      BreakthroughType = "cognitive_insight"
	BreakthroughEmotionalShift        BreakthroughType = "emotional_shift"
	BreakthroughBehavioralCommitment  BreakthroughType = "behavioral_commitment"
	BreakthroughRelationalRealization BreakthroughType = "relational_realization"
	BreakthroughSelfCompassion        BreakthroughType = "self_compassion"
)

// ValidBreakthroughType reports whether t is part of the typology.
func ValidBreakthroughType(t BreakthroughType) bool {
	switch t {
	case BreakthroughCognitiveInsight, BreakthroughEmotionalShift,
		BreakthroughBehavioralCommitment, BreakthroughRelationalRealization,
		BreakthroughSelfCompassion:
		return true
	}
	return false
}

// Breakthrough is one detected moment with its dialogue evidence.
type Breakthrough struct {
	Type            BreakthroughType `json:"type"`
	Description     string           `json:"description"`
	Evidence        string           `json:"evidence"`
	Confidence      float64          `json:"confidence"`
	TimestampStart  float64          `json:"timestamp_start"`
	TimestampEnd    float64          `json:"timestamp_end"`
	DialogueExcerpt string           `json:"dialogue_excerpt"`
}

// BreakthroughResult is the current breakthrough artifact. HasBreakthrough
// is false when the primary candidate's confidence falls below the
// guardrail threshold, regardless of what the model asserted.
type BreakthroughResult struct {
	HasBreakthrough bool           `json:"has_breakthrough"`
	Primary         *Breakthrough  `json:"primary,omitempty"`
	All             []Breakthrough `json:"all_breakthroughs,omitempty"`
	ModelID         string         `json:"model_id"`
	ProducedAt      time.Time      `json:"produced_at"`
}

// RiskSeverity grades a risk flag.
type RiskSeverity string

// Risk severities.
const (
	RiskLow      RiskSeverity = "low"
	RiskModerate RiskSeverity = "moderate"
	RiskHigh     RiskSeverity = "high"
)

// RiskFlag is one clinical risk surfaced by the deep analysis.
type RiskFlag struct {
	Flag     string       `json:"flag"`
	Severity RiskSeverity `json:"severity"`
	Evidence string       `json:"evidence,omitempty"`
}

// DeepResult is the current deep-analysis artifact.
type DeepResult struct {
	ProgressIndicators []string   `json:"progress_indicators"`
	CopingSkills       []string   `json:"coping_skills"`
	RelationalPatterns []string   `json:"relational_patterns"`
	RiskFlags          []RiskFlag `json:"risk_flags"`
	FollowUpTopics     []string   `json:"recommended_follow_up_topics"`
	UnresolvedConcerns []string   `json:"unresolved_concerns"`
	Confidence         float64    `json:"analysis_confidence"`
	ModelID            string     `json:"model_id"`
	ProducedAt         time.Time  `json:"produced_at"`
}
