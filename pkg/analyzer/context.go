package analyzer

import (
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

// SessionContext exposes everything an analyzer may read: the transcript,
// the patient-dialogue-only view, and the prior-wave outputs the unit
// declared as dependencies. Analyzers hold no cross-session state.
type SessionContext struct {
	SessionID  string
	Transcript *transcript.Transcript

	// Prior-wave outputs. Nil = not produced (failed or not yet run).
	Mood         *models.MoodResult
	Topics       *models.TopicsResult
	Breakthrough *models.BreakthroughResult

	// PriorSessionSummaries are clinician summaries from earlier sessions
	// with the same patient, oldest first. Optional; the deep analysis
	// marks them absent rather than fabricating history.
	PriorSessionSummaries []string
}

// Dependency satisfaction helper used by the orchestrator before scheduling.
func (sc *SessionContext) Has(kind models.Kind) bool {
	switch kind {
	case models.KindMood:
		return sc.Mood != nil
	case models.KindTopics:
		return sc.Topics != nil
	case models.KindBreakthrough:
		return sc.Breakthrough != nil
	}
	return false
}
