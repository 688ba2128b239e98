// Package analyzer implements the clinical analysis units: prompt assembly,
// model calls, and strict parsing of structured model output. Each unit
// produces one artifact kind; the orchestrator schedules them across waves.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/llm"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/router"
	"github.com/evolvedtroglodyte/therabridge/pkg/techniques"
)

// Class buckets analyzer failures for retry decisions.
type Class string

// Failure classes.
const (
	// ClassTransient covers timeouts, rate limits, and 5xx transport
	// failures. Retried with backoff.
	ClassTransient Class = "transient"
	// ClassSchema covers unparseable or invalid model output. Retried once
	// with a strict JSON-only re-prompt, then terminal.
	ClassSchema Class = "schema"
	// ClassConfig covers routing/configuration failures. Fatal; never
	// retried.
	ClassConfig Class = "config"
)

// Error is the typed failure every analyzer returns. When the model call
// itself succeeded but the reply was unusable, the accounting fields carry
// the tokens the failed attempt still consumed.
type Error struct {
	Class      Class
	RetryAfter time.Duration // rate-limit hint, 0 = none
	Err        error

	ModelID string
	Usage   llm.Usage
	CostUSD float64
}

func (e *Error) Error() string {
	return fmt.Sprintf("analyzer %s failure: %v", e.Class, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether the failure may succeed on a later attempt.
func (e *Error) Retryable() bool {
	return e.Class == ClassTransient || e.Class == ClassSchema
}

// fromLLMError maps transport failures into analyzer failure classes.
func fromLLMError(err error) *Error {
	var le *llm.Error
	if errors.As(err, &le) {
		switch le.Category {
		case llm.CategoryRateLimited:
			return &Error{Class: ClassTransient, RetryAfter: le.RetryAfter, Err: err}
		case llm.CategoryTimeout, llm.CategoryTransport:
			return &Error{Class: ClassTransient, Err: err}
		case llm.CategoryAuth:
			return &Error{Class: ClassConfig, Err: err}
		default:
			return &Error{Class: ClassSchema, Err: err}
		}
	}
	return &Error{Class: ClassTransient, Err: err}
}

func schemaError(format string, args ...any) *Error {
	return &Error{Class: ClassSchema, Err: fmt.Errorf(format, args...)}
}

// Attempt carries per-attempt scheduling state from the orchestrator.
type Attempt struct {
	// Number is 1-based.
	Number int
	// StrictJSON switches the prompt to the stricter JSON-only re-prompt
	// after a schema failure.
	StrictJSON bool
}

// Output is a successful analysis result plus its call accounting.
type Output struct {
	// Payload is the typed result: *models.MoodResult, *models.TopicsResult,
	// *models.ActionSummaryResult, *models.BreakthroughResult, or
	// *models.DeepResult, matching the unit's Kind.
	Payload    interface{}
	Confidence float64
	ModelID    string
	Usage      llm.Usage
	CostUSD    float64
}

// Analyzer is one analysis unit.
type Analyzer interface {
	// Kind names the artifact this unit produces.
	Kind() models.Kind
	// Task names the routing task (usually the kind).
	Task() string
	// Dependencies lists prior-wave kinds this unit consumes.
	Dependencies() []models.Kind
	// Analyze runs one attempt against the session context.
	Analyze(ctx context.Context, sc *SessionContext, attempt Attempt) (*Output, *Error)
}

// Deps are the injected collaborators shared by all units.
type Deps struct {
	Router     *router.Router
	LLM        llm.Client
	Analysis   *config.AnalysisConfig
	Techniques *techniques.Library
}

// Set holds one instance of every analyzer unit.
type Set struct {
	Mood          *MoodAnalyzer
	Topics        *TopicExtractor
	ActionSummary *ActionSummarizer
	Breakthrough  *BreakthroughDetector
	Deep          *DeepAnalyzer
}

// NewSet wires all analyzer units from shared dependencies.
func NewSet(deps Deps) *Set {
	return &Set{
		Mood:          NewMoodAnalyzer(deps),
		Topics:        NewTopicExtractor(deps),
		ActionSummary: NewActionSummarizer(deps),
		Breakthrough:  NewBreakthroughDetector(deps),
		Deep:          NewDeepAnalyzer(deps),
	}
}

// ByKind returns the unit for a kind, or nil.
func (s *Set) ByKind(kind models.Kind) Analyzer {
	switch kind {
	case models.KindMood:
		return s.Mood
	case models.KindTopics:
		return s.Topics
	case models.KindActionSummary:
		return s.ActionSummary
	case models.KindBreakthrough:
		return s.Breakthrough
	case models.KindDeep:
		return s.Deep
	}
	return nil
}
