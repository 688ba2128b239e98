// Package orchestrator runs the two-wave, cost-tiered analysis schedule per
// session: Wave 1 fans out the independent analyzers, Wave 1b sequences the
// action summary behind topics, Wave 2 runs the deep analysis over the
// merged Wave-1 context. Results persist through the store gateway; the
// gateway owns every status transition the orchestrator proposes.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/evolvedtroglodyte/therabridge/ent/analysislog"
	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/analyzer"
	"github.com/evolvedtroglodyte/therabridge/pkg/auditlog"
	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

// Store is the gateway surface the orchestrator mutates through.
// *store.Gateway implements it; tests substitute an in-memory fake.
type Store interface {
	Load(ctx context.Context, sessionID string) (*store.SessionView, error)
	WriteArtifact(ctx context.Context, sessionID string, write store.ArtifactWrite) error
	SetStatus(ctx context.Context, sessionID string, newStatus, expectedPrev therapysession.Status) error
	SetFailure(ctx context.Context, sessionID, message string) error
	RecordLog(ctx context.Context, sessionID string, write store.LogWrite) error
	PriorSessionSummaries(ctx context.Context, patientID string, before time.Time, limit int) ([]string, error)
}

// priorSummaryLimit caps how many earlier-session summaries feed the deep
// analysis prompt.
const priorSummaryLimit = 5

// Options selects which kinds a run may (re-)attempt.
type Options struct {
	// RetryKinds lifts the retry-exhaustion gate for the listed kinds
	// (empty on a retry request = every exhausted kind).
	RetryKinds []models.Kind
	// ForceKinds recomputes the listed kinds even when a current artifact
	// exists. Forcing topics also recomputes action_summary, whose input it
	// feeds.
	ForceKinds []models.Kind
	// retry marks an explicit retry request (set by Retry).
	retry bool
	// claimed marks a caller that already holds the session claim (queue
	// workers transition queued → wave1_running before executing).
	claimed bool
}

// Result summarizes one run.
type Result struct {
	SessionID string
	Status    therapysession.Status
	// NoOp is true when the run had nothing to do (terminal session, or a
	// concurrent worker holds the claim).
	NoOp bool
	// Ran lists the kinds this run attempted.
	Ran []models.Kind
	// Failed maps kinds that exhausted retries to their last error.
	Failed map[models.Kind]string
}

// Orchestrator coordinates analyzer scheduling for one session at a time.
// Instances are stateless across sessions and safe for concurrent use by
// multiple workers processing distinct sessions.
type Orchestrator struct {
	store     Store
	analyzers *analyzer.Set
	audit     *auditlog.Logger
	analysis  *config.AnalysisConfig

	// sleepFn is swapped in tests to skip real backoff waits.
	sleepFn func(ctx context.Context, d time.Duration) error
}

// New creates an Orchestrator.
func New(st Store, analyzers *analyzer.Set, audit *auditlog.Logger, analysis *config.AnalysisConfig) *Orchestrator {
	return &Orchestrator{
		store:     st,
		analyzers: analyzers,
		audit:     audit,
		analysis:  analysis,
		sleepFn:   sleep,
	}
}

// Run executes the full schedule for a session. Re-running a terminal
// session is a no-op; re-running a failed session without options is too
// (exhausted kinds stay terminal until an explicit retry).
func (o *Orchestrator) Run(ctx context.Context, sessionID string) (*Result, error) {
	return o.run(ctx, sessionID, Options{})
}

// RunClaimed executes a session whose claim the caller already holds: the
// queue worker transitions queued → wave1_running atomically when claiming,
// then delegates here. Also resumes orphan-recovered sessions mid-wave.
func (o *Orchestrator) RunClaimed(ctx context.Context, sessionID string) (*Result, error) {
	return o.run(ctx, sessionID, Options{claimed: true})
}

// RunClaimedWith executes a claimed session carrying a consumed retry
// request (queue workers pass the request they claimed alongside).
func (o *Orchestrator) RunClaimedWith(ctx context.Context, sessionID string, req *models.RetryRequest) (*Result, error) {
	opts := Options{claimed: true}
	if req != nil {
		opts.retry = true
		opts.RetryKinds = req.Kinds
		if req.Force {
			opts.ForceKinds = req.Kinds
		}
	}
	return o.run(ctx, sessionID, opts)
}

// Retry re-attempts exhausted kinds on a failed session. kinds narrows the
// selection; empty means every exhausted kind.
func (o *Orchestrator) Retry(ctx context.Context, sessionID string, kinds []models.Kind) (*Result, error) {
	return o.run(ctx, sessionID, Options{RetryKinds: kinds, retry: true})
}

// ForceRerun recomputes the named kinds regardless of existing artifacts.
func (o *Orchestrator) ForceRerun(ctx context.Context, sessionID string, kinds []models.Kind) (*Result, error) {
	return o.run(ctx, sessionID, Options{ForceKinds: kinds, RetryKinds: kinds, retry: true})
}

// kindOutcome is the settled result of one kind within a run.
type kindOutcome struct {
	kind     models.Kind
	output   *analyzer.Output
	err      *analyzer.Error
	attempts int
	duration time.Duration
}

func (o *Orchestrator) run(ctx context.Context, sessionID string, opts Options) (*Result, error) {
	logger := slog.With("session_id", sessionID)
	audit := o.audit.ForSession(sessionID)

	view, err := o.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := &Result{
		SessionID: sessionID,
		Status:    view.Status,
		Failed:    make(map[models.Kind]string),
	}

	// Admission: claim the session or establish that there is nothing to do.
	switch view.Status {
	case therapysession.StatusComplete:
		logger.Info("Session already complete, run is a no-op")
		result.NoOp = true
		return result, nil

	case therapysession.StatusTranscribed, therapysession.StatusQueued:
		if err := o.claim(ctx, sessionID, view.Status, result, logger); err != nil {
			return result, err
		}
		if result.NoOp {
			return result, nil
		}

	case therapysession.StatusFailed:
		if !opts.retry && len(o.retryableKinds(view, opts)) == 0 {
			logger.Info("Failed session has no retryable kinds, run is a no-op")
			result.NoOp = true
			return result, nil
		}
		if err := o.claim(ctx, sessionID, therapysession.StatusFailed, result, logger); err != nil {
			return result, err
		}
		if result.NoOp {
			return result, nil
		}

	case therapysession.StatusWave1Running, therapysession.StatusWave1Complete, therapysession.StatusWave2Running:
		// Mid-wave statuses belong to whichever worker holds the claim.
		// Without the claim this is a duplicate trigger: no-op.
		if !opts.claimed {
			logger.Info("Session is mid-run under another claim, run is a no-op", "status", view.Status)
			result.NoOp = true
			return result, nil
		}

	default:
		return nil, fmt.Errorf("session %s has unexpected status %q", sessionID, view.Status)
	}

	audit.Emit(ctx, auditlog.Entry{Component: "orchestrator", Event: auditlog.EventStart, Wave: "wave1"})

	// Wave 1 + 1b, unless already past them.
	if view.Status != therapysession.StatusWave1Complete && view.Status != therapysession.StatusWave2Running {
		view, err = o.store.Load(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		wave1OK, err := o.runWave1(ctx, view, opts, result, audit, logger)
		if err != nil {
			return result, err
		}
		if !wave1OK {
			result.Status = therapysession.StatusFailed
			return result, nil
		}
	} else if view.Status == therapysession.StatusWave1Complete {
		if err := o.store.SetStatus(ctx, sessionID, therapysession.StatusWave2Running, therapysession.StatusWave1Complete); err != nil {
			if errors.Is(err, store.ErrStaleStatus) {
				result.NoOp = true
				return result, nil
			}
			return nil, err
		}
	}

	// Wave 2.
	view, err = o.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := o.runWave2(ctx, view, opts, result, audit, logger); err != nil {
		return result, err
	}
	return result, nil
}

// claim performs the gateway-validated transition into wave1_running.
// Losing the optimistic race means another worker owns the run: no-op.
func (o *Orchestrator) claim(ctx context.Context, sessionID string, from therapysession.Status, result *Result, logger *slog.Logger) error {
	err := o.store.SetStatus(ctx, sessionID, therapysession.StatusWave1Running, from)
	if err == nil {
		result.Status = therapysession.StatusWave1Running
		return nil
	}
	if errors.Is(err, store.ErrStaleStatus) {
		logger.Info("Lost status race, concurrent run owns the session", "expected_prev", from)
		result.NoOp = true
		return nil
	}
	return err
}

// retryableKinds lists kinds with no artifact that are still allowed to run
// and whose dependencies could be satisfied this run. A kind blocked behind
// an exhausted topics cannot make progress and does not justify a claim.
func (o *Orchestrator) retryableKinds(view *store.SessionView, opts Options) []models.Kind {
	eligible := make(map[models.Kind]bool)
	for _, kind := range models.AllKinds {
		if view.HasArtifact(kind) && !opts.forced(kind) {
			continue
		}
		if o.exhausted(view, kind) && !opts.retryRequested(kind) {
			continue
		}
		eligible[kind] = true
	}

	topicsAvailable := view.Topics != nil || eligible[models.KindTopics]
	var kinds []models.Kind
	for _, kind := range models.AllKinds {
		if !eligible[kind] {
			continue
		}
		if (kind == models.KindActionSummary || kind == models.KindDeep) && !topicsAvailable {
			continue
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

// exhausted reports whether a kind's attempts are spent. Schema failures
// exhaust at the strict-reprompt cap; configuration failures are terminal
// after a single attempt.
func (o *Orchestrator) exhausted(view *store.SessionView, kind models.Kind) bool {
	progress := view.Progress[kind]
	switch progress.LastClass {
	case string(analyzer.ClassSchema):
		return progress.FailedAttempts >= o.analysis.Retry.SchemaMaxAttempts
	case string(analyzer.ClassConfig):
		return progress.FailedAttempts >= 1
	}
	return progress.FailedAttempts >= o.analysis.Retry.MaxAttempts
}

func (opts Options) forced(kind models.Kind) bool {
	for _, k := range opts.ForceKinds {
		if k == kind {
			return true
		}
	}
	// Forcing topics invalidates the action summary derived from it.
	if kind == models.KindActionSummary {
		for _, k := range opts.ForceKinds {
			if k == models.KindTopics {
				return true
			}
		}
	}
	return false
}

func (opts Options) retryRequested(kind models.Kind) bool {
	if !opts.retry {
		return false
	}
	if len(opts.RetryKinds) == 0 {
		return true
	}
	for _, k := range opts.RetryKinds {
		if k == kind {
			return true
		}
	}
	// Retrying topics re-opens action_summary and deep, which depend on it.
	if kind == models.KindActionSummary || kind == models.KindDeep {
		for _, k := range opts.RetryKinds {
			if k == models.KindTopics {
				return true
			}
		}
	}
	return false
}

// needsRun decides whether one kind still needs work in this run.
func (o *Orchestrator) needsRun(view *store.SessionView, kind models.Kind, opts Options) bool {
	if view.HasArtifact(kind) && !opts.forced(kind) {
		return false
	}
	if o.exhausted(view, kind) && !opts.retryRequested(kind) {
		return false
	}
	return true
}

// runWave1 fans out the independent Wave-1 analyzers (wait-all, never
// fail-fast), sequences the action summary behind topics, and proposes the
// wave1_complete or failed transition. Returns whether Wave 2 may proceed.
func (o *Orchestrator) runWave1(ctx context.Context, view *store.SessionView, opts Options, result *Result, audit *auditlog.SessionLogger, logger *slog.Logger) (bool, error) {
	sc := o.buildContext(view)
	audit.Emit(ctx, auditlog.Entry{Component: "orchestrator", Event: auditlog.EventContextBuilt, Wave: "wave1",
		Payload: map[string]interface{}{"segments": len(view.Transcript)}})

	var needed []models.Kind
	for _, kind := range models.Wave1Kinds {
		if o.needsRun(view, kind, opts) {
			needed = append(needed, kind)
		}
	}

	// Fan out: one goroutine per kind, collect every settled result.
	outcomes := make(chan kindOutcome, len(needed))
	var wg sync.WaitGroup
	for _, kind := range needed {
		wg.Add(1)
		go func(kind models.Kind) {
			defer wg.Done()
			outcomes <- o.runAnalyzer(ctx, sc, kind, "wave1", audit)
		}(kind)
	}
	wg.Wait()
	close(outcomes)

	for outcome := range outcomes {
		o.settle(ctx, view.ID, "wave1", outcome, result, audit, logger)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Wave 1b: the action summary consumes the topics output, so it runs
	// only after topics settled successfully — as a sequential step, not a
	// chained future.
	view, err := o.store.Load(ctx, view.ID)
	if err != nil {
		return false, err
	}
	if view.Topics != nil && o.needsRun(view, models.KindActionSummary, opts) {
		sc = o.buildContext(view)
		outcome := o.runAnalyzer(ctx, sc, models.KindActionSummary, "wave1b", audit)
		o.settle(ctx, view.ID, "wave1b", outcome, result, audit, logger)
		if err := ctx.Err(); err != nil {
			return false, err
		}
		view, err = o.store.Load(ctx, view.ID)
		if err != nil {
			return false, err
		}
	}

	// Wave-1 completion: topics must exist, plus at least one of mood or
	// breakthrough. Losing topics is fatal — the deep-analysis prompt
	// depends on it.
	wave1OK := view.Topics != nil && (view.Mood != nil || view.Breakthrough != nil)
	if !wave1OK {
		message := o.failureMessage(view)
		if err := o.failWave1(ctx, view.ID, message, audit, logger); err != nil {
			return false, err
		}
		return false, nil
	}

	audit.Emit(ctx, auditlog.Entry{Component: "orchestrator", Event: auditlog.EventComplete, Wave: "wave1"})
	if err := o.store.SetStatus(ctx, view.ID, therapysession.StatusWave1Complete, therapysession.StatusWave1Running); err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			result.NoOp = true
			return false, nil
		}
		return false, err
	}
	if err := o.store.SetStatus(ctx, view.ID, therapysession.StatusWave2Running, therapysession.StatusWave1Complete); err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			result.NoOp = true
			return false, nil
		}
		return false, err
	}
	result.Status = therapysession.StatusWave2Running
	return true, nil
}

// runWave2 runs the deep analysis over the merged Wave-1 context and
// proposes the terminal transition.
func (o *Orchestrator) runWave2(ctx context.Context, view *store.SessionView, opts Options, result *Result, audit *auditlog.SessionLogger, logger *slog.Logger) error {
	audit.Emit(ctx, auditlog.Entry{Component: "orchestrator", Event: auditlog.EventStart, Wave: "wave2"})

	if o.needsRun(view, models.KindDeep, opts) {
		sc := o.buildContext(view)
		summaries, err := o.store.PriorSessionSummaries(ctx, view.PatientID, view.SessionTS, priorSummaryLimit)
		if err != nil {
			// The deep prompt marks absent history explicitly; losing it is
			// not worth failing the wave.
			logger.Warn("Failed to load prior session summaries", "error", err)
		} else {
			sc.PriorSessionSummaries = summaries
		}
		audit.Emit(ctx, auditlog.Entry{Component: "orchestrator", Event: auditlog.EventContextBuilt, Wave: "wave2",
			Payload: map[string]interface{}{"prior_sessions": len(sc.PriorSessionSummaries)}})

		outcome := o.runAnalyzer(ctx, sc, models.KindDeep, "wave2", audit)
		o.settle(ctx, view.ID, "wave2", outcome, result, audit, logger)
		if err := ctx.Err(); err != nil {
			return err
		}

		view2, err := o.store.Load(ctx, view.ID)
		if err != nil {
			return err
		}
		view = view2
	}

	if view.Deep == nil {
		message := "deep analysis exhausted retries"
		if last := view.Progress[models.KindDeep].LastError; last != "" {
			message = fmt.Sprintf("deep analysis exhausted retries: %s", last)
		}
		return o.failSession(ctx, view.ID, "wave2", message, result, audit, logger)
	}

	// Terminal gate: complete means every artifact kind exists. Wave 2 runs
	// on partial context, but a session that lost a kind to exhausted
	// retries ends failed, keeping the artifacts that did land.
	var missing []string
	for _, kind := range models.AllKinds {
		if !view.HasArtifact(kind) {
			missing = append(missing, string(kind))
		}
	}
	if len(missing) > 0 {
		message := fmt.Sprintf("analysis incomplete: exhausted kinds: %s", strings.Join(missing, ", "))
		return o.failSession(ctx, view.ID, "wave2", message, result, audit, logger)
	}

	if err := o.store.SetStatus(ctx, view.ID, therapysession.StatusComplete, therapysession.StatusWave2Running); err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			result.NoOp = true
			return nil
		}
		return err
	}
	audit.Emit(ctx, auditlog.Entry{Component: "orchestrator", Event: auditlog.EventComplete, Wave: "wave2"})
	logger.Info("Session analysis complete")
	result.Status = therapysession.StatusComplete
	return nil
}

// runAnalyzer drives one kind through its attempt loop: per-attempt
// timeouts, exponential backoff with jitter (honoring retry_after hints),
// the strict JSON re-prompt after a schema failure, and terminal classes
// that skip remaining attempts.
func (o *Orchestrator) runAnalyzer(ctx context.Context, sc *analyzer.SessionContext, kind models.Kind, wave string, audit *auditlog.SessionLogger) kindOutcome {
	unit := o.analyzers.ByKind(kind)
	component := "analyzer." + string(kind)
	retry := o.analysis.Retry

	outcome := kindOutcome{kind: kind}
	start := time.Now()
	strict := false
	schemaFailures := 0

	if err := o.store.RecordLog(ctx, sc.SessionID, store.LogWrite{
		Kind:      kind,
		Status:    analysislog.StatusStarted,
		Attempt:   1,
		StartedAt: start,
	}); err != nil {
		slog.Warn("Failed to record started log row", "session_id", sc.SessionID, "kind", kind, "error", err)
	}

	for attempt := 1; ; attempt++ {
		outcome.attempts = attempt
		audit.Emit(ctx, auditlog.Entry{Component: component, Event: auditlog.EventCallBegin, Wave: wave, Attempt: attempt})

		attemptCtx, cancel := context.WithTimeout(ctx, o.analysis.TimeoutFor(unit.Task()))
		out, aerr := unit.Analyze(attemptCtx, sc, analyzer.Attempt{Number: attempt, StrictJSON: strict})
		cancel()

		if aerr == nil {
			outcome.output = out
			outcome.duration = time.Since(start)
			audit.Emit(ctx, auditlog.Entry{Component: component, Event: auditlog.EventCallEnd, Wave: wave, Attempt: attempt,
				Payload: map[string]interface{}{"model_id": out.ModelID, "cost_usd": out.CostUSD}})
			return outcome
		}

		audit.Emit(ctx, auditlog.Entry{Component: component, Event: auditlog.EventCallEnd, Wave: wave, Attempt: attempt,
			Payload: map[string]interface{}{"error": aerr.Error(), "class": string(aerr.Class)}})

		// Every failed attempt gets a log row; tokens a failed call still
		// consumed are priced into the session.
		if err := o.store.RecordLog(ctx, sc.SessionID, store.LogWrite{
			Kind:             kind,
			Status:           analysislog.StatusFailed,
			Attempt:          attempt,
			Error:            aerr.Error(),
			ErrorClass:       string(aerr.Class),
			StartedAt:        start,
			DurationMS:       int(time.Since(start).Milliseconds()),
			PromptTokens:     aerr.Usage.PromptTokens,
			CompletionTokens: aerr.Usage.CompletionTokens,
			CostUSD:          aerr.CostUSD,
		}); err != nil {
			slog.Warn("Failed to record failed log row", "session_id", sc.SessionID, "kind", kind, "error", err)
		}

		outcome.err = aerr
		outcome.duration = time.Since(start)

		if ctx.Err() != nil || !aerr.Retryable() {
			return outcome
		}
		if aerr.Class == analyzer.ClassSchema {
			// One strict re-prompt per kind; repeated JSON failure is
			// terminal regardless of remaining transient budget.
			schemaFailures++
			strict = true
			if schemaFailures >= retry.SchemaMaxAttempts {
				return outcome
			}
		}
		if attempt >= retry.MaxAttempts {
			return outcome
		}

		delay := backoffDelay(retry, attempt, aerr.RetryAfter)
		if err := o.sleepFn(ctx, delay); err != nil {
			return outcome
		}
	}
}

// settle persists a settled outcome: artifact + completed log on success,
// terminal bookkeeping on exhaustion. Sibling failures never propagate.
func (o *Orchestrator) settle(ctx context.Context, sessionID, wave string, outcome kindOutcome, result *Result, audit *auditlog.SessionLogger, logger *slog.Logger) {
	result.Ran = append(result.Ran, outcome.kind)
	sort.Slice(result.Ran, func(i, j int) bool { return result.Ran[i] < result.Ran[j] })

	if outcome.err != nil {
		logger.Warn("Analyzer exhausted attempts",
			"kind", outcome.kind,
			"attempts", outcome.attempts,
			"class", string(outcome.err.Class),
			"error", outcome.err.Err)
		result.Failed[outcome.kind] = outcome.err.Error()
		audit.Emit(ctx, auditlog.Entry{Component: "analyzer." + string(outcome.kind), Event: auditlog.EventFailed,
			Wave: wave, Attempt: outcome.attempts})
		return
	}

	out := outcome.output
	err := o.store.WriteArtifact(ctx, sessionID, store.ArtifactWrite{
		Kind:             outcome.kind,
		Payload:          out.Payload,
		Confidence:       out.Confidence,
		ModelID:          out.ModelID,
		PromptTokens:     out.Usage.PromptTokens,
		CompletionTokens: out.Usage.CompletionTokens,
		CostUSD:          out.CostUSD,
		ProducedAt:       time.Now().UTC(),
		Attempt:          outcome.attempts,
		DurationMS:       int(outcome.duration.Milliseconds()),
	})
	switch {
	case err == nil:
		audit.Emit(ctx, auditlog.Entry{Component: "analyzer." + string(outcome.kind), Event: auditlog.EventVersionSave,
			Wave: wave, Attempt: outcome.attempts,
			Payload: map[string]interface{}{"model_id": out.ModelID}})
	case errors.Is(err, store.ErrDuplicateArtifact):
		// Another worker finished this kind; the equivalent write stands.
		logger.Info("Artifact already written by concurrent run", "kind", outcome.kind)
	default:
		logger.Error("Failed to persist artifact", "kind", outcome.kind, "error", err)
		result.Failed[outcome.kind] = err.Error()
	}
}

// failWave1 proposes the wave1_running → failed transition.
func (o *Orchestrator) failWave1(ctx context.Context, sessionID, message string, audit *auditlog.SessionLogger, logger *slog.Logger) error {
	logger.Warn("Wave 1 failed", "reason", message)
	audit.Emit(ctx, auditlog.Entry{Component: "orchestrator", Event: auditlog.EventFailed, Wave: "wave1",
		Payload: map[string]interface{}{"reason": message}})
	if err := o.store.SetStatus(ctx, sessionID, therapysession.StatusFailed, therapysession.StatusWave1Running); err != nil && !errors.Is(err, store.ErrStaleStatus) {
		return err
	}
	if err := o.store.SetFailure(ctx, sessionID, message); err != nil {
		logger.Error("Failed to record failure message", "error", err)
	}
	return nil
}

// failSession proposes the wave2_running → failed transition and records the
// aggregated failure message.
func (o *Orchestrator) failSession(ctx context.Context, sessionID, wave, message string, result *Result, audit *auditlog.SessionLogger, logger *slog.Logger) error {
	logger.Warn("Session analysis failed", "reason", message)
	audit.Emit(ctx, auditlog.Entry{Component: "orchestrator", Event: auditlog.EventFailed, Wave: wave,
		Payload: map[string]interface{}{"reason": message}})
	if err := o.store.SetStatus(ctx, sessionID, therapysession.StatusFailed, therapysession.StatusWave2Running); err != nil && !errors.Is(err, store.ErrStaleStatus) {
		return err
	}
	if err := o.store.SetFailure(ctx, sessionID, message); err != nil {
		logger.Error("Failed to record failure message", "error", err)
	}
	result.Status = therapysession.StatusFailed
	return nil
}

// buildContext assembles the analyzer view of the session.
func (o *Orchestrator) buildContext(view *store.SessionView) *analyzer.SessionContext {
	return &analyzer.SessionContext{
		SessionID:    view.ID,
		Transcript:   transcript.New(view.Transcript, view.TherapistLabel),
		Mood:         view.Mood,
		Topics:       view.Topics,
		Breakthrough: view.Breakthrough,
	}
}

// failureMessage aggregates which required kinds are missing.
func (o *Orchestrator) failureMessage(view *store.SessionView) string {
	var missing []string
	for _, kind := range models.Wave1Kinds {
		if !view.HasArtifact(kind) {
			missing = append(missing, string(kind))
		}
	}
	return fmt.Sprintf("wave 1 incomplete: exhausted kinds: %s", strings.Join(missing, ", "))
}
