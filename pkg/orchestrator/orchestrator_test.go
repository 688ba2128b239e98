package orchestrator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/llm"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
)

// Scenario A — happy path: five artifacts, complete, five completed log
// rows and zero failed ones.
func TestRunHappyPath(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.happyScripts()

	result, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, result.NoOp)
	assert.Equal(t, therapysession.StatusComplete, result.Status)

	view, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusComplete, view.Status)
	for _, kind := range models.AllKinds {
		assert.True(t, view.HasArtifact(kind), "artifact %s must exist", kind)
	}
	assert.Equal(t, 6.5, view.Mood.Score)
	assert.Len(t, view.Topics.ActionItems, 2)
	assert.LessOrEqual(t, len(view.ActionSummary.Text), 45)
	assert.GreaterOrEqual(t, view.Deep.Confidence, 0.5)

	completed := 0
	for _, kind := range models.AllKinds {
		completed += h.store.logCount("s1", kind, "completed")
		assert.Zero(t, h.store.logCount("s1", kind, "failed"))
	}
	assert.Equal(t, 5, completed)

	// Monotonic transition chain.
	assert.Equal(t, []therapysession.Status{
		therapysession.StatusWave1Running,
		therapysession.StatusWave1Complete,
		therapysession.StatusWave2Running,
		therapysession.StatusComplete,
	}, h.store.transitions("s1"))
}

// Idempotence law: a second run changes nothing.
func TestRunIsIdempotent(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.happyScripts()

	_, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	firstProducedAt := h.artifactProducedAt(t, "s1", models.KindMood)

	result, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, result.NoOp)
	assert.Equal(t, firstProducedAt, h.artifactProducedAt(t, "s1", models.KindMood))
	assert.Equal(t, 1, h.llm.callCount("mood"))
}

// Scenario B — topics persistently malformed: mood and breakthrough land,
// action_summary and deep never start, session fails.
func TestRunTopicsPersistentlyFails(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.script("mood", taskResponse{reply: moodReply})
	h.llm.script("breakthrough", taskResponse{reply: breakthroughReply})
	h.llm.script("topics",
		taskResponse{reply: "not json at all"},
		taskResponse{reply: "still not json"},
		taskResponse{reply: "never json"},
	)

	result, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusFailed, result.Status)
	assert.Contains(t, result.Failed, models.KindTopics)

	view, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusFailed, view.Status)
	assert.NotNil(t, view.Mood)
	assert.NotNil(t, view.Breakthrough)
	assert.Nil(t, view.ActionSummary)
	assert.Nil(t, view.Deep)
	assert.Contains(t, view.ErrorMessage, "topics")

	// Schema failures cap at the strict-reprompt limit (2 attempts).
	assert.Equal(t, 2, h.store.logCount("s1", models.KindTopics, "failed"))
	assert.Equal(t, 2, h.llm.callCount("topics"))
	assert.Zero(t, h.llm.callCount("action_summary"))
	assert.Zero(t, h.llm.callCount("deep"))
}

// Scenario C — two rate limits then success: the retry_after hint drives
// the backoff and siblings are unaffected.
func TestRunTransientRateLimits(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	rateLimited := &llm.Error{
		Category:   llm.CategoryRateLimited,
		RetryAfter: time.Second,
		Err:        errScriptExhausted,
	}
	h.llm.script("mood",
		taskResponse{err: rateLimited},
		taskResponse{err: rateLimited},
		taskResponse{reply: moodReply},
	)
	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("breakthrough", taskResponse{reply: breakthroughReply})
	h.llm.script("action_summary", taskResponse{reply: actionSummaryReply})
	h.llm.script("deep", taskResponse{reply: deepReply})

	result, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusComplete, result.Status)

	view, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotNil(t, view.Mood)
	assert.Equal(t, 2, h.store.logCount("s1", models.KindMood, "failed"))
	assert.Equal(t, 1, h.store.logCount("s1", models.KindMood, "completed"))
	assert.Equal(t, 3, h.llm.callCount("mood"))
	assert.Equal(t, 1, h.llm.callCount("topics"))

	// Both waits honored the server hint.
	require.Len(t, h.sleeps, 2)
	assert.Equal(t, time.Second, h.sleeps[0])
	assert.Equal(t, time.Second, h.sleeps[1])
}

// Scenario D — retry after partial failure: topics fixed, the dependent
// chain resumes, untouched artifacts keep their produced_at.
func TestRetryAfterPartialFailure(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.script("mood", taskResponse{reply: moodReply})
	h.llm.script("breakthrough", taskResponse{reply: breakthroughReply})
	h.llm.script("topics",
		taskResponse{reply: "garbage"},
		taskResponse{reply: "garbage"},
	)

	_, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, therapysession.StatusFailed, h.store.status("s1"))

	moodProducedAt := h.artifactProducedAt(t, "s1", models.KindMood)
	breakthroughProducedAt := h.artifactProducedAt(t, "s1", models.KindBreakthrough)

	// Plain re-run stays a no-op: exhausted kinds need an explicit retry.
	result, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, result.NoOp)

	// Fix topics and retry just that kind.
	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("action_summary", taskResponse{reply: actionSummaryReply})
	h.llm.script("deep", taskResponse{reply: deepReply})

	result, err = h.orch.Retry(context.Background(), "s1", []models.Kind{models.KindTopics})
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusComplete, result.Status)

	view, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	for _, kind := range models.AllKinds {
		assert.True(t, view.HasArtifact(kind), "artifact %s must exist", kind)
	}
	assert.Equal(t, moodProducedAt, h.artifactProducedAt(t, "s1", models.KindMood), "mood untouched")
	assert.Equal(t, breakthroughProducedAt, h.artifactProducedAt(t, "s1", models.KindBreakthrough), "breakthrough untouched")
	assert.Equal(t, 1, h.llm.callCount("mood"))
}

// Scenario E — concurrent duplicate triggers: one claim wins, the loser is
// a no-op, no duplicate artifacts, one transition chain.
func TestConcurrentDuplicateRuns(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.happyScripts()

	var wg sync.WaitGroup
	results := make([]*Result, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := h.orch.Run(context.Background(), "s1")
			require.NoError(t, err)
			results[i] = r
		}(i)
	}
	wg.Wait()

	noOps := 0
	for _, r := range results {
		if r.NoOp {
			noOps++
		}
	}
	assert.Equal(t, 1, noOps, "exactly one run claims the session")

	assert.Equal(t, therapysession.StatusComplete, h.store.status("s1"))
	assert.Equal(t, 1, h.llm.callCount("mood"), "no duplicate analyzer calls")
	assert.Equal(t, []therapysession.Status{
		therapysession.StatusWave1Running,
		therapysession.StatusWave1Complete,
		therapysession.StatusWave2Running,
		therapysession.StatusComplete,
	}, h.store.transitions("s1"))
}

// Partial-failure containment: a deterministically failing breakthrough
// leaves mood and topics (and the dependent chain) untouched, and Wave 2
// still runs on the partial context. The terminal label is failed, not
// complete — a kind is missing — and retrying just that kind finishes the
// session without repeating anything else.
func TestBreakthroughFailureDoesNotBlockOthers(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.script("mood", taskResponse{reply: moodReply})
	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("breakthrough",
		taskResponse{reply: "nope"},
		taskResponse{reply: "nope"},
	)
	h.llm.script("action_summary", taskResponse{reply: actionSummaryReply})
	h.llm.script("deep", taskResponse{reply: deepReply})

	result, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusFailed, result.Status)

	view, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotNil(t, view.Mood)
	assert.NotNil(t, view.Topics)
	assert.Nil(t, view.Breakthrough)
	assert.NotNil(t, view.Deep, "the deep analysis still ran on partial context")
	assert.Contains(t, view.ErrorMessage, "breakthrough")

	// Retrying the lost kind completes the session; nothing else repeats.
	h.llm.script("breakthrough", taskResponse{reply: breakthroughReply})
	result, err = h.orch.Retry(context.Background(), "s1", []models.Kind{models.KindBreakthrough})
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusComplete, result.Status)
	assert.Equal(t, 1, h.llm.callCount("mood"))
	assert.Equal(t, 1, h.llm.callCount("deep"))
}

// Deep exhaustion downgrades to failed; wave-1 artifacts survive.
func TestDeepExhaustionFailsSession(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.script("mood", taskResponse{reply: moodReply})
	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("breakthrough", taskResponse{reply: breakthroughReply})
	h.llm.script("action_summary", taskResponse{reply: actionSummaryReply})
	transport := &llm.Error{Category: llm.CategoryTransport, Err: errScriptExhausted}
	h.llm.script("deep",
		taskResponse{err: transport},
		taskResponse{err: transport},
		taskResponse{err: transport},
	)

	result, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusFailed, result.Status)

	view, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusFailed, view.Status)
	assert.NotNil(t, view.Topics)
	assert.Nil(t, view.Deep)
	assert.Contains(t, view.ErrorMessage, "deep analysis exhausted retries")
	assert.Equal(t, 3, h.store.logCount("s1", models.KindDeep, "failed"))
}

// Cost additivity: session cost equals the sum of per-call costs in the
// log, including failed attempts that consumed tokens.
func TestCostAdditivity(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.script("mood",
		taskResponse{reply: "not json"}, // consumed tokens, failed parse
		taskResponse{reply: moodReply},
	)
	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("breakthrough", taskResponse{reply: breakthroughReply})
	h.llm.script("action_summary", taskResponse{reply: actionSummaryReply})
	h.llm.script("deep", taskResponse{reply: deepReply})

	_, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)

	assert.InDelta(t, h.store.loggedCost("s1"), h.store.cost("s1"), 1e-9)
	assert.Positive(t, h.store.cost("s1"))
}

// Auth failures are configuration-class: no retries burned. Wave 2 still
// proceeds without mood, but the missing kind keeps the terminal state at
// failed.
func TestAuthFailureSkipsRetries(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.script("mood", taskResponse{err: &llm.Error{Category: llm.CategoryAuth, Err: errScriptExhausted}})
	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("breakthrough", taskResponse{reply: breakthroughReply})
	h.llm.script("action_summary", taskResponse{reply: actionSummaryReply})
	h.llm.script("deep", taskResponse{reply: deepReply})

	result, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusFailed, result.Status)
	assert.Equal(t, 1, h.llm.callCount("mood"), "config failures skip remaining attempts")
	assert.Equal(t, 1, h.llm.callCount("deep"), "deep still ran on partial context")

	view, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotNil(t, view.Deep)
	assert.Contains(t, view.ErrorMessage, "mood")
}

// An exhausted action summary cannot reach complete either, even though the
// wave-1 gate lets Wave 2 proceed without it.
func TestActionSummaryExhaustionFailsSession(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.script("mood", taskResponse{reply: moodReply})
	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("breakthrough", taskResponse{reply: breakthroughReply})
	h.llm.script("action_summary",
		taskResponse{reply: "not json"},
		taskResponse{reply: "not json"},
	)
	h.llm.script("deep", taskResponse{reply: deepReply})

	result, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusFailed, result.Status)

	view, err := h.store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, view.ActionSummary)
	assert.NotNil(t, view.Deep)
	assert.Contains(t, view.ErrorMessage, "action_summary")
}

// Force rerun of topics on a completed session is a no-op: the action
// summary derived from topics keeps its original artifact.
func TestForceRerunTopicsOnCompleteSessionIsNoOp(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.happyScripts()

	_, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, therapysession.StatusComplete, h.store.status("s1"))

	firstSummaryAt := h.artifactProducedAt(t, "s1", models.KindActionSummary)

	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("action_summary", taskResponse{reply: `{"text": "Fresh condensed homework"}`})

	// A completed session is terminal: force rerun is admitted only for
	// failed sessions, so here it reports a no-op and runs nothing.
	result, err := h.orch.ForceRerun(context.Background(), "s1", []models.Kind{models.KindTopics})
	require.NoError(t, err)
	assert.True(t, result.NoOp, "completed sessions are immutable without an admin path")
	assert.Equal(t, firstSummaryAt, h.artifactProducedAt(t, "s1", models.KindActionSummary))
}

// Force rerun on a failed session recomputes the named kind, cascades to
// its dependents, and finishes the remaining pipeline.
func TestForceRerunOnFailedSession(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.script("mood", taskResponse{reply: moodReply})
	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("breakthrough", taskResponse{reply: breakthroughReply})
	h.llm.script("action_summary", taskResponse{reply: actionSummaryReply})
	transport := &llm.Error{Category: llm.CategoryTransport, Err: errScriptExhausted}
	h.llm.script("deep",
		taskResponse{err: transport},
		taskResponse{err: transport},
		taskResponse{err: transport},
	)

	_, err := h.orch.Run(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, therapysession.StatusFailed, h.store.status("s1"))

	// Rerun topics with fresh output; action_summary and deep follow.
	h.llm.script("topics", taskResponse{reply: topicsReply})
	h.llm.script("action_summary", taskResponse{reply: `{"text": "Walks + wins journal, daily"}`})
	h.llm.script("deep", taskResponse{reply: deepReply})

	result, err := h.orch.ForceRerun(context.Background(), "s1", []models.Kind{models.KindTopics})
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusComplete, result.Status)
	assert.Equal(t, 2, h.llm.callCount("topics"))
	assert.Equal(t, 2, h.llm.callCount("action_summary"), "action summary follows a forced topics rerun")
	assert.Equal(t, 1, h.llm.callCount("mood"), "mood untouched")
}

// Orphan recovery: a worker died mid-wave1; a re-claimed run resumes from
// persisted artifacts without repeating completed analyzers.
func TestRunClaimedResumesOrphanedSession(t *testing.T) {
	h := newHarness()
	h.store.addSession("s1", sessionSegments())
	h.llm.happyScripts()

	// Simulate the dead worker's claim.
	sc := context.Background()
	require.NoError(t, h.store.SetStatus(sc, "s1", therapysession.StatusWave1Running, therapysession.StatusTranscribed))

	// Run without the claim on a mid-wave session is a no-op.
	r, err := h.orch.Run(sc, "s1")
	require.NoError(t, err)
	assert.True(t, r.NoOp)

	// The re-claimed run (orphan path) drives it to completion.
	result, err := h.orch.RunClaimed(sc, "s1")
	require.NoError(t, err)
	assert.Equal(t, therapysession.StatusComplete, result.Status)
	assert.Equal(t, 1, h.llm.callCount("mood"), "completed analyzers never repeat")
}

func (h *harness) artifactProducedAt(t *testing.T, sessionID string, kind models.Kind) time.Time {
	t.Helper()
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	artifact, ok := h.store.artifacts[sessionID][kind]
	require.True(t, ok, "artifact %s must exist", kind)
	return artifact.producedAt
}
