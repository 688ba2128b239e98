package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/ent/analysislog"
	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
	testdb "github.com/evolvedtroglodyte/therabridge/test/database"
)

func newGateway(t *testing.T) *store.Gateway {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping store integration test in -short mode")
	}
	client := testdb.NewTestClient(t)
	return store.New(client.Client)
}

func createTestSession(t *testing.T, g *store.Gateway, id string) {
	t.Helper()
	_, err := g.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID:   id,
		PatientID:   "patient-1",
		TherapistID: "therapist-1",
		SessionTS:   time.Now().Add(-time.Hour),
		DurationSec: 600,
		Transcript: []transcript.Segment{
			{StartSec: 0, EndSec: 5, Speaker: "SPEAKER_00", Text: "Hello."},
			{StartSec: 6, EndSec: 20, Speaker: "SPEAKER_01", Text: "Hi. This week was hard."},
		},
	})
	require.NoError(t, err)
}

func moodWrite() store.ArtifactWrite {
	return store.ArtifactWrite{
		Kind: models.KindMood,
		Payload: &models.MoodResult{
			Score:         6.5,
			Confidence:    0.8,
			Rationale:     "steady",
			EmotionalTone: "hopeful",
			ModelID:       "gpt-4o-mini",
			ProducedAt:    time.Now().UTC(),
		},
		Confidence:       0.8,
		ModelID:          "gpt-4o-mini",
		PromptTokens:     1000,
		CompletionTokens: 100,
		CostUSD:          0.00021,
		ProducedAt:       time.Now().UTC(),
		Attempt:          1,
		DurationMS:       1200,
	}
}

func TestWriteArtifactPersistsAtomically(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	createTestSession(t, g, "s1")

	require.NoError(t, g.SetStatus(ctx, "s1", therapysession.StatusWave1Running, therapysession.StatusTranscribed))
	require.NoError(t, g.WriteArtifact(ctx, "s1", moodWrite()))

	view, err := g.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, view.Mood)
	assert.Equal(t, 6.5, view.Mood.Score)
	assert.InDelta(t, 0.00021, view.CostUSD, 1e-9)
	assert.Zero(t, view.Progress[models.KindMood].FailedAttempts)
}

func TestWriteArtifactSecondWriteSupersedes(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	createTestSession(t, g, "s1")
	require.NoError(t, g.SetStatus(ctx, "s1", therapysession.StatusWave1Running, therapysession.StatusTranscribed))

	require.NoError(t, g.WriteArtifact(ctx, "s1", moodWrite()))
	// WriteArtifact supersedes before insert, so a plain second write
	// versions rather than conflicts; both rows exist, one current.
	require.NoError(t, g.WriteArtifact(ctx, "s1", moodWrite()))

	view, err := g.Load(ctx, "s1")
	require.NoError(t, err)
	assert.NotNil(t, view.Mood)
}

func TestWriteArtifactRejectsTerminalSession(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	createTestSession(t, g, "s1")

	require.NoError(t, g.SetStatus(ctx, "s1", therapysession.StatusWave1Running, therapysession.StatusTranscribed))
	require.NoError(t, g.SetStatus(ctx, "s1", therapysession.StatusWave1Complete, therapysession.StatusWave1Running))
	require.NoError(t, g.SetStatus(ctx, "s1", therapysession.StatusWave2Running, therapysession.StatusWave1Complete))
	require.NoError(t, g.SetStatus(ctx, "s1", therapysession.StatusComplete, therapysession.StatusWave2Running))

	err := g.WriteArtifact(ctx, "s1", moodWrite())
	assert.ErrorIs(t, err, store.ErrTerminalState)
}

func TestSetStatusOptimisticConcurrency(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	createTestSession(t, g, "s1")

	require.NoError(t, g.SetStatus(ctx, "s1", therapysession.StatusWave1Running, therapysession.StatusTranscribed))

	// Second transition with the stale expectation loses.
	err := g.SetStatus(ctx, "s1", therapysession.StatusWave1Running, therapysession.StatusTranscribed)
	assert.ErrorIs(t, err, store.ErrStaleStatus)

	err = g.SetStatus(ctx, "missing", therapysession.StatusWave1Running, therapysession.StatusTranscribed)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEnqueueAndClaimConsumesRetryRequest(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	createTestSession(t, g, "s1")

	req := &models.RetryRequest{Kinds: []models.Kind{models.KindTopics}, Force: true}
	require.NoError(t, g.Enqueue(ctx, "s1", therapysession.StatusTranscribed, req))

	view, claimed, err := g.ClaimNextQueued(ctx, "pod-1")
	require.NoError(t, err)
	assert.Equal(t, "s1", view.ID)
	require.NotNil(t, claimed)
	assert.True(t, claimed.Force)
	assert.Equal(t, []models.Kind{models.KindTopics}, claimed.Kinds)
	assert.Equal(t, therapysession.StatusWave1Running, view.Status)

	// Queue is drained.
	_, _, err = g.ClaimNextQueued(ctx, "pod-1")
	assert.ErrorIs(t, err, store.ErrNoneQueued)
}

func TestRecordLogAccumulatesCostAndProgress(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	createTestSession(t, g, "s1")

	require.NoError(t, g.RecordLog(ctx, "s1", store.LogWrite{
		Kind:       models.KindMood,
		Status:     analysislog.StatusFailed,
		Attempt:    1,
		Error:      "rate limited",
		ErrorClass: "transient",
		StartedAt:  time.Now().Add(-2 * time.Second),
		DurationMS: 2000,
		CostUSD:    0.0001,
	}))

	view, err := g.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Progress[models.KindMood].FailedAttempts)
	assert.Equal(t, "rate limited", view.Progress[models.KindMood].LastError)
	assert.Equal(t, "transient", view.Progress[models.KindMood].LastClass)
	assert.InDelta(t, 0.0001, view.CostUSD, 1e-9)
}

func TestPriorSessionSummariesOldestFirst(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()

	// Three analyzed sessions for the patient plus one without topics.
	for i, id := range []string{"old", "mid", "new", "unanalyzed"} {
		_, err := g.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:   id,
			PatientID:   "patient-1",
			TherapistID: "therapist-1",
			SessionTS:   time.Now().Add(-time.Duration(96-i*24) * time.Hour),
			DurationSec: 600,
			Transcript: []transcript.Segment{
				{StartSec: 0, EndSec: 5, Speaker: "SPEAKER_00", Text: "Hello."},
				{StartSec: 6, EndSec: 20, Speaker: "SPEAKER_01", Text: "Hi."},
			},
		})
		require.NoError(t, err)
	}
	for _, id := range []string{"old", "mid", "new"} {
		require.NoError(t, g.SetStatus(ctx, id, therapysession.StatusWave1Running, therapysession.StatusTranscribed))
		write := moodWrite()
		write.Kind = models.KindTopics
		write.Payload = &models.TopicsResult{
			Topics:      []string{"work"},
			ActionItems: []string{"a", "b"},
			Summary:     "summary for " + id,
			ProducedAt:  time.Now().UTC(),
		}
		require.NoError(t, g.WriteArtifact(ctx, id, write))
	}

	summaries, err := g.PriorSessionSummaries(ctx, "patient-1", time.Now(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"summary for mid", "summary for new"}, summaries,
		"most recent two, oldest first; the unanalyzed session is skipped")

	none, err := g.PriorSessionSummaries(ctx, "patient-2", time.Now(), 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRequeueOrphans(t *testing.T) {
	g := newGateway(t)
	ctx := context.Background()
	createTestSession(t, g, "s1")

	require.NoError(t, g.Enqueue(ctx, "s1", therapysession.StatusTranscribed, nil))
	_, _, err := g.ClaimNextQueued(ctx, "pod-dead")
	require.NoError(t, err)

	// Heartbeat is fresh: nothing to requeue.
	requeued, err := g.RequeueOrphans(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Zero(t, requeued)

	// A future threshold makes the heartbeat stale.
	requeued, err = g.RequeueOrphans(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, requeued)

	view, _, err := g.ClaimNextQueued(ctx, "pod-new")
	require.NoError(t, err)
	assert.Equal(t, "s1", view.ID)
}
