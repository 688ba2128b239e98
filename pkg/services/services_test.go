package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
	"github.com/evolvedtroglodyte/therabridge/pkg/techniques"
	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

// fakeSessionStore is an in-memory SessionStore.
type fakeSessionStore struct {
	sessions map[string]*store.SessionView
	enqueued map[string]*models.RetryRequest
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions: make(map[string]*store.SessionView),
		enqueued: make(map[string]*models.RetryRequest),
	}
}

func (f *fakeSessionStore) Load(_ context.Context, id string) (*store.SessionView, error) {
	v, ok := f.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (f *fakeSessionStore) CreateSession(_ context.Context, req models.CreateSessionRequest) (*store.SessionView, error) {
	if _, ok := f.sessions[req.SessionID]; ok {
		return nil, store.ErrAlreadyExists
	}
	v := &store.SessionView{
		ID:          req.SessionID,
		PatientID:   req.PatientID,
		TherapistID: req.TherapistID,
		SessionTS:   req.SessionTS,
		DurationSec: req.DurationSec,
		Transcript:  req.Transcript,
		Status:      therapysession.StatusTranscribed,
		Progress:    make(map[models.Kind]store.KindProgress),
	}
	f.sessions[req.SessionID] = v
	return v, nil
}

func (f *fakeSessionStore) ListSessions(_ context.Context, _ models.SessionFilters) (*models.SessionListResponse, error) {
	return &models.SessionListResponse{}, nil
}

func (f *fakeSessionStore) Enqueue(_ context.Context, id string, expectedPrev therapysession.Status, req *models.RetryRequest) error {
	v, ok := f.sessions[id]
	if !ok {
		return store.ErrNotFound
	}
	if v.Status != expectedPrev {
		return store.ErrStaleStatus
	}
	v.Status = therapysession.StatusQueued
	f.enqueued[id] = req
	return nil
}

func testLibrary(t *testing.T) *techniques.Library {
	t.Helper()
	lib, err := techniques.Load("")
	require.NoError(t, err)
	return lib
}

func validCreateRequest(id string) models.CreateSessionRequest {
	return models.CreateSessionRequest{
		SessionID:   id,
		PatientID:   "patient-1",
		TherapistID: "therapist-1",
		SessionTS:   time.Now().Add(-2 * time.Hour),
		DurationSec: 720,
		Transcript: []transcript.Segment{
			{StartSec: 0, EndSec: 5, Speaker: "SPEAKER_00", Text: "How are you?"},
			{StartSec: 6, EndSec: 20, Speaker: "SPEAKER_01", Text: "Better this week."},
		},
	}
}

func newServices(t *testing.T) (*fakeSessionStore, *SessionService, *TriggerService) {
	t.Helper()
	st := newFakeSessionStore()
	analysis := config.DefaultAnalysisConfig()
	return st, NewSessionService(st, testLibrary(t), analysis), NewTriggerService(st, 6)
}

func TestCreateSessionValidation(t *testing.T) {
	_, svc, _ := newServices(t)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, models.CreateSessionRequest{})
	assert.True(t, IsValidationError(err))

	req := validCreateRequest("s1")
	req.Transcript[1].EndSec = 1 // inverted
	_, err = svc.CreateSession(ctx, req)
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)

	_, err = svc.CreateSession(ctx, validCreateRequest("s1"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGetSessionDetailResolvesTechnique(t *testing.T) {
	st, svc, _ := newServices(t)
	ctx := context.Background()
	_, err := svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)

	st.sessions["s1"].Topics = &models.TopicsResult{
		Topics:      []string{"sleep"},
		ActionItems: []string{"a", "b"},
		TechniqueID: "behavioral_activation",
	}

	detail, err := svc.GetSessionDetail(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, detail.TechniqueDefinition)
	assert.Equal(t, "Behavioral Activation", detail.TechniqueDefinition.Name)
}

// Scenario F — unknown technique id resolves to a null definition but the
// topics artifact still renders.
func TestGetSessionDetailUnknownTechniqueIsNull(t *testing.T) {
	st, svc, _ := newServices(t)
	ctx := context.Background()
	_, err := svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)

	st.sessions["s1"].Topics = &models.TopicsResult{
		Topics:      []string{"grief"},
		ActionItems: []string{"a", "b"},
		TechniqueID: "narrative_therapy",
	}

	detail, err := svc.GetSessionDetail(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, detail.TechniqueDefinition)
	assert.NotNil(t, detail.Topics)
}

// Scenario B's status surface: topics exhausted, dependents blocked.
func TestGetStatusReportsExhaustedAndBlocked(t *testing.T) {
	st, svc, _ := newServices(t)
	ctx := context.Background()
	_, err := svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)

	v := st.sessions["s1"]
	v.Status = therapysession.StatusFailed
	v.Mood = &models.MoodResult{Score: 5}
	v.Breakthrough = &models.BreakthroughResult{}
	v.Progress[models.KindTopics] = store.KindProgress{
		FailedAttempts: 2,
		LastError:      "model reply is not a JSON object",
		LastClass:      "schema",
	}

	status, err := svc.GetStatus(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "failed", status.Status)
	assert.Equal(t, "complete", status.PerKind[models.KindMood].State)
	assert.Equal(t, "exhausted", status.PerKind[models.KindTopics].State)
	assert.Equal(t, 2, status.PerKind[models.KindTopics].RetryCount)
	assert.Equal(t, "blocked", status.PerKind[models.KindActionSummary].State)
	assert.Equal(t, "blocked", status.PerKind[models.KindDeep].State)
}

func TestGetStatusHidesQueuedSubState(t *testing.T) {
	st, svc, _ := newServices(t)
	ctx := context.Background()
	_, err := svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)
	st.sessions["s1"].Status = therapysession.StatusQueued

	status, err := svc.GetStatus(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "transcribed", status.Status)
}

func TestAnalyzeEnqueuesTranscribedSession(t *testing.T) {
	st, svc, trigger := newServices(t)
	ctx := context.Background()
	_, err := svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)

	resp, err := trigger.OnTranscriptionComplete(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "transcribed", resp.Status, "queued is reported as transcribed")
	assert.Equal(t, therapysession.StatusQueued, st.sessions["s1"].Status)

	// Second trigger is an idempotent no-op.
	resp, err = trigger.Analyze(ctx, "s1", nil)
	require.NoError(t, err)
	assert.Equal(t, "transcribed", resp.Status)
}

func TestAnalyzeOnFailedSessionCarriesRetryRequest(t *testing.T) {
	st, svc, trigger := newServices(t)
	ctx := context.Background()
	_, err := svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)
	st.sessions["s1"].Status = therapysession.StatusFailed

	_, err = trigger.Analyze(ctx, "s1", []models.Kind{models.KindTopics})
	require.NoError(t, err)
	require.NotNil(t, st.enqueued["s1"])
	assert.Equal(t, []models.Kind{models.KindTopics}, st.enqueued["s1"].Kinds)
	assert.False(t, st.enqueued["s1"].Force)
}

func TestRetryRejectsNonFailedSession(t *testing.T) {
	_, svc, trigger := newServices(t)
	ctx := context.Background()
	_, err := svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)

	_, err = trigger.Retry(ctx, "s1", nil)
	assert.ErrorIs(t, err, ErrNotRetryable)
}

func TestForceRerunRequiresKinds(t *testing.T) {
	_, svc, trigger := newServices(t)
	ctx := context.Background()
	_, err := svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)

	_, err = trigger.ForceRerun(ctx, "s1", nil)
	assert.True(t, IsValidationError(err))
}

func TestTriggerRejectsUnknownKind(t *testing.T) {
	_, svc, trigger := newServices(t)
	ctx := context.Background()
	_, err := svc.CreateSession(ctx, validCreateRequest("s1"))
	require.NoError(t, err)

	_, err = trigger.Analyze(ctx, "s1", []models.Kind{"sentiment"})
	assert.True(t, IsValidationError(err))
}

func TestTriggerRateLimitsPerPatient(t *testing.T) {
	st := newFakeSessionStore()
	trigger := NewTriggerService(st, 2)
	svc := NewSessionService(st, testLibrary(t), config.DefaultAnalysisConfig())
	ctx := context.Background()

	// Three sessions for the same patient.
	for _, id := range []string{"s1", "s2", "s3"} {
		_, err := svc.CreateSession(ctx, validCreateRequest(id))
		require.NoError(t, err)
	}

	_, err := trigger.Analyze(ctx, "s1", nil)
	require.NoError(t, err)
	_, err = trigger.Analyze(ctx, "s2", nil)
	require.NoError(t, err)
	_, err = trigger.Analyze(ctx, "s3", nil)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestTriggerUnknownSession(t *testing.T) {
	_, _, trigger := newServices(t)
	_, err := trigger.Analyze(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
