package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
)

// fakeQueueStore serves a fixed claim queue.
type fakeQueueStore struct {
	mu          sync.Mutex
	queued      []*store.SessionView
	retries     map[string]*models.RetryRequest
	active      int
	heartbeats  map[string]int
	interrupted map[string]string
}

func newFakeQueueStore() *fakeQueueStore {
	return &fakeQueueStore{
		retries:     make(map[string]*models.RetryRequest),
		heartbeats:  make(map[string]int),
		interrupted: make(map[string]string),
	}
}

func (f *fakeQueueStore) ClaimNextQueued(_ context.Context, _ string) (*store.SessionView, *models.RetryRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queued) == 0 {
		return nil, nil, store.ErrNoneQueued
	}
	view := f.queued[0]
	f.queued = f.queued[1:]
	return view, f.retries[view.ID], nil
}

func (f *fakeQueueStore) Heartbeat(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heartbeats[id]++
	return nil
}

func (f *fakeQueueStore) MarkInterrupted(_ context.Context, id, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interrupted[id] = message
	return nil
}

func (f *fakeQueueStore) RequeueOrphans(context.Context, time.Time) (int, error)     { return 0, nil }
func (f *fakeQueueStore) RequeueStartupOrphans(context.Context, string) (int, error) { return 0, nil }
func (f *fakeQueueStore) QueueDepth(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queued), nil
}
func (f *fakeQueueStore) ActiveCount(context.Context, string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active, nil
}

type fakeExecutor struct {
	mu       sync.Mutex
	executed []string
	retries  []*models.RetryRequest
	result   *ExecutionResult
	block    time.Duration
}

func (f *fakeExecutor) Execute(ctx context.Context, sessionID string, retry *models.RetryRequest) *ExecutionResult {
	f.mu.Lock()
	f.executed = append(f.executed, sessionID)
	f.retries = append(f.retries, retry)
	f.mu.Unlock()
	if f.block > 0 {
		select {
		case <-ctx.Done():
			return &ExecutionResult{Err: ctx.Err()}
		case <-time.After(f.block):
		}
	}
	if f.result != nil {
		return f.result
	}
	return &ExecutionResult{Status: therapysession.StatusComplete}
}

type noopRegistry struct{}

func (noopRegistry) RegisterSession(string, context.CancelFunc) {}
func (noopRegistry) UnregisterSession(string)                   {}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.HeartbeatInterval = 10 * time.Millisecond
	cfg.SessionTimeout = 200 * time.Millisecond
	return cfg
}

func queuedView(id string) *store.SessionView {
	return &store.SessionView{ID: id, Status: therapysession.StatusWave1Running}
}

func TestWorkerProcessesClaimedSession(t *testing.T) {
	st := newFakeQueueStore()
	st.queued = []*store.SessionView{queuedView("s1")}
	st.retries["s1"] = &models.RetryRequest{Kinds: []models.Kind{models.KindTopics}}
	exec := &fakeExecutor{}

	w := NewWorker("w1", "pod-1", st, testQueueConfig(), exec, noopRegistry{})
	err := w.pollAndProcess(context.Background())
	require.NoError(t, err)

	require.Equal(t, []string{"s1"}, exec.executed)
	require.Len(t, exec.retries, 1)
	require.NotNil(t, exec.retries[0])
	assert.Equal(t, []models.Kind{models.KindTopics}, exec.retries[0].Kinds)
	assert.Empty(t, st.interrupted)
	assert.Equal(t, 1, w.Health().SessionsProcessed)
}

func TestWorkerNoSessionsAvailable(t *testing.T) {
	w := NewWorker("w1", "pod-1", newFakeQueueStore(), testQueueConfig(), &fakeExecutor{}, noopRegistry{})
	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoSessionsAvailable)
}

func TestWorkerRespectsCapacity(t *testing.T) {
	st := newFakeQueueStore()
	st.queued = []*store.SessionView{queuedView("s1")}
	st.active = config.DefaultQueueConfig().MaxConcurrentSessions

	exec := &fakeExecutor{}
	w := NewWorker("w1", "pod-1", st, testQueueConfig(), exec, noopRegistry{})
	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
	assert.Empty(t, exec.executed)
}

func TestWorkerMarksInterruptedOnTimeout(t *testing.T) {
	st := newFakeQueueStore()
	st.queued = []*store.SessionView{queuedView("s1")}
	exec := &fakeExecutor{block: time.Second} // outlives the 200ms session timeout

	w := NewWorker("w1", "pod-1", st, testQueueConfig(), exec, noopRegistry{})
	err := w.pollAndProcess(context.Background())
	require.NoError(t, err)

	st.mu.Lock()
	defer st.mu.Unlock()
	assert.Contains(t, st.interrupted["s1"], "timed out")
}

func TestWorkerHeartbeatsWhileExecuting(t *testing.T) {
	st := newFakeQueueStore()
	st.queued = []*store.SessionView{queuedView("s1")}
	exec := &fakeExecutor{block: 80 * time.Millisecond}

	w := NewWorker("w1", "pod-1", st, testQueueConfig(), exec, noopRegistry{})
	require.NoError(t, w.pollAndProcess(context.Background()))

	st.mu.Lock()
	defer st.mu.Unlock()
	assert.GreaterOrEqual(t, st.heartbeats["s1"], 1)
}
