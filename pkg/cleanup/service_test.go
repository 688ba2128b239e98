package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evolvedtroglodyte/therabridge/pkg/config"
)

type fakeRetentionStore struct {
	mu            sync.Mutex
	sessionPasses int
	auditPasses   int
}

func (f *fakeRetentionStore) SoftDeleteOldSessions(_ context.Context, _ int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessionPasses++
	return 2, nil
}

func (f *fakeRetentionStore) PurgeOldAuditEvents(_ context.Context, _ time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auditPasses++
	return 5, nil
}

func (f *fakeRetentionStore) passes() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessionPasses, f.auditPasses
}

func TestServiceRunsPassOnStartAndInterval(t *testing.T) {
	st := &fakeRetentionStore{}
	svc := NewService(&config.RetentionConfig{
		SessionRetentionDays: 30,
		AuditEventTTL:        time.Hour,
		CleanupInterval:      20 * time.Millisecond,
	}, st)

	svc.Start(context.Background())
	time.Sleep(70 * time.Millisecond)
	svc.Stop()

	sessions, audits := st.passes()
	assert.GreaterOrEqual(t, sessions, 2, "startup pass plus at least one interval pass")
	assert.Equal(t, sessions, audits)
}

func TestServiceStopWithoutStart(t *testing.T) {
	svc := NewService(config.DefaultRetentionConfig(), &fakeRetentionStore{})
	svc.Stop() // must not panic
}

func TestServiceStartTwiceIsNoop(t *testing.T) {
	st := &fakeRetentionStore{}
	svc := NewService(&config.RetentionConfig{
		SessionRetentionDays: 30,
		AuditEventTTL:        time.Hour,
		CleanupInterval:      time.Hour,
	}, st)

	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()

	sessions, _ := st.passes()
	assert.Equal(t, 1, sessions)
}
