package auditlog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu      sync.Mutex
	entries []Entry
	seqs    []int64
	fail    bool
}

func (c *captureSink) InsertAuditEvent(_ context.Context, entry Entry, seq int64, _ time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("table unavailable")
	}
	c.entries = append(c.entries, entry)
	c.seqs = append(c.seqs, seq)
	return nil
}

func TestEmitWritesSinkWithMonotonicSeq(t *testing.T) {
	sink := &captureSink{}
	sl := New(sink).ForSession("sess-1")

	sl.Emit(context.Background(), Entry{Component: "orchestrator", Event: EventStart, Wave: "wave1"})
	sl.Emit(context.Background(), Entry{Component: "analyzer.mood", Event: EventCallBegin, Wave: "wave1", Attempt: 1})
	sl.Emit(context.Background(), Entry{Component: "analyzer.mood", Event: EventCallEnd, Wave: "wave1", Attempt: 1})

	require.Len(t, sink.entries, 3)
	assert.Equal(t, []int64{1, 2, 3}, sink.seqs)
	assert.Equal(t, "sess-1", sink.entries[0].SessionID)
	assert.Equal(t, EventStart, sink.entries[0].Event)
	assert.Equal(t, 1, sink.entries[1].Attempt)
}

func TestEmitSurvivesSinkFailure(t *testing.T) {
	sink := &captureSink{fail: true}
	sl := New(sink).ForSession("sess-2")

	// Must not panic or propagate the sink error.
	sl.Emit(context.Background(), Entry{Component: "orchestrator", Event: EventComplete})
	assert.Empty(t, sink.entries)
}

func TestEmitNilSinkIsLineOnly(t *testing.T) {
	sl := New(nil).ForSession("sess-3")
	sl.Emit(context.Background(), Entry{Component: "orchestrator", Event: EventStart})
}

func TestSessionLoggersAreIndependent(t *testing.T) {
	sink := &captureSink{}
	logger := New(sink)

	a := logger.ForSession("a")
	b := logger.ForSession("b")
	a.Emit(context.Background(), Entry{Component: "x", Event: EventStart})
	a.Emit(context.Background(), Entry{Component: "x", Event: EventComplete})
	b.Emit(context.Background(), Entry{Component: "x", Event: EventStart})

	require.Len(t, sink.seqs, 3)
	assert.Equal(t, int64(1), sink.seqs[2], "each session starts its own sequence")
}
