// Package auditlog provides the append-only dual-sink audit trail for
// analysis runs: every event is mirrored to the operator line log (slog) and
// to the persistent audit_events table.
package auditlog

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Event is the audit event type.
type Event string

// Audit events, in rough lifecycle order.
const (
	EventStart        Event = "START"
	EventContextBuilt Event = "CONTEXT_BUILT"
	EventCallBegin    Event = "CALL_BEGIN"
	EventCallEnd      Event = "CALL_END"
	EventVersionSave  Event = "VERSION_SAVE"
	EventComplete     Event = "COMPLETE"
	EventFailed       Event = "FAILED"
)

// Entry is one audit record.
type Entry struct {
	SessionID string
	Component string
	Event     Event
	Wave      string
	Attempt   int
	Payload   map[string]interface{}
}

// RowSink persists audit entries. Implemented by the store gateway.
type RowSink interface {
	InsertAuditEvent(ctx context.Context, entry Entry, seq int64, at time.Time) error
}

// Logger fans audit entries out to slog and a RowSink. A nil sink disables
// the persistent copy (tests, degraded mode).
type Logger struct {
	sink RowSink
}

// New creates a dual logger.
func New(sink RowSink) *Logger {
	return &Logger{sink: sink}
}

// ForSession returns a session-scoped logger whose entries carry a
// monotonic sequence number. One SessionLogger per run; orchestration within
// a session is single-threaded, but seq is atomic so background writes
// (heartbeats, late persists) stay safe.
func (l *Logger) ForSession(sessionID string) *SessionLogger {
	return &SessionLogger{
		logger:    l,
		sessionID: sessionID,
	}
}

// SessionLogger emits ordered audit events for one session run.
type SessionLogger struct {
	logger    *Logger
	sessionID string
	seq       atomic.Int64
}

// Emit writes one audit entry to both sinks. A persistent-sink failure does
// not abort the caller: it is itself reported as a FAILED line-sink event.
func (s *SessionLogger) Emit(ctx context.Context, entry Entry) {
	entry.SessionID = s.sessionID
	seq := s.seq.Add(1)
	now := time.Now()

	attrs := []any{
		"session_id", entry.SessionID,
		"component", entry.Component,
		"event", string(entry.Event),
		"seq", seq,
	}
	if entry.Wave != "" {
		attrs = append(attrs, "wave", entry.Wave)
	}
	if entry.Attempt > 0 {
		attrs = append(attrs, "attempt", entry.Attempt)
	}
	for k, v := range entry.Payload {
		attrs = append(attrs, k, v)
	}

	if entry.Event == EventFailed {
		slog.Warn("audit", attrs...)
	} else {
		slog.Info("audit", attrs...)
	}

	if s.logger.sink == nil {
		return
	}
	if err := s.logger.sink.InsertAuditEvent(ctx, entry, seq, now); err != nil {
		slog.Error("audit",
			"session_id", entry.SessionID,
			"component", "auditlog",
			"event", string(EventFailed),
			"error", err,
			"dropped_event", string(entry.Event))
	}
}
