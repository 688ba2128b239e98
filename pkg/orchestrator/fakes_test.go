package orchestrator

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/evolvedtroglodyte/therabridge/ent/therapysession"
	"github.com/evolvedtroglodyte/therabridge/pkg/analyzer"
	"github.com/evolvedtroglodyte/therabridge/pkg/auditlog"
	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/llm"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/router"
	"github.com/evolvedtroglodyte/therabridge/pkg/store"
	"github.com/evolvedtroglodyte/therabridge/pkg/techniques"
	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

// ────────────────────────────────────────────────────────────
// Task-keyed fake LLM
// ────────────────────────────────────────────────────────────

// taskResponse is one scripted step for a task: an error or a reply.
type taskResponse struct {
	reply string
	err   error
}

// fakeLLM routes requests to per-task scripts by matching the system
// prompt, since Wave-1 calls arrive in nondeterministic order.
type fakeLLM struct {
	mu      sync.Mutex
	scripts map[string][]taskResponse // task → remaining steps
	calls   map[string]int            // task → total calls observed
}

func newFakeLLM() *fakeLLM {
	return &fakeLLM{
		scripts: make(map[string][]taskResponse),
		calls:   make(map[string]int),
	}
}

func (f *fakeLLM) script(task string, steps ...taskResponse) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[task] = append(f.scripts[task], steps...)
}

// taskOf identifies the analyzer behind a request by its system prompt.
func taskOf(req *llm.Request) string {
	system := req.Messages[0].Content
	switch {
	case strings.Contains(system, "scoring the mood"):
		return "mood"
	case strings.Contains(system, "extracting structured notes"):
		return "topics"
	case strings.Contains(system, "condense two therapy homework"):
		return "action_summary"
	case strings.Contains(system, "detecting breakthrough moments"):
		return "breakthrough"
	case strings.Contains(system, "structured deep analysis"):
		return "deep"
	}
	return "unknown"
}

func (f *fakeLLM) Complete(_ context.Context, req *llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := taskOf(req)
	f.calls[task]++

	steps := f.scripts[task]
	if len(steps) == 0 {
		return nil, &llm.Error{Category: llm.CategoryTransport, Err: errScriptExhausted}
	}
	step := steps[0]
	f.scripts[task] = steps[1:]
	if step.err != nil {
		return nil, step.err
	}
	return &llm.Response{
		Content: step.reply,
		Usage:   llm.Usage{PromptTokens: 1000, CompletionTokens: 100},
	}, nil
}

func (f *fakeLLM) Close() error { return nil }

func (f *fakeLLM) callCount(task string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[task]
}

var errScriptExhausted = &scriptError{}

type scriptError struct{}

func (*scriptError) Error() string { return "fake llm script exhausted" }

// Canned replies.
const (
	moodReply = `{"score": 6.5, "confidence": 0.8, "rationale": "steady improvement", "key_indicators": ["engaged"], "emotional_tone": "hopeful"}`

	topicsReply = `{"topics": ["workplace stress"], "action_items": ["Schedule a walk before work", "Write down one win daily"], "technique_id": "cognitive_restructuring", "summary": "Focused on reframing work stress.", "extraction_confidence": 0.9}`

	actionSummaryReply = `{"text": "Morning walks + daily wins journal"}`

	breakthroughReply = `{"has_breakthrough": false, "all_breakthroughs": []}`

	deepReply = `{"progress_indicators": [], "coping_skills": ["reframing"], "relational_patterns": [], "risk_flags": [], "recommended_follow_up_topics": ["sleep"], "unresolved_concerns": [], "analysis_confidence": 0.7}`
)

// happyScripts loads one successful reply per task.
func (f *fakeLLM) happyScripts() {
	f.script("mood", taskResponse{reply: moodReply})
	f.script("topics", taskResponse{reply: topicsReply})
	f.script("action_summary", taskResponse{reply: actionSummaryReply})
	f.script("breakthrough", taskResponse{reply: breakthroughReply})
	f.script("deep", taskResponse{reply: deepReply})
}

// ────────────────────────────────────────────────────────────
// In-memory store fake
// ────────────────────────────────────────────────────────────

type storedArtifact struct {
	write      store.ArtifactWrite
	producedAt time.Time
}

// memStore is an in-memory Store honoring the gateway's semantics:
// optimistic status transitions, duplicate-artifact detection, terminal
// rejection, append-only logs.
type memStore struct {
	mu        sync.Mutex
	sessions  map[string]*store.SessionView
	artifacts map[string]map[models.Kind]storedArtifact
	logs      map[string][]store.LogWrite
	statusLog map[string][]therapysession.Status
	// priorSummaries maps patient id → earlier-session summaries.
	priorSummaries map[string][]string
}

func newMemStore() *memStore {
	return &memStore{
		sessions:       make(map[string]*store.SessionView),
		artifacts:      make(map[string]map[models.Kind]storedArtifact),
		logs:           make(map[string][]store.LogWrite),
		statusLog:      make(map[string][]therapysession.Status),
		priorSummaries: make(map[string][]string),
	}
}

func (m *memStore) addSession(id string, segments []transcript.Segment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &store.SessionView{
		ID:          id,
		PatientID:   "patient-1",
		TherapistID: "therapist-1",
		SessionTS:   time.Now().Add(-time.Hour),
		DurationSec: 720,
		Transcript:  segments,
		Status:      therapysession.StatusTranscribed,
		CreatedAt:   time.Now().Add(-time.Hour),
		Progress:    make(map[models.Kind]store.KindProgress),
	}
	m.artifacts[id] = make(map[models.Kind]storedArtifact)
}

func (m *memStore) Load(_ context.Context, id string) (*store.SessionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(id)
}

// snapshot deep-copies the view so callers never alias internal state.
func (m *memStore) snapshot(id string) (*store.SessionView, error) {
	v, ok := m.sessions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *v
	copied.Progress = make(map[models.Kind]store.KindProgress, len(models.AllKinds))
	for _, log := range m.logs[id] {
		if log.Status != "failed" {
			continue
		}
		progress := copied.Progress[log.Kind]
		progress.FailedAttempts++
		progress.LastError = log.Error
		progress.LastClass = log.ErrorClass
		copied.Progress[log.Kind] = progress
	}
	return &copied, nil
}

func (m *memStore) WriteArtifact(_ context.Context, id string, write store.ArtifactWrite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.sessions[id]
	if !ok {
		return store.ErrNotFound
	}
	if v.Status == therapysession.StatusComplete {
		return store.ErrTerminalState
	}

	m.artifacts[id][write.Kind] = storedArtifact{write: write, producedAt: write.ProducedAt}
	switch write.Kind {
	case models.KindMood:
		v.Mood = write.Payload.(*models.MoodResult)
	case models.KindTopics:
		v.Topics = write.Payload.(*models.TopicsResult)
	case models.KindActionSummary:
		v.ActionSummary = write.Payload.(*models.ActionSummaryResult)
	case models.KindBreakthrough:
		v.Breakthrough = write.Payload.(*models.BreakthroughResult)
	case models.KindDeep:
		v.Deep = write.Payload.(*models.DeepResult)
	}
	v.CostUSD += write.CostUSD
	m.logs[id] = append(m.logs[id], store.LogWrite{
		Kind:             write.Kind,
		Status:           "completed",
		Attempt:          write.Attempt,
		StartedAt:        write.ProducedAt,
		DurationMS:       write.DurationMS,
		PromptTokens:     write.PromptTokens,
		CompletionTokens: write.CompletionTokens,
		CostUSD:          write.CostUSD,
	})
	return nil
}

func (m *memStore) SetStatus(_ context.Context, id string, newStatus, expectedPrev therapysession.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.sessions[id]
	if !ok {
		return store.ErrNotFound
	}
	if v.Status != expectedPrev {
		return store.ErrStaleStatus
	}
	v.Status = newStatus
	m.statusLog[id] = append(m.statusLog[id], newStatus)
	return nil
}

func (m *memStore) SetFailure(_ context.Context, id, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.sessions[id]
	if !ok {
		return store.ErrNotFound
	}
	v.ErrorMessage = message
	return nil
}

func (m *memStore) RecordLog(_ context.Context, id string, write store.LogWrite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.sessions[id]
	if !ok {
		return store.ErrNotFound
	}
	m.logs[id] = append(m.logs[id], write)
	v.CostUSD += write.CostUSD
	return nil
}

func (m *memStore) PriorSessionSummaries(_ context.Context, patientID string, _ time.Time, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	summaries := m.priorSummaries[patientID]
	if len(summaries) > limit {
		summaries = summaries[len(summaries)-limit:]
	}
	return append([]string(nil), summaries...), nil
}

func (m *memStore) status(id string) therapysession.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id].Status
}

func (m *memStore) logCount(id string, kind models.Kind, status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, log := range m.logs[id] {
		if log.Kind == kind && string(log.Status) == status {
			n++
		}
	}
	return n
}

func (m *memStore) transitions(id string) []therapysession.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]therapysession.Status(nil), m.statusLog[id]...)
}

func (m *memStore) cost(id string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id].CostUSD
}

func (m *memStore) loggedCost(id string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0.0
	for _, log := range m.logs[id] {
		total += log.CostUSD
	}
	return total
}

// ────────────────────────────────────────────────────────────
// Harness
// ────────────────────────────────────────────────────────────

type harness struct {
	store *memStore
	llm   *fakeLLM
	orch  *Orchestrator

	// sleeps records every backoff delay instead of waiting it out.
	sleepMu sync.Mutex
	sleeps  []time.Duration
}

func newHarness() *harness {
	h := &harness{
		store: newMemStore(),
		llm:   newFakeLLM(),
	}

	lib, err := techniques.Load("")
	if err != nil {
		panic(err)
	}
	analysisCfg := config.DefaultAnalysisConfig()
	set := analyzer.NewSet(analyzer.Deps{
		Router:     router.New(config.DefaultRouterConfig()),
		LLM:        h.llm,
		Analysis:   analysisCfg,
		Techniques: lib,
	})

	h.orch = New(h.store, set, auditlog.New(nil), analysisCfg)
	h.orch.sleepFn = func(_ context.Context, d time.Duration) error {
		h.sleepMu.Lock()
		defer h.sleepMu.Unlock()
		h.sleeps = append(h.sleeps, d)
		return nil
	}
	return h
}

func sessionSegments() []transcript.Segment {
	return []transcript.Segment{
		{StartSec: 0, EndSec: 6, Speaker: "SPEAKER_00", Text: "Where would you like to start today?"},
		{StartSec: 7, EndSec: 40, Speaker: "SPEAKER_01", Text: "Work again. But I tried the reframing we practiced and the meeting went better than I expected."},
		{StartSec: 41, EndSec: 48, Speaker: "SPEAKER_00", Text: "What did you say to yourself in the moment?"},
		{StartSec: 49, EndSec: 90, Speaker: "SPEAKER_01", Text: "That one bad meeting does not mean I am failing. It sounds small but it changed how the whole day went."},
	}
}
