package analyzer

import (
	"context"
	"sync"

	"github.com/evolvedtroglodyte/therabridge/pkg/config"
	"github.com/evolvedtroglodyte/therabridge/pkg/llm"
	"github.com/evolvedtroglodyte/therabridge/pkg/models"
	"github.com/evolvedtroglodyte/therabridge/pkg/router"
	"github.com/evolvedtroglodyte/therabridge/pkg/techniques"
	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

// fakeLLM replays scripted replies and records requests.
type fakeLLM struct {
	mu       sync.Mutex
	replies  []string
	errs     []error
	calls    int
	requests []*llm.Request
}

func (f *fakeLLM) Complete(_ context.Context, req *llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	reply := "{}"
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	return &llm.Response{
		Content: reply,
		Usage:   llm.Usage{PromptTokens: 100, CompletionTokens: 20},
	}, nil
}

func (f *fakeLLM) Close() error { return nil }

func (f *fakeLLM) lastRequest() *llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

func testDeps(client llm.Client) Deps {
	lib, err := techniques.Load("")
	if err != nil {
		panic(err)
	}
	return Deps{
		Router:     router.New(config.DefaultRouterConfig()),
		LLM:        client,
		Analysis:   config.DefaultAnalysisConfig(),
		Techniques: lib,
	}
}

// testSessionContext builds a two-speaker session: SPEAKER_00 is the
// therapist by convention.
func testSessionContext() *SessionContext {
	segments := []transcript.Segment{
		{StartSec: 0, EndSec: 8, Speaker: "SPEAKER_00", Text: "How have you been sleeping since our last session?"},
		{StartSec: 9, EndSec: 30, Speaker: "SPEAKER_01", Text: "Honestly, better. I tried the breathing exercise when I woke up at night and it actually helped."},
		{StartSec: 31, EndSec: 40, Speaker: "SPEAKER_00", Text: "What do you think made it work this time?"},
		{StartSec: 41, EndSec: 75, Speaker: "SPEAKER_01", Text: "I stopped telling myself I was failing at it. I just did it without judging how well it was going."},
	}
	return &SessionContext{
		SessionID:  "sess-test",
		Transcript: transcript.New(segments, ""),
	}
}

func topicsFixture() *models.TopicsResult {
	return &models.TopicsResult{
		Topics:      []string{"sleep hygiene"},
		ActionItems: []string{"Practice breathing exercise nightly", "Keep a sleep log"},
		TechniqueID: "cognitive_restructuring",
		Summary:     "Worked on sleep and self-judgment.",
		Confidence:  0.9,
	}
}
