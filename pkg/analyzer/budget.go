package analyzer

import (
	"sync"

	"github.com/tiktoken-go/tokenizer"

	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

var (
	codecOnce sync.Once
	codec     tokenizer.Codec
	codecErr  error
)

// tokenCount counts BPE tokens for prompt budgeting. On encoder failure it
// falls back to a conservative bytes/3 estimate rather than blocking
// analysis.
func tokenCount(text string) int {
	codecOnce.Do(func() {
		codec, codecErr = tokenizer.Get(tokenizer.Cl100kBase)
	})
	if codecErr != nil {
		return len(text) / 3
	}
	ids, _, err := codec.Encode(text)
	if err != nil {
		return len(text) / 3
	}
	return len(ids)
}

// omittedNotice is prepended to a trimmed transcript so the model never
// mistakes a truncated session for a complete one.
const omittedNotice = "[earlier dialogue omitted to fit context]\n"

// fitToBudget renders segments as dialogue, dropping the oldest segments
// until the rendering fits budget tokens. Zero budget disables trimming.
// The session's close carries the clinical weight, so the tail is kept.
func fitToBudget(t *transcript.Transcript, segments []transcript.Segment, budget int) string {
	rendered := t.Render(segments)
	if budget <= 0 || tokenCount(rendered) <= budget {
		return rendered
	}

	// Binary search the largest suffix that fits.
	lo, hi := 1, len(segments) // lo..hi = candidate start indices
	for lo < hi {
		mid := (lo + hi) / 2
		if tokenCount(omittedNotice+t.Render(segments[mid:])) <= budget {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo >= len(segments) {
		// Even a single segment overflows; send the final one regardless.
		lo = len(segments) - 1
	}
	return omittedNotice + t.Render(segments[lo:])
}
