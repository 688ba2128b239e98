package analyzer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evolvedtroglodyte/therabridge/pkg/transcript"
)

func longTranscript(turns int) *transcript.Transcript {
	segments := make([]transcript.Segment, 0, turns)
	for i := 0; i < turns; i++ {
		speaker := "SPEAKER_00"
		if i%2 == 1 {
			speaker = "SPEAKER_01"
		}
		segments = append(segments, transcript.Segment{
			StartSec: float64(i * 20),
			EndSec:   float64(i*20 + 18),
			Speaker:  speaker,
			Text:     fmt.Sprintf("turn %d with enough words to cost a handful of tokens each time", i),
		})
	}
	return transcript.New(segments, "")
}

func TestFitToBudgetNoTrimWhenUnderBudget(t *testing.T) {
	tr := longTranscript(4)
	out := fitToBudget(tr, tr.Segments, 100000)
	assert.Equal(t, tr.RenderAll(), out)
	assert.NotContains(t, out, "omitted")
}

func TestFitToBudgetDropsOldestFirst(t *testing.T) {
	tr := longTranscript(200)
	out := fitToBudget(tr, tr.Segments, 300)

	assert.True(t, strings.HasPrefix(out, "[earlier dialogue omitted"))
	assert.Contains(t, out, "turn 199", "the session close is kept")
	assert.NotContains(t, out, "turn 0 with", "the opening is dropped")
	assert.LessOrEqual(t, tokenCount(out), 300)
}

func TestFitToBudgetZeroDisablesTrimming(t *testing.T) {
	tr := longTranscript(50)
	out := fitToBudget(tr, tr.Segments, 0)
	assert.Equal(t, tr.RenderAll(), out)
}
