package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSegments() []Segment {
	return []Segment{
		{StartSec: 0, EndSec: 6, Speaker: "SPEAKER_00", Text: "What brought you in today?"},
		{StartSec: 7, EndSec: 42, Speaker: "SPEAKER_01", Text: "Work has been overwhelming. I have not slept properly in weeks and I keep snapping at my partner over small things."},
		{StartSec: 43, EndSec: 50, Speaker: "SPEAKER_00", Text: "How long has the sleep been this bad?"},
		{StartSec: 51, EndSec: 80, Speaker: "SPEAKER_01", Text: "Since the reorg started, maybe six weeks. I lie awake replaying conversations from the office."},
	}
}

func TestConventionFirstSpeakerIsTherapist(t *testing.T) {
	tr := New(sampleSegments(), "")
	assert.Equal(t, RoleTherapist, tr.RoleOf("SPEAKER_00"))
	assert.Equal(t, RolePatient, tr.RoleOf("SPEAKER_01"))
}

func TestExplicitOverrideWins(t *testing.T) {
	tr := New(sampleSegments(), "SPEAKER_01")
	assert.Equal(t, RoleTherapist, tr.RoleOf("SPEAKER_01"))
	assert.Equal(t, RolePatient, tr.RoleOf("SPEAKER_00"))
}

func TestHeuristicFlipsWhenFirstSpeakerIsPatient(t *testing.T) {
	// Diarization labeled the patient first: long opening monologue, while
	// the second speaker asks short questions.
	segments := []Segment{
		{StartSec: 0, EndSec: 60, Speaker: "SPEAKER_00", Text: "I have been meaning to talk about my mother again because last week after the call I felt the same heaviness I always feel and I spent two days barely leaving the apartment thinking about everything we never resolved between us."},
		{StartSec: 61, EndSec: 65, Speaker: "SPEAKER_01", Text: "What do you make of that heaviness?"},
		{StartSec: 66, EndSec: 110, Speaker: "SPEAKER_00", Text: "I think it is guilt mostly, like I owe her something I cannot name, and the apartment gets so quiet that the thought just sits there with me all evening."},
		{StartSec: 111, EndSec: 114, Speaker: "SPEAKER_01", Text: "When did you first notice it?"},
	}
	tr := New(segments, "")
	assert.Equal(t, RolePatient, tr.RoleOf("SPEAKER_00"))
	assert.Equal(t, RoleTherapist, tr.RoleOf("SPEAKER_01"))
}

func TestPatientOnlyView(t *testing.T) {
	tr := New(sampleSegments(), "")
	patient := tr.PatientOnly()
	require.Len(t, patient, 2)
	for _, seg := range patient {
		assert.Equal(t, "SPEAKER_01", seg.Speaker)
	}
}

func TestRenderFormatsRolesAndTimestamps(t *testing.T) {
	tr := New(sampleSegments(), "")
	out := tr.RenderAll()
	assert.Contains(t, out, "[0:00–0:06] therapist: What brought you in today?")
	assert.Contains(t, out, "[0:07–0:42] patient: Work has been overwhelming.")
}

func TestRenderHourTimestamps(t *testing.T) {
	tr := New([]Segment{{StartSec: 3723, EndSec: 3730, Speaker: "S", Text: "late remark"}}, "")
	assert.Contains(t, tr.RenderAll(), "[1:02:03–1:02:10]")
}

func TestThirdSpeakerIsUnknownAndExcluded(t *testing.T) {
	segments := append(sampleSegments(), Segment{
		StartSec: 81, EndSec: 90, Speaker: "SPEAKER_02", Text: "Interpreter aside.",
	})
	tr := New(segments, "")
	assert.Equal(t, RoleUnknown, tr.RoleOf("SPEAKER_02"))
	assert.Len(t, tr.PatientOnly(), 2)
}

func TestSingleSpeakerTreatedAsPatient(t *testing.T) {
	tr := New([]Segment{{StartSec: 0, EndSec: 5, Speaker: "SPEAKER_00", Text: "Voice memo."}}, "")
	assert.Equal(t, RolePatient, tr.RoleOf("SPEAKER_00"))
}
