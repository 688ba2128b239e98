// Package transcript models speaker-diarized session transcripts and the
// views the analyzers consume.
package transcript

import (
	"fmt"
	"strings"
)

// Segment is one diarized utterance.
type Segment struct {
	StartSec float64 `json:"start_sec"`
	EndSec   float64 `json:"end_sec"`
	Speaker  string  `json:"speaker_label"`
	Text     string  `json:"text"`
}

// Role identifies who an utterance belongs to.
type Role string

// Speaker roles.
const (
	RoleTherapist Role = "therapist"
	RolePatient   Role = "patient"
	RoleUnknown   Role = "unknown"
)

// Transcript is an ordered sequence of segments plus the resolved
// label→role mapping.
type Transcript struct {
	Segments []Segment
	roles    map[string]Role
}

// New builds a Transcript and resolves speaker roles. By convention the
// first label to appear is the therapist; therapistLabel overrides the
// convention when non-empty. With two labels and no override, the heuristic
// in detectRoles double-checks the convention against turn shape.
func New(segments []Segment, therapistLabel string) *Transcript {
	t := &Transcript{Segments: segments}
	t.roles = detectRoles(segments, therapistLabel)
	return t
}

// RoleOf returns the resolved role for a speaker label.
func (t *Transcript) RoleOf(label string) Role {
	if r, ok := t.roles[label]; ok {
		return r
	}
	return RoleUnknown
}

// PatientOnly returns the segments attributed to the patient.
func (t *Transcript) PatientOnly() []Segment {
	out := make([]Segment, 0, len(t.Segments))
	for _, seg := range t.Segments {
		if t.RoleOf(seg.Speaker) == RolePatient {
			out = append(out, seg)
		}
	}
	return out
}

// Render formats segments as dialogue lines with timestamps and roles,
// the form every analyzer prompt embeds.
func (t *Transcript) Render(segments []Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		role := t.RoleOf(seg.Speaker)
		fmt.Fprintf(&b, "[%s–%s] %s: %s\n",
			formatTimestamp(seg.StartSec), formatTimestamp(seg.EndSec), role, seg.Text)
	}
	return b.String()
}

// RenderAll renders the full transcript.
func (t *Transcript) RenderAll() string {
	return t.Render(t.Segments)
}

// RenderPatientOnly renders the patient-dialogue-only view.
func (t *Transcript) RenderPatientOnly() string {
	return t.Render(t.PatientOnly())
}

// detectRoles maps speaker labels to roles. Labels beyond the first two are
// left unknown (observers, interpreters) and excluded from the patient view.
func detectRoles(segments []Segment, therapistLabel string) map[string]Role {
	labels := labelOrder(segments)
	roles := make(map[string]Role, len(labels))

	if len(labels) == 0 {
		return roles
	}

	if therapistLabel != "" {
		roles[therapistLabel] = RoleTherapist
		for _, l := range labels {
			if l != therapistLabel {
				roles[l] = RolePatient
				break
			}
		}
		return roles
	}

	if len(labels) == 1 {
		// Monologue recordings are treated as patient dialogue.
		roles[labels[0]] = RolePatient
		return roles
	}

	first, second := labels[0], labels[1]
	therapist := first
	// Heuristic check of the convention: therapists open with short,
	// question-heavy turns. If the first speaker talks at much greater
	// length and asks fewer questions, flip.
	if wordCount(segments, first) > 3*wordCount(segments, second) &&
		questionDensity(segments, second) > questionDensity(segments, first) {
		therapist = second
	}

	for _, l := range labels {
		switch l {
		case therapist:
			roles[l] = RoleTherapist
		case first, second:
			roles[l] = RolePatient
		default:
			roles[l] = RoleUnknown
		}
	}
	return roles
}

// labelOrder returns distinct speaker labels in first-appearance order.
func labelOrder(segments []Segment) []string {
	seen := make(map[string]bool)
	var order []string
	for _, seg := range segments {
		if !seen[seg.Speaker] {
			seen[seg.Speaker] = true
			order = append(order, seg.Speaker)
		}
	}
	return order
}

func wordCount(segments []Segment, label string) int {
	n := 0
	for _, seg := range segments {
		if seg.Speaker == label {
			n += len(strings.Fields(seg.Text))
		}
	}
	return n
}

func questionDensity(segments []Segment, label string) float64 {
	turns, questions := 0, 0
	for _, seg := range segments {
		if seg.Speaker != label {
			continue
		}
		turns++
		if strings.Contains(seg.Text, "?") {
			questions++
		}
	}
	if turns == 0 {
		return 0
	}
	return float64(questions) / float64(turns)
}

// formatTimestamp renders seconds as m:ss (or h:mm:ss past the hour).
func formatTimestamp(sec float64) string {
	s := int(sec)
	h, m := s/3600, (s%3600)/60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s%60)
	}
	return fmt.Sprintf("%d:%02d", m, s%60)
}
