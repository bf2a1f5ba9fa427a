// Package board holds the domain core of the dashboard: stress derivation,
// role/experience lookup, identity formatting, and the snapshot reconciler
// that maps poll responses onto the live set of member views.
package board

import (
	"math"
	"sort"
	"strings"

	"boardwatch/internal/api"
)

// TransitionKind tags a transition log record.
type TransitionKind int

const (
	TransitionStage TransitionKind = iota
	TransitionSpeaker
)

// String returns the category tag used for log coloring.
func (k TransitionKind) String() string {
	switch k {
	case TransitionStage:
		return "stage"
	case TransitionSpeaker:
		return "speaker"
	default:
		return "unknown"
	}
}

// Transition records one detected stage or speaker change. Value is the
// human-readable rendering (stage label verbatim, speaker via DisplayName).
type Transition struct {
	Kind  TransitionKind
	Value string
}

// NoSpeakerLabel is the rendering used when the floor is yielded.
const NoSpeakerLabel = "None"

// MemberDisplay holds the derived display fields for one member, computed
// fresh from each snapshot.
type MemberDisplay struct {
	HealthPercent int
	Contributions int
	Thoughts      []string
	StressPercent int
	Band          StressBand
}

// Result is the outcome of one reconciliation pass. Created identities are
// listed in sorted order so view creation is deterministic; the caller is
// expected to instantiate a view and animator for each. Highlight names the
// member currently speaking, or is empty when nobody known holds the floor.
type Result struct {
	Created     []string
	Updated     []string
	Members     map[string]MemberDisplay
	Transitions []Transition
	Highlight   string
}

// Reconciler diffs successive meeting snapshots against the known member
// set and tracks the last seen stage and speaker across calls. The zero
// value is ready to use at the start of a session.
type Reconciler struct {
	lastStage   string
	lastSpeaker string
	speakerSet  bool
}

// Reconcile applies one snapshot. known is the set of identities that
// already have views; identities in the snapshot but not in known are
// reported as created, the rest as updated. Identities known previously but
// absent from the snapshot are left untouched. Member fields are computed
// before transitions are finalized, so logged transitions always reflect
// the state just rendered.
func (r *Reconciler) Reconcile(known map[string]bool, status *api.MeetingStatus) Result {
	res := Result{
		Members: make(map[string]MemberDisplay, len(status.MeetingStats)),
	}

	ids := make([]string, 0, len(status.MeetingStats))
	for id := range status.MeetingStats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		stats := status.MeetingStats[id]
		res.Members[id] = buildDisplay(stats)

		if known[id] {
			res.Updated = append(res.Updated, id)
		} else {
			res.Created = append(res.Created, id)
		}
	}

	// Highlight goes to the current speaker, but only when we have (or just
	// created) a view for it. An unknown speaker identity is tolerated.
	if status.CurrentSpeaker != nil {
		sp := *status.CurrentSpeaker
		if _, inSnapshot := status.MeetingStats[sp]; inSnapshot || known[sp] {
			res.Highlight = sp
		}
	}

	res.Transitions = r.detectTransitions(status)

	return res
}

// Reset clears the tracked stage and speaker, ready for a fresh session.
func (r *Reconciler) Reset() {
	r.lastStage = ""
	r.lastSpeaker = ""
	r.speakerSet = false
}

// detectTransitions compares the snapshot's stage and speaker against the
// previously seen values and updates the trackers. A nil speaker is a
// distinct value: both clearing and setting the floor produce a record.
func (r *Reconciler) detectTransitions(status *api.MeetingStatus) []Transition {
	var transitions []Transition

	if status.MeetingStage != r.lastStage {
		r.lastStage = status.MeetingStage
		transitions = append(transitions, Transition{
			Kind:  TransitionStage,
			Value: status.MeetingStage,
		})
	}

	speaker := ""
	speakerSet := false
	if status.CurrentSpeaker != nil {
		speaker = *status.CurrentSpeaker
		speakerSet = true
	}

	if speakerSet != r.speakerSet || speaker != r.lastSpeaker {
		r.lastSpeaker = speaker
		r.speakerSet = speakerSet

		value := NoSpeakerLabel
		if speakerSet {
			value = DisplayName(speaker)
		}
		transitions = append(transitions, Transition{
			Kind:  TransitionSpeaker,
			Value: value,
		})
	}

	return transitions
}

// buildDisplay derives the card fields from raw member stats. Empty
// thoughts are filtered out rather than rendered as blank entries.
func buildDisplay(stats api.MemberStats) MemberDisplay {
	var thoughts []string
	for _, th := range stats.Thoughts {
		if strings.TrimSpace(th.Content) == "" {
			continue
		}
		thoughts = append(thoughts, th.Content)
	}

	stress := StressPercent(stats.TokenUsage, stats.MaxTokens)

	return MemberDisplay{
		HealthPercent: int(math.Round(stats.Health * 100)),
		Contributions: stats.Contributions,
		Thoughts:      thoughts,
		StressPercent: stress,
		Band:          BandFor(stress),
	}
}
