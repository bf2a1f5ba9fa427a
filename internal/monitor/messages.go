package monitor

import (
	"time"

	"boardwatch/internal/api"
)

// frameTickMsg drives the waveform animation: every frame each running
// animator advances exactly one sample.
type frameTickMsg time.Time

// pollTickMsg fires when the next status poll is due. It carries the
// session generation it was scheduled under so ticks armed before an
// endSession are dropped instead of fetching.
type pollTickMsg struct {
	gen int
}

// startResultMsg carries the outcome of a start-meeting request.
type startResultMsg struct {
	gen int
	err error
}

// statusMsg carries one status snapshot (or the transport failure that
// prevented it). Results tagged with a stale generation are discarded
// without being applied or logged.
type statusMsg struct {
	gen    int
	status *api.MeetingStatus
	err    error
}
