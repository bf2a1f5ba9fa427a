package monitor

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardwatch/internal/api"
	"boardwatch/internal/logger"
)

func speakerOf(id string) *string {
	return &id
}

func chairStats() api.MemberStats {
	return api.MemberStats{
		Health:        0.9,
		Contributions: 2,
		Thoughts:      []api.Thought{{Content: "Let's begin"}},
		TokenUsage:    100,
		MaxTokens:     1000,
	}
}

func openingSnapshot() *api.MeetingStatus {
	return &api.MeetingStatus{
		Status:         api.StatusInProgress,
		MeetingStage:   "opening",
		CurrentSpeaker: speakerOf("chair_1"),
		MeetingStats: map[string]api.MemberStats{
			"chair_1": chairStats(),
		},
	}
}

// newLiveModel returns a model with an armed session, as if a start
// request had just succeeded.
func newLiveModel(t *testing.T) Model {
	t.Helper()

	m := NewModel(nil, time.Second, nil, false)
	m.log = logger.Noop()

	next, cmd := m.Update(startResultMsg{gen: 0})
	require.NotNil(t, cmd, "successful start should poll immediately")

	m = next.(Model)
	require.True(t, m.Live())
	return m
}

func applyStatusMsg(t *testing.T, m Model, msg statusMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestUpdate_FirstSnapshot(t *testing.T) {
	m := newLiveModel(t)

	m, cmd := applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})

	require.NotNil(t, cmd, "loop should stay armed")
	require.Equal(t, 1, m.MemberCount())

	mv := m.members["chair_1"]
	require.NotNil(t, mv)
	assert.Equal(t, "Chair 1", mv.name)
	assert.Equal(t, 90, mv.display.HealthPercent)
	assert.Equal(t, 10, mv.display.StressPercent)
	assert.True(t, mv.speaking)
	assert.True(t, mv.anim.Running())

	assert.Equal(t, "opening", m.stage)
	assert.Equal(t, "Chair 1", m.speaker)
	assert.True(t, m.events.Contains("stage: opening"))
	assert.True(t, m.events.Contains("speaker: Chair 1"))
}

func TestUpdate_SpeakerMoves(t *testing.T) {
	m := newLiveModel(t)
	m, _ = applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})
	before := m.events.Len()

	second := openingSnapshot()
	second.CurrentSpeaker = speakerOf("sec_1")
	second.MeetingStats["sec_1"] = api.MemberStats{
		Health:     1.0,
		TokenUsage: 200,
		MaxTokens:  1000,
	}

	m, _ = applyStatusMsg(t, m, statusMsg{gen: 0, status: second})

	// One new member, one speaker transition, no stage transition. The
	// "joined" info entry accompanies the creation.
	assert.Equal(t, 2, m.MemberCount())
	assert.True(t, m.events.Contains("speaker: Sec 1"))
	assert.Equal(t, before+2, m.events.Len())

	assert.False(t, m.members["chair_1"].speaking, "highlight must move")
	assert.True(t, m.members["sec_1"].speaking)
	assert.Equal(t, 90, m.members["chair_1"].display.HealthPercent, "previous member keeps its stats")
}

func TestUpdate_ErrorStatusHaltsLoop(t *testing.T) {
	m := newLiveModel(t)
	m, _ = applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})

	m, cmd := applyStatusMsg(t, m, statusMsg{gen: 0, status: &api.MeetingStatus{
		Status: api.StatusError,
		Error:  "model timeout",
	}})

	assert.Nil(t, cmd, "terminal status must not arm another poll")
	assert.False(t, m.Live())
	assert.True(t, m.events.Contains("model timeout"))
	for id, mv := range m.members {
		assert.False(t, mv.anim.Running(), "animator for %s should stop", id)
	}
	assert.Equal(t, 1, m.MemberCount(), "last rendered state stays on screen")
}

func TestUpdate_CompletedStatusHaltsLoop(t *testing.T) {
	m := newLiveModel(t)
	m, _ = applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})

	m, cmd := applyStatusMsg(t, m, statusMsg{gen: 0, status: &api.MeetingStatus{
		Status: api.StatusCompleted,
	}})

	assert.Nil(t, cmd)
	assert.False(t, m.Live())
	assert.True(t, m.events.Contains("meeting completed"))
}

func TestUpdate_NoMeetingSkipsQuietly(t *testing.T) {
	m := newLiveModel(t)
	before := m.events.Len()

	m, cmd := applyStatusMsg(t, m, statusMsg{gen: 0, status: &api.MeetingStatus{
		Status: api.StatusNoMeeting,
	}})

	assert.NotNil(t, cmd, "loop keeps running")
	assert.Equal(t, 0, m.MemberCount())
	assert.Equal(t, before, m.events.Len())
}

func TestUpdate_TransportFailureKeepsPolling(t *testing.T) {
	m := newLiveModel(t)

	m, cmd := applyStatusMsg(t, m, statusMsg{gen: 0, err: errors.New("connection refused")})

	assert.NotNil(t, cmd, "transport failure must not stop the loop")
	assert.True(t, m.Live())
	assert.True(t, m.events.Contains("connection refused"))
}

func TestUpdate_StaleResultDiscarded(t *testing.T) {
	m := newLiveModel(t)
	m, _ = applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})

	m.endSession()
	entries := m.events.Len()

	// A response from the ended session arrives late.
	m, cmd := applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.MemberCount(), "stale snapshot must not be applied")
	assert.Equal(t, entries, m.events.Len(), "stale snapshot must not be logged")
}

func TestUpdate_StalePollTickDropped(t *testing.T) {
	m := newLiveModel(t)

	_, cmd := m.Update(pollTickMsg{gen: 99})
	assert.Nil(t, cmd)

	_, cmd = m.Update(pollTickMsg{gen: 0})
	assert.NotNil(t, cmd, "current-generation tick fetches")
}

func TestEndSession(t *testing.T) {
	t.Run("clears members and header", func(t *testing.T) {
		m := newLiveModel(t)
		m, _ = applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})
		anim := m.members["chair_1"].anim

		m.endSession()

		assert.False(t, m.Live())
		assert.Equal(t, 0, m.MemberCount())
		assert.Empty(t, m.stage)
		assert.Empty(t, m.speaker)
		assert.False(t, anim.Running(), "discarded animators are stopped")
		assert.True(t, m.events.Contains("meeting ended"))
	})

	t.Run("safe when idle", func(t *testing.T) {
		m := NewModel(nil, time.Second, nil, false)
		m.log = logger.Noop()

		m.endSession()

		assert.False(t, m.Live())
		assert.False(t, m.events.Contains("meeting ended"), "idle end logs nothing")
	})

	t.Run("session can restart afterwards", func(t *testing.T) {
		m := newLiveModel(t)
		m, _ = applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})
		m.endSession()
		m.events.Clear()

		next, _ := m.Update(startResultMsg{gen: m.gen})
		m = next.(Model)
		require.True(t, m.Live())

		m, _ = applyStatusMsg(t, m, statusMsg{gen: m.gen, status: openingSnapshot()})
		assert.Equal(t, 1, m.MemberCount())
		assert.True(t, m.events.Contains("stage: opening"), "transitions fire fresh after a reset")
	})
}

func TestStartSession(t *testing.T) {
	t.Run("failure leaves loop unarmed", func(t *testing.T) {
		m := NewModel(nil, time.Second, nil, false)
		m.log = logger.Noop()

		next, cmd := m.Update(startResultMsg{gen: 0, err: errors.New("service unavailable")})
		m = next.(Model)

		assert.Nil(t, cmd)
		assert.False(t, m.Live())
		assert.True(t, m.events.Contains("service unavailable"))
	})

	t.Run("no duplicate start while in flight", func(t *testing.T) {
		m := NewModel(nil, time.Second, nil, false)
		m.log = logger.Noop()
		m.starting = true

		assert.Nil(t, m.startSession())
	})

	t.Run("no start while live", func(t *testing.T) {
		m := newLiveModel(t)
		assert.Nil(t, m.startSession())
	})
}

func TestFrameTickAdvancesOnlyRunningAnimators(t *testing.T) {
	m := newLiveModel(t)
	m, _ = applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})

	next, cmd := m.Update(frameTickMsg(time.Now()))
	m = next.(Model)
	assert.NotNil(t, cmd, "frame clock reschedules itself")

	m.members["chair_1"].anim.Stop()
	next, _ = m.Update(frameTickMsg(time.Now()))
	m = next.(Model)
	assert.False(t, m.members["chair_1"].anim.Running())
}

func TestHandleKeyMsg(t *testing.T) {
	t.Run("quit", func(t *testing.T) {
		m := NewModel(nil, time.Second, nil, false)
		handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		assert.True(t, handled)
		assert.NotNil(t, cmd)
		assert.Equal(t, "", m.View(), "quitting view is empty")
	})

	t.Run("clear log", func(t *testing.T) {
		m := newLiveModel(t)
		require.NotZero(t, m.events.Len())

		handled, _ := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
		assert.True(t, handled)
		assert.Zero(t, m.events.Len())
	})

	t.Run("unknown key unhandled", func(t *testing.T) {
		m := NewModel(nil, time.Second, nil, false)
		handled, _ := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
		assert.False(t, handled)
	})
}

func TestWindowSizeResizesWaveforms(t *testing.T) {
	m := newLiveModel(t)
	m, _ = applyStatusMsg(t, m, statusMsg{gen: 0, status: openingSnapshot()})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	assert.Equal(t, 100, m.width)
	assert.True(t, m.logReady)
	// Render still works after the resize reset the trace history.
	assert.NotEmpty(t, m.View())
}
