// Package monitor implements the Bubble Tea dashboard: the poll scheduler,
// the member card grid, the session header, and the event log. Two clocks
// drive it — a frame tick advancing every running waveform one sample, and
// a poll tick fetching the next meeting snapshot.
package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"boardwatch/internal/api"
	"boardwatch/internal/board"
	"boardwatch/internal/logger"
	"boardwatch/internal/wave"
)

// frameInterval is the waveform animation frame rate.
const frameInterval = 50 * time.Millisecond

// DefaultPollInterval is how often the meeting service is polled while a
// session is live.
const DefaultPollInterval = 2 * time.Second

// fetchTimeout bounds a single status or start request.
const fetchTimeout = 8 * time.Second

// Waveform surface height in cells (4 braille dot rows per cell).
const waveHeight = 2

// memberView pairs one board member's latest display fields with the
// animator that owns its trace.
type memberView struct {
	id       string
	name     string
	display  board.MemberDisplay
	anim     *wave.Animator
	speaking bool
}

// Model is the Bubble Tea model for the board meeting dashboard.
type Model struct {
	client    *api.Client
	log       logger.Logger
	interval  time.Duration
	overrides map[string]int // role prefix -> experience level

	reconciler board.Reconciler
	members    map[string]*memberView
	order      []string // creation order, stable across snapshots

	// Session lifecycle. gen increments on every endSession so results
	// from an abandoned session can be recognized and dropped.
	live     bool
	starting bool
	gen      int

	stage      string
	speaker    string // display rendering, empty when nobody holds the floor
	lastStatus string
	lastUpdate time.Time

	events      *EventLog
	logViewport viewport.Model
	logReady    bool

	width     int
	height    int
	quitting  bool
	autoStart bool
}

// NewModel creates a dashboard model polling through the given client.
// overrides extends the built-in role experience table; autoStart issues a
// start-meeting request as soon as the program launches.
func NewModel(client *api.Client, interval time.Duration, overrides map[string]int, autoStart bool) Model {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return Model{
		client:    client,
		log:       logger.Default(),
		interval:  interval,
		overrides: overrides,
		members:   make(map[string]*memberView),
		events:    NewEventLog(),
		autoStart: autoStart,
	}
}

// Init starts the frame clock and, when requested, the first session.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.frameTickCmd()}
	if m.autoStart {
		cmds = append(cmds, m.startCmd(m.gen))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeWaveforms()
		m.resizeLogViewport()

	case frameTickMsg:
		for _, mv := range m.members {
			mv.anim.Step()
		}
		return m, m.frameTickCmd()

	case pollTickMsg:
		if msg.gen != m.gen || !m.live {
			return m, nil
		}
		return m, m.fetchCmd(m.gen)

	case startResultMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.starting = false
		if msg.err != nil {
			m.events.Append(CategoryError, "failed to start meeting: %v", msg.err)
			m.log.Error("start meeting: %v", msg.err)
			m.refreshLogViewport()
			return m, nil
		}
		m.live = true
		m.events.Append(CategorySuccess, "meeting started")
		m.refreshLogViewport()
		// Immediate first poll; subsequent ones are armed as each
		// result is applied.
		return m, m.fetchCmd(m.gen)

	case statusMsg:
		if msg.gen != m.gen {
			// Stale result from an ended session: discard silently.
			return m, nil
		}
		cmd := m.applyStatus(msg)
		m.refreshLogViewport()
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// frameTickCmd schedules the next animation frame.
func (m Model) frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// pollTickCmd schedules the next status poll under the current generation.
func (m Model) pollTickCmd(gen int) tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return pollTickMsg{gen: gen}
	})
}

// startCmd issues the start-meeting request.
func (m Model) startCmd(gen int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		_, err := client.StartMeeting(ctx)
		return startResultMsg{gen: gen, err: err}
	}
}

// fetchCmd fetches one status snapshot.
func (m Model) fetchCmd(gen int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		status, err := client.MeetingStatus(ctx)
		return statusMsg{gen: gen, status: status, err: err}
	}
}

// applyStatus applies one freshly fetched snapshot and decides whether the
// poll loop keeps running. The returned command is the next poll tick, or
// nil when the loop halts.
func (m *Model) applyStatus(msg statusMsg) tea.Cmd {
	if !m.live {
		return nil
	}

	if msg.err != nil {
		// Transport failures don't stop a running loop.
		m.events.Append(CategoryError, "poll failed: %v", msg.err)
		m.log.Error("poll: %v", msg.err)
		return m.pollTickCmd(m.gen)
	}

	status := msg.status
	m.lastStatus = status.Status
	m.lastUpdate = time.Now()

	switch status.Status {
	case api.StatusNoMeeting:
		// Nothing to reconcile yet; keep polling.
		return m.pollTickCmd(m.gen)

	case api.StatusCompleted:
		m.haltSession()
		m.events.Append(CategorySuccess, "meeting completed")
		return nil

	case api.StatusError:
		m.haltSession()
		m.events.Append(CategoryError, "meeting failed: %s", status.Error)
		return nil
	}

	if len(status.MeetingStats) > 0 {
		m.applySnapshot(status)
	}
	return m.pollTickCmd(m.gen)
}

// applySnapshot runs one reconciliation pass: member views are created or
// updated first, then the resulting transitions are logged, so logged
// transitions always reflect the state just rendered.
func (m *Model) applySnapshot(status *api.MeetingStatus) {
	known := make(map[string]bool, len(m.members))
	for id := range m.members {
		known[id] = true
	}

	res := m.reconciler.Reconcile(known, status)

	for _, id := range res.Created {
		mv := &memberView{
			id:   id,
			name: board.DisplayName(id),
			anim: wave.NewAnimator(m.waveWidth(), waveHeight, board.ExperienceLevel(id, m.overrides)),
		}
		mv.anim.Start()
		m.members[id] = mv
		m.order = append(m.order, id)
		m.events.Append(CategoryInfo, "%s joined the board", mv.name)
	}

	for id, display := range res.Members {
		mv := m.members[id]
		mv.display = display
		mv.anim.SetStress(display.StressPercent)
		mv.anim.SetColor(BandColor(display.Band))
	}

	// Highlight is recomputed from scratch every pass so a skipped
	// snapshot can never leave a stale marker behind.
	for id, mv := range m.members {
		mv.speaking = id == res.Highlight
	}

	m.stage = status.MeetingStage
	if status.CurrentSpeaker != nil {
		m.speaker = board.DisplayName(*status.CurrentSpeaker)
	} else {
		m.speaker = ""
	}

	for _, tr := range res.Transitions {
		switch tr.Kind {
		case board.TransitionStage:
			m.events.Append(CategoryStage, "stage: %s", tr.Value)
		case board.TransitionSpeaker:
			m.events.Append(CategorySpeaker, "speaker: %s", tr.Value)
		}
	}
}

// startSession begins a new meeting unless one is already live or a start
// request is in flight.
func (m *Model) startSession() tea.Cmd {
	if m.live || m.starting {
		return nil
	}
	m.starting = true
	m.events.Append(CategoryInfo, "starting meeting...")
	m.refreshLogViewport()
	return m.startCmd(m.gen)
}

// endSession tears the session down: the generation bump invalidates any
// poll still in flight, animators are stopped and discarded, and all
// member and header state is cleared. Safe to call when idle.
func (m *Model) endSession() {
	m.gen++
	wasLive := m.live
	m.live = false
	m.starting = false

	for _, mv := range m.members {
		mv.anim.Stop()
	}
	m.members = make(map[string]*memberView)
	m.order = nil
	m.reconciler.Reset()

	m.stage = ""
	m.speaker = ""
	m.lastStatus = ""
	m.lastUpdate = time.Time{}

	if wasLive {
		m.events.Append(CategoryInfo, "meeting ended")
	}
	m.refreshLogViewport()
}

// haltSession stops polling on a terminal backend state, leaving the last
// rendered member state on screen.
func (m *Model) haltSession() {
	m.live = false
	for _, mv := range m.members {
		mv.anim.Stop()
	}
}

// Live reports whether the poll loop is armed.
func (m Model) Live() bool {
	return m.live
}

// MemberCount returns the number of member views.
func (m Model) MemberCount() int {
	return len(m.members)
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// applied snapshot.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// resizeWaveforms rebinds every animator to the card dimensions implied by
// the new terminal width.
func (m *Model) resizeWaveforms() {
	w := m.waveWidth()
	for _, mv := range m.members {
		mv.anim.Resize(w, waveHeight)
	}
}

// resizeLogViewport sizes the log pane under the card grid.
func (m *Model) resizeLogViewport() {
	h := m.logHeight()
	if !m.logReady {
		m.logViewport = viewport.New(m.width, h)
		m.logReady = true
	} else {
		m.logViewport.Width = m.width
		m.logViewport.Height = h
	}
	m.refreshLogViewport()
}

// refreshLogViewport re-renders the log into the viewport and pins it to
// the newest entry.
func (m *Model) refreshLogViewport() {
	if !m.logReady {
		return
	}
	m.logViewport.SetContent(m.renderEventLog())
	m.logViewport.GotoBottom()
}

func (m Model) logHeight() int {
	h := m.height / 4
	if h < 3 {
		h = 3
	}
	return h
}
