// Package wave implements the per-member waveform animator: a fixed
// reference waveform scrolled through a circular trace buffer and rendered
// as a braille polyline. Each animator owns its buffer exclusively and is
// driven by an external frame clock, one sample per tick, independent of
// how often new telemetry arrives.
package wave

import "github.com/charmbracelet/lipgloss"

// Experience levels are bounded to this range before cadence mapping.
const (
	MinExperience = 1
	MaxExperience = 20
)

// Base cadence range: higher experience maps inversely onto a calmer
// (lower) cadence.
const (
	minBaseCadence = 1.0
	maxBaseCadence = 3.0
)

// DefaultColor is the trace color before the first stress update.
var DefaultColor = lipgloss.Color("#39FF14")

// Animator owns one continuously scrolling trace. Dimensions are in
// terminal cells; each cell is 2 braille dot columns wide and 4 dot rows
// tall, and the trace buffer holds one sample per dot column.
type Animator struct {
	buf    *TraceBuffer
	width  int // cells
	height int // cells

	templateIdx int
	running     bool

	baseCadence float64
	cadence     float64
	color       lipgloss.Color
}

// NewAnimator creates an animator bound to a surface of width×height cells.
// experience is bounded to [MinExperience, MaxExperience] and linearly
// interpolated onto the base cadence range, inverted: experience 20 gives
// the calmest cadence 1, experience 1 the most nervous cadence 3.
func NewAnimator(width, height, experience int) *Animator {
	if experience < MinExperience {
		experience = MinExperience
	}
	if experience > MaxExperience {
		experience = MaxExperience
	}

	span := float64(MaxExperience - MinExperience)
	base := maxBaseCadence - float64(experience-MinExperience)*(maxBaseCadence-minBaseCadence)/span

	a := &Animator{
		width:       width,
		height:      height,
		baseCadence: base,
		color:       DefaultColor,
	}
	a.buf = NewTraceBuffer(a.sampleCapacity())
	a.SetStress(0)
	return a
}

// sampleCapacity is the number of dot columns across the surface.
func (a *Animator) sampleCapacity() int {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return a.width * 2
}

// Start begins advancing the trace. Idempotent.
func (a *Animator) Start() {
	a.running = true
}

// Stop halts the trace. Idempotent and safe to call mid-frame: the running
// flag is consulted at the top of every Step.
func (a *Animator) Stop() {
	a.running = false
}

// Running reports whether the animator advances on frame ticks.
func (a *Animator) Running() bool {
	return a.running
}

// SetStress recomputes the effective cadence from a stress percentage,
// clamped to [0, 100]: base × (0.5 + stress/100 × 1.5). Cadence is carried
// as a signal for urgency styling; it does not change the one-sample-per-
// tick advance.
func (a *Animator) SetStress(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	a.cadence = a.baseCadence * (0.5 + float64(percent)/100*1.5)
}

// Cadence returns the current effective cadence.
func (a *Animator) Cadence() float64 {
	return a.cadence
}

// BaseCadence returns the experience-derived base cadence.
func (a *Animator) BaseCadence() float64 {
	return a.baseCadence
}

// SetColor changes the stroke color for the next and subsequent renders.
func (a *Animator) SetColor(c lipgloss.Color) {
	a.color = c
}

// Color returns the current stroke color.
func (a *Animator) Color() lipgloss.Color {
	return a.color
}

// Step advances the trace by exactly one sample: the next template value is
// written at the cursor and both indices advance, the template one with
// wraparound. No-op when stopped or when the surface is degenerate.
func (a *Animator) Step() {
	if !a.running || a.buf.Capacity() == 0 {
		return
	}

	a.buf.Write(referenceWaveform[a.templateIdx])
	a.templateIdx = (a.templateIdx + 1) % len(referenceWaveform)
}

// Resize rebinds the animator to new surface dimensions, recomputing the
// buffer capacity and clearing all samples. The template index is kept, so
// the waveform shape resumes where it left off.
func (a *Animator) Resize(width, height int) {
	a.width = width
	a.height = height
	a.buf.Resize(a.sampleCapacity())
}

// Render draws the current trace as styled terminal lines. A degenerate
// surface renders nothing rather than faulting.
func (a *Animator) Render() string {
	return renderTrace(a.buf, a.width, a.height, a.color)
}
