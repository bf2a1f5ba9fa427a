package board

import "math"

// DefaultTokenCapacity is used when a snapshot omits a member's token budget
// or reports a non-positive one. Matches the backend context manager's
// default window.
const DefaultTokenCapacity = 4000

// Stress band thresholds; boundary values belong to the lower band.
const (
	lowBandMax    = 50
	mediumBandMax = 80
)

// StressBand classifies a stress percentage into a coarse severity level.
type StressBand int

const (
	StressLow StressBand = iota
	StressMedium
	StressHigh
)

// String returns the band label used in card rendering and logs.
func (b StressBand) String() string {
	switch b {
	case StressLow:
		return "low"
	case StressMedium:
		return "medium"
	case StressHigh:
		return "high"
	default:
		return "unknown"
	}
}

// StressPercent derives the bounded stress metric from a token usage ratio:
// round(min(1, usage/capacity) * 100). A non-positive capacity substitutes
// DefaultTokenCapacity rather than dividing by zero.
func StressPercent(usage, capacity float64) int {
	if capacity <= 0 {
		capacity = DefaultTokenCapacity
	}

	ratio := usage / capacity
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	return int(math.Round(ratio * 100))
}

// BandFor maps a stress percentage onto its band: ≤50 low, ≤80 medium,
// above that high.
func BandFor(percent int) StressBand {
	switch {
	case percent <= lowBandMax:
		return StressLow
	case percent <= mediumBandMax:
		return StressMedium
	default:
		return StressHigh
	}
}
