package wave

// TraceBuffer is a fixed-capacity circular array of vertical trace samples
// backing one waveform render. The write cursor wraps modulo capacity, so
// the newest sample continuously overwrites the oldest in place; drawing
// the slots left-to-right in buffer order produces the scroll effect
// without shifting any memory.
type TraceBuffer struct {
	samples []float64
	cursor  int
	filled  int
}

// NewTraceBuffer creates a buffer with the given capacity. A non-positive
// capacity yields a degenerate buffer that accepts no samples.
func NewTraceBuffer(capacity int) *TraceBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &TraceBuffer{
		samples: make([]float64, capacity),
	}
}

// Capacity returns the number of slots.
func (b *TraceBuffer) Capacity() int {
	return len(b.samples)
}

// Filled returns how many slots hold a sample. Before the first wraparound
// this is the number of writes; afterwards it equals the capacity.
func (b *TraceBuffer) Filled() int {
	return b.filled
}

// Write stores a sample at the cursor and advances it, wrapping at
// capacity. Values are clamped to [0, 1]. A zero-capacity buffer ignores
// writes.
func (b *TraceBuffer) Write(v float64) {
	if len(b.samples) == 0 {
		return
	}

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	b.samples[b.cursor] = v
	b.cursor = (b.cursor + 1) % len(b.samples)
	if b.filled < len(b.samples) {
		b.filled++
	}
}

// Sample returns the value at slot i and whether that slot has been
// written yet.
func (b *TraceBuffer) Sample(i int) (float64, bool) {
	if i < 0 || i >= b.filled {
		return 0, false
	}
	return b.samples[i], true
}

// Seam returns the slot index holding the newest sample, which is where
// buffer order breaks: the slot after it holds the oldest sample. Returns
// -1 while the buffer is empty.
func (b *TraceBuffer) Seam() int {
	if b.filled == 0 {
		return -1
	}
	return (b.cursor - 1 + len(b.samples)) % len(b.samples)
}

// Resize replaces the buffer with an empty one of the new capacity. Resize
// discards history; the visual discontinuity is accepted.
func (b *TraceBuffer) Resize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	b.samples = make([]float64, capacity)
	b.cursor = 0
	b.filled = 0
}
