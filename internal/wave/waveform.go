package wave

// referenceWaveform is the fixed periodic template every animator cycles
// through: a heartbeat-style pulse expressed as vertical display fractions
// (0 = top of surface, 1 = bottom, 0.5 = baseline). The template index and
// the buffer cursor advance independently, so the shape of the waveform is
// decoupled from the scroll position — a resize resets the history but
// never desynchronizes the pattern.
var referenceWaveform = []float64{
	0.50, 0.50, 0.50, 0.50, 0.50, 0.50,
	0.47, 0.44, 0.47, 0.50, // P wave
	0.50, 0.50,
	0.55, 0.20, 0.85, 0.50, // QRS complex
	0.50, 0.50, 0.50,
	0.46, 0.42, 0.40, 0.42, 0.46, 0.50, // T wave
	0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50, 0.50,
}

// ReferenceWaveformLen returns the template period, exported for tests.
func ReferenceWaveformLen() int {
	return len(referenceWaveform)
}
