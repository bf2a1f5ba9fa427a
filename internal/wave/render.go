package wave

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille trace rendering.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '⠀'

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// baselineColor paints the sparse grid dots under cells the trace has not
// reached yet.
var baselineColor = lipgloss.Color("#3A3A4A")

// setDot turns on the braille dot at dot-column x, dot-row y (0 = top).
func setDot(grid [][]rune, x, y, width int) {
	charCol := x / 2
	row := y / 4
	if charCol < 0 || charCol >= width || row < 0 || row >= len(grid) {
		return
	}
	grid[row][charCol] |= rune(1 << brailleDots[y%4][x%2])
}

// renderTrace draws a trace buffer onto a width×height cell surface as a
// connected braille polyline. Sample values are display fractions in
// [0, 1] where 0 is the top row of dots. Consecutive filled slots are
// joined with vertical dot runs so steep segments read as a stroke rather
// than scattered points; the join is skipped across the cursor seam so the
// newest and oldest samples are not bridged.
func renderTrace(buf *TraceBuffer, width, height int, color lipgloss.Color) string {
	if buf == nil || width <= 0 || height <= 0 || buf.Capacity() == 0 {
		return ""
	}

	totalDots := height * 4
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	prevY := -1
	for i := 0; i < buf.Capacity(); i++ {
		v, ok := buf.Sample(i)
		if !ok {
			prevY = -1
			continue
		}

		y := int(math.Round(v * float64(totalDots-1)))
		if y < 0 {
			y = 0
		}
		if y >= totalDots {
			y = totalDots - 1
		}
		setDot(grid, i, y, width)

		// Vertical run joining this sample to the previous one.
		if prevY >= 0 && prevY != y {
			step := 1
			if prevY > y {
				step = -1
			}
			for dy := prevY + step; dy != y; dy += step {
				setDot(grid, i, dy, width)
			}
		}
		prevY = y

		if i == buf.Seam() {
			prevY = -1
		}
	}

	trace := lipgloss.NewStyle().Foreground(color)
	base := lipgloss.NewStyle().Foreground(baselineColor)
	midRow := height / 2

	var lines []string
	for rowIdx, row := range grid {
		var b strings.Builder
		for colIdx, char := range row {
			if char == brailleBase {
				// Faint center-line dot where nothing has been drawn,
				// so an idle card still reads as a flatlined monitor.
				if rowIdx == midRow && colIdx%2 == 0 {
					b.WriteString(base.Render("⠒"))
				} else {
					b.WriteString(" ")
				}
				continue
			}
			b.WriteString(trace.Render(string(char)))
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}
