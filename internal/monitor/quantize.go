package monitor

import (
	"math"
	"strings"
)

// barGlyphs are the 8 block characters used for history bars (lowest to highest).
var barGlyphs = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// MaxLevel is the highest glyph level.
const MaxLevel = 7

// minLocalMax keeps quantization away from division by zero or near-zero.
const minLocalMax = 1.0

// LocalMax returns the largest finite value in the window, floored at 1.0.
// NaN and infinite values are skipped.
func LocalMax(history []float64) float64 {
	maxVal := 0.0
	for _, v := range history {
		if math.IsInf(v, 0) {
			continue
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal < minLocalMax {
		return minLocalMax
	}
	return maxVal
}

// Level maps a value to a glyph level in [0, MaxLevel] relative to localMax.
func Level(value, localMax float64) int {
	if math.IsNaN(value) || localMax <= 0 || math.IsNaN(localMax) {
		return 0
	}
	if value >= localMax {
		return MaxLevel
	}
	scaled := math.Round(value / localMax * MaxLevel)
	switch {
	case math.IsNaN(scaled), scaled <= 0:
		return 0
	case scaled >= MaxLevel:
		return MaxLevel
	}
	return int(scaled)
}

// Glyph returns the block character for a level, clamping out-of-range levels.
func Glyph(level int) rune {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return barGlyphs[level]
}

// Bar renders one glyph per value, scaled against the window's local maximum.
// The maximum is recomputed on every call, so the display auto-scales as the
// window moves.
func Bar(history []float64) string {
	if len(history) == 0 {
		return ""
	}

	localMax := LocalMax(history)

	var sb strings.Builder
	sb.Grow(len(history) * 3)
	for _, v := range history {
		sb.WriteRune(Glyph(Level(v, localMax)))
	}
	return sb.String()
}
