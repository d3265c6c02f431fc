package game

import (
	"math"
	"strconv"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatPercent formats a percentage with six decimals, the precision the
// metric cards display.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64) + "%"
}

// formatExp formats a value in exponential notation with two decimals, as
// the tunnel tooltip shows depth and lambda.
func formatExp(v float64) string {
	return strconv.FormatFloat(v, 'e', 2, 64)
}
