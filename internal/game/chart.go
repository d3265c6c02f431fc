package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/quantum-visualization/internal/config"
)

type series struct {
	name   string
	hue    float64
	values []float64
}

type chart struct {
	title      string
	x, y, w, h float64
	yMin, yMax float64
	autoScale  bool
	series     []series
}

type rect struct {
	x, y, w, h float64
}

// plotArea is the chart rectangle minus title row, legend row, and the
// y-axis label gutter.
func (c chart) plotArea() rect {
	return rect{
		x: c.x + 48,
		y: c.y + 44,
		w: c.w - 58,
		h: c.h - 62,
	}
}

func (g *Game) drawChart(screen *ebiten.Image, c chart) {
	g.drawPanel(screen, c.x, c.y, c.w, c.h)
	ebitenutil.DebugPrintAt(screen, c.title, int(c.x)+10, int(c.y)+6)

	yMin, yMax := c.yMin, c.yMax
	if c.autoScale {
		yMin, yMax = seriesRange(c.series)
	}

	plot := c.plotArea()

	// Horizontal grid lines with value labels.
	for i := 0; i <= config.ChartGridLines; i++ {
		frac := float64(i) / float64(config.ChartGridLines)
		gy := plot.y + plot.h - frac*plot.h
		vector.StrokeLine(screen, float32(plot.x), float32(gy), float32(plot.x+plot.w), float32(gy), 1, color.RGBA{R: 90, G: 70, B: 150, A: 60}, false)
		label := formatAxis(yMin + frac*(yMax-yMin))
		ebitenutil.DebugPrintAt(screen, label, int(c.x)+6, int(gy)-6)
	}

	// One sample per pixel column is enough at this width.
	for _, s := range c.series {
		if len(s.values) < 2 {
			continue
		}
		cols := int(plot.w)
		if cols > len(s.values) {
			cols = len(s.values)
		}
		r, gr, b := hsvToRgb(s.hue, 0.8, 0.95)
		lineColor := color.RGBA{R: r, G: gr, B: b, A: 230}

		prevX, prevY := 0.0, 0.0
		for i := 0; i < cols; i++ {
			idx := i * (len(s.values) - 1) / (cols - 1)
			px := plot.x + float64(i)/float64(cols-1)*plot.w
			py := scaleY(s.values[idx], yMin, yMax, plot.y, plot.h)
			if i > 0 {
				vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(px), float32(py), 2, lineColor, false)
			}
			prevX, prevY = px, py
		}
	}

	// Legend row under the title.
	lx := int(plot.x)
	for _, s := range c.series {
		r, gr, b := hsvToRgb(s.hue, 0.8, 0.95)
		vector.DrawFilledCircle(screen, float32(lx)+4, float32(c.y)+28, 4, color.RGBA{R: r, G: gr, B: b, A: 255}, false)
		ebitenutil.DebugPrintAt(screen, s.name, lx+12, int(c.y)+22)
		lx += 12 + len(s.name)*8 + 16
	}
}

// seriesRange returns the min and max across all series with 5% padding,
// widened to a unit span when the data is flat.
func seriesRange(all []series) (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, s := range all {
		for _, v := range s.values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if min > max {
		return 0, 1
	}
	if min == max {
		return min - 0.5, max + 0.5
	}
	pad := (max - min) * 0.05
	return min - pad, max + pad
}

// scaleY maps v in [min,max] to a pixel y inside a plot area with the given
// top edge and height. Out-of-range values clamp to the plot edges.
func scaleY(v, min, max, top, h float64) float64 {
	if max <= min {
		return top + h
	}
	r := clamp01((v - min) / (max - min))
	return top + h - r*h
}

func formatAxis(v float64) string {
	if math.Abs(v) >= 10 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
