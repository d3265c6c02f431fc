// Package game implements the ebiten rendering layer: two switchable views
// animating charts and panels from the decoder and tunnel sequences.
package game

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/quantum-visualization/internal/config"
	"github.com/iburimskiy/quantum-visualization/internal/decoder"
	"github.com/iburimskiy/quantum-visualization/internal/tunnel"
)

type view int

const (
	viewDecoder view = iota
	viewTunnel
)

type Game struct {
	cfg config.Config

	view view

	// sequences
	result     decoder.Result
	tunnelData []tunnel.Point
	lastDecode time.Time
	rng        *rand.Rand

	// viz
	time       float64
	colorPhase float64

	// audio
	toneStreamer *tone
	toneOn       bool
	audioReady   bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	paused  bool
	lastErr error
}

func New(cfg config.Config) *Game {
	g := &Game{
		cfg:     cfg,
		prevKey: map[ebiten.Key]bool{},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.regenerate()
	g.regenerateTunnel()
	return g
}

// regenerate replaces the whole decoder sequence. The run is synchronous and
// short, so the renderer never sees a partial sequence.
func (g *Game) regenerate() {
	g.result = decoder.Decode(g.cfg.MaxRange)
	g.lastDecode = time.Now()
}

func (g *Game) regenerateTunnel() {
	g.tunnelData = tunnel.Generate(g.cfg.TunnelSteps, g.rng)
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyTab) {
		if g.view == viewDecoder {
			g.view = viewTunnel
		} else {
			g.view = viewDecoder
		}
	}
	if justPressed(ebiten.Key1) {
		g.view = viewDecoder
	}
	if justPressed(ebiten.Key2) {
		g.view = viewTunnel
	}
	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyR) {
		g.regenerate()
		g.regenerateTunnel()
	}
	if justPressed(ebiten.KeyS) {
		if err := g.toggleTone(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyE) {
		if err := g.exportCSV(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Update visualization
	g.time += 1.0 / 60.0 // Assuming 60 FPS
	g.colorPhase += config.ColorShiftSpeed

	// Periodic full regeneration of the decoder sequence.
	if !g.paused && time.Since(g.lastDecode) >= g.cfg.RefreshInterval {
		g.regenerate()
	}

	g.updateTone()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	switch g.view {
	case viewDecoder:
		g.drawDecoderView(screen)
	case viewTunnel:
		g.drawTunnelView(screen)
	}

	status := "Tab: switch view | Space: pause refresh | R: regenerate | S: tone | E: export CSV | Esc/Q: quit"
	if g.paused {
		status = "Paused | " + status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, config.WindowHeight-16)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	g.syncToneCtrl()
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Dynamic gradient background drawn in 4px bands.
	for y := 0; y < config.WindowHeight; y += 4 {
		ratio := float64(y) / float64(config.WindowHeight)
		r := uint8(10 + 20*math.Sin(g.time*0.5+ratio*math.Pi))
		g_val := uint8(8 + 12*math.Cos(g.time*0.3+ratio*math.Pi))
		b := uint8(25 + 25*math.Sin(g.time*0.7+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, 4, color.RGBA{R: r, G: g_val, B: b, A: 255}, false)
	}
}

func (g *Game) drawDecoderView(screen *ebiten.Image) {
	header := fmt.Sprintf("Lambda-Stabilized Prime Decoder | λ Stability: %s", formatPercent(g.result.Metrics.LambdaStability))
	ebitenutil.DebugPrintAt(screen, header, 12, 12)

	g.drawMetricCards(screen)

	chartW := (config.WindowWidth - 2*config.PanelMargin - config.PanelGap) / 2

	g.drawChart(screen, chart{
		title: "Quantum Field",
		x:     config.PanelMargin,
		y:     config.ChartY,
		w:     float64(chartW),
		h:     config.ChartH,
		yMin:  0,
		yMax:  1,
		series: []series{
			{name: "Initial Field", hue: 262, values: pointValues(g.result.Points, func(p decoder.Point) float64 { return p.InitialField })},
			{name: "Stabilized Field", hue: 330, values: pointValues(g.result.Points, func(p decoder.Point) float64 { return p.FinalField })},
			{name: "λ Value", hue: 217, values: pointValues(g.result.Points, func(p decoder.Point) float64 { return p.Lambda })},
			{name: "Alignment", hue: 160, values: pointValues(g.result.Points, func(p decoder.Point) float64 { return p.Alignment })},
		},
	})

	g.drawChart(screen, chart{
		title: "Lambda Stabilization",
		x:     config.PanelMargin + float64(chartW) + config.PanelGap,
		y:     config.ChartY,
		w:     float64(chartW),
		h:     config.ChartH,
		yMin:  0,
		yMax:  1,
		series: []series{
			{name: "λ Stability", hue: 262, values: pointValues(g.result.Points, func(p decoder.Point) float64 { return p.Stability })},
			{name: "Phase Coherence", hue: 330, values: pointValues(g.result.Points, func(p decoder.Point) float64 { return p.PhaseCoherence })},
			{name: "Zeta Alignment", hue: 217, values: pointValues(g.result.Points, func(p decoder.Point) float64 { return p.ZetaAlignment })},
			{name: "Tunnel Effect", hue: 160, values: pointValues(g.result.Points, func(p decoder.Point) float64 { return p.TunnelEffect })},
		},
	})

	g.drawPrimesPanel(screen, config.PanelMargin, config.BottomPanelY, float64(chartW), config.BottomPanelH)
	g.drawStabilizationPanel(screen, config.PanelMargin+float64(chartW)+config.PanelGap, config.BottomPanelY, float64(chartW), config.BottomPanelH)
}

func (g *Game) drawMetricCards(screen *ebiten.Image) {
	m := g.result.Metrics
	cards := []struct {
		label string
		value string
	}{
		{"Decoding Rate", formatPercent(m.DecodingRate)},
		{"Field Accuracy", formatPercent(m.Accuracy)},
		{"Resonance", formatPercent(m.Resonance)},
		{"Stability", formatPercent(m.StabilityIndex)},
	}

	cardW := (config.WindowWidth - 2*config.PanelMargin - 3*config.PanelGap) / 4
	for i, card := range cards {
		x := config.PanelMargin + i*(cardW+config.PanelGap)
		g.drawPanel(screen, float64(x), config.MetricCardY, float64(cardW), config.MetricCardH)
		ebitenutil.DebugPrintAt(screen, card.label, x+10, config.MetricCardY+10)
		ebitenutil.DebugPrintAt(screen, card.value, x+10, config.MetricCardY+34)
	}
}

func (g *Game) drawPrimesPanel(screen *ebiten.Image, x, y, w, h float64) {
	g.drawPanel(screen, x, y, w, h)
	title := fmt.Sprintf("Decoded Primes (%d)", len(g.result.Primes))
	ebitenutil.DebugPrintAt(screen, title, int(x)+10, int(y)+8)

	// Wrap the prime list into rows of fixed character width.
	maxChars := int(w-20) / 8
	maxRows := int(h-40) / 16
	rows := wrapInts(g.result.Primes, maxChars, maxRows)
	for i, row := range rows {
		ebitenutil.DebugPrintAt(screen, row, int(x)+10, int(y)+32+i*16)
	}
}

func (g *Game) drawStabilizationPanel(screen *ebiten.Image, x, y, w, h float64) {
	g.drawPanel(screen, x, y, w, h)
	ebitenutil.DebugPrintAt(screen, "λ Stabilization Metrics", int(x)+10, int(y)+8)

	if len(g.result.Points) == 0 {
		return
	}
	last := g.result.Points[len(g.result.Points)-1]

	lines := []string{
		fmt.Sprintf("Base λ:           %.11f", decoder.BaseLambda),
		fmt.Sprintf("Phase Coherence:  %s", formatPercent(last.PhaseCoherence*100)),
		fmt.Sprintf("Zeta Alignment:   %s", formatPercent(last.ZetaAlignment*100)),
		fmt.Sprintf("Tunnel Strength:  %s", formatPercent(last.TunnelEffect*100)),
		fmt.Sprintf("Primes Found:     %d", g.result.Metrics.TotalPrimesFound),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(x)+10, int(y)+32+i*20)
	}
}

func (g *Game) drawTunnelView(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Quantum Tunnel Depth", 12, 12)
	ebitenutil.DebugPrintAt(screen, "Warning: extreme computational depths and quantum tunneling ahead!", 12, 40)

	c := chart{
		title:     "Descent Steps",
		x:         config.PanelMargin,
		y:         config.TunnelChartY,
		w:         config.WindowWidth - 2*config.PanelMargin,
		h:         config.TunnelChartH,
		autoScale: true,
		series: []series{
			{name: "Tunnel Depth", hue: 0, values: tunnelValues(g.tunnelData, func(p tunnel.Point) float64 { return p.Depth })},
			{name: "Quantum Fluctuations", hue: 120, values: tunnelValues(g.tunnelData, func(p tunnel.Point) float64 { return p.Fluctuation })},
			{name: "Tunneling Effect", hue: 240, values: tunnelValues(g.tunnelData, func(p tunnel.Point) float64 { return p.TunnelingEffect })},
		},
	}
	g.drawChart(screen, c)
	g.drawTunnelTooltip(screen, c)
}

// drawTunnelTooltip shows the per-step values at the hovered chart column.
func (g *Game) drawTunnelTooltip(screen *ebiten.Image, c chart) {
	if len(g.tunnelData) == 0 {
		return
	}
	mouseX, mouseY := ebiten.CursorPosition()
	plot := c.plotArea()
	if float64(mouseX) < plot.x || float64(mouseX) > plot.x+plot.w ||
		float64(mouseY) < plot.y || float64(mouseY) > plot.y+plot.h {
		return
	}

	idx := int((float64(mouseX) - plot.x) / plot.w * float64(len(g.tunnelData)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(g.tunnelData) {
		idx = len(g.tunnelData) - 1
	}
	p := g.tunnelData[idx]

	lines := []string{
		fmt.Sprintf("Step: %d", p.Step),
		fmt.Sprintf("Depth: %s", formatExp(p.Depth)),
		fmt.Sprintf("Lambda: %s", formatExp(p.Lambda)),
		fmt.Sprintf("Tunneling Effect: %.2f", p.TunnelingEffect),
	}
	if p.LimitExceeded {
		lines = append(lines, "APPROACHING FLOAT64 LIMIT!")
	}

	longest := 0
	for _, line := range lines {
		if len(line) > longest {
			longest = len(line)
		}
	}
	tooltipW := longest*8 + 10
	tooltipH := len(lines)*16 + 10
	tooltipX := mouseX - tooltipW/2
	tooltipY := mouseY - tooltipH - 10
	if tooltipX < 0 {
		tooltipX = 0
	}
	if tooltipX+tooltipW > config.WindowWidth {
		tooltipX = config.WindowWidth - tooltipW
	}
	if tooltipY < 0 {
		tooltipY = mouseY + 10
	}

	vector.DrawFilledRect(screen, float32(tooltipX), float32(tooltipY), float32(tooltipW), float32(tooltipH), color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
	vector.StrokeRect(screen, float32(tooltipX), float32(tooltipY), float32(tooltipW), float32(tooltipH), 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, tooltipX+5, tooltipY+5+i*16)
	}
}

// drawPanel draws the shared translucent panel background and border.
func (g *Game) drawPanel(screen *ebiten.Image, x, y, w, h float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 15, G: 18, B: 30, A: 210}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, color.RGBA{R: 100, G: 80, B: 180, A: 255}, false)
}

// wrapInts renders values as space-separated rows no wider than maxChars,
// up to maxRows rows; an overflowing tail is elided.
func wrapInts(values []int, maxChars, maxRows int) []string {
	if maxChars < 8 || maxRows < 1 {
		return nil
	}
	var rows []string
	var b strings.Builder
	for _, v := range values {
		s := fmt.Sprintf("%d", v)
		if b.Len() > 0 && b.Len()+1+len(s) > maxChars {
			rows = append(rows, b.String())
			b.Reset()
			if len(rows) == maxRows {
				rows[maxRows-1] += " ..."
				return rows
			}
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	if b.Len() > 0 {
		rows = append(rows, b.String())
	}
	return rows
}

func pointValues(points []decoder.Point, f func(decoder.Point) float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = f(p)
	}
	return out
}

func tunnelValues(points []tunnel.Point, f func(tunnel.Point) float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = f(p)
	}
	return out
}
