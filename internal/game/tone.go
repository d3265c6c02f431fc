package game

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const toneSampleRate = beep.SampleRate(44100)

// tone is a beep.Streamer producing a sine wave whose frequency tracks the
// latest alignment value, so the decoder can be heard as well as seen. The
// frequency is written from the game loop and read from the speaker
// goroutine, hence the mutex.
type tone struct {
	mu         sync.Mutex
	freq       float64
	phase      float64
	sampleRate beep.SampleRate
	ctrl       *beep.Ctrl
}

func newTone(sr beep.SampleRate) *tone {
	return &tone{freq: 220, sampleRate: sr}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range samples {
		v := 0.2 * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(t.sampleRate)
		if t.phase >= 1 {
			t.phase -= 1
		}
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) setFrequency(f float64) {
	t.mu.Lock()
	t.freq = f
	t.mu.Unlock()
}

func (t *tone) frequency() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.freq
}

// toneFrequency maps an alignment value in [0,1] to an audible frequency.
func toneFrequency(alignment float64) float64 {
	return 220 + 660*clamp01(alignment)
}

// toggleTone initializes the speaker on first use, then flips the tone on
// and off through the ctrl pause flag.
func (g *Game) toggleTone() error {
	if !g.audioReady {
		if err := speaker.Init(toneSampleRate, toneSampleRate.N(time.Second/20)); err != nil {
			return err
		}
		g.toneStreamer = newTone(toneSampleRate)
		g.toneStreamer.ctrl = &beep.Ctrl{Streamer: g.toneStreamer, Paused: false}
		speaker.Play(g.toneStreamer.ctrl)
		g.audioReady = true
		g.toneOn = true
		return nil
	}

	g.toneOn = !g.toneOn
	g.syncToneCtrl()
	return nil
}

// syncToneCtrl applies the pause state to the speaker: the tone is audible
// only when enabled and the refresh loop is not paused.
func (g *Game) syncToneCtrl() {
	if !g.audioReady {
		return
	}
	speaker.Lock()
	g.toneStreamer.ctrl.Paused = g.paused || !g.toneOn
	speaker.Unlock()
}

// updateTone retunes the streamer to the alignment of the last decoded point.
func (g *Game) updateTone() {
	if !g.toneOn || g.toneStreamer == nil || len(g.result.Points) == 0 {
		return
	}
	last := g.result.Points[len(g.result.Points)-1]
	g.toneStreamer.setFrequency(toneFrequency(last.Alignment))
}
