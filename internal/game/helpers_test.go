package game

import (
	"math"
	"testing"
)

// scriptedRandom replays fixed draws. When a script runs out it falls back to
// 0.5 for floats and 0 for ints.
type scriptedRandom struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("scripted Intn(%d) = %d out of range", n, v)
	}
	return v
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

type drawnText struct {
	text string
	x, y int
	col  RGB
}

// fakePlatform records draw calls and serves scripted input and time.
type fakePlatform struct {
	now    float64
	input  InputState
	frames int

	sprites []Sprite
	dots    int
	texts   []drawnText
	closed  bool
}

func (f *fakePlatform) Poll() InputState { return f.input }
func (f *fakePlatform) Now() float64     { return f.now }

func (f *fakePlatform) BeginFrame() {
	f.sprites = f.sprites[:0]
	f.texts = f.texts[:0]
	f.dots = 0
}

func (f *fakePlatform) DrawSprite(s Sprite, r RectF) { f.sprites = append(f.sprites, s) }

func (f *fakePlatform) DrawDot(x, y, size float64, col RGB, alpha float64) { f.dots++ }

func (f *fakePlatform) DrawText(text string, x, y int, scale float32, col RGB) {
	f.texts = append(f.texts, drawnText{text: text, x: x, y: y, col: col})
}

func (f *fakePlatform) TextWidth(text string, scale float32) int { return TextWidth(text, scale) }
func (f *fakePlatform) EndFrame()                                { f.frames++ }
func (f *fakePlatform) Close()                                   { f.closed = true }

func (f *fakePlatform) hasText(s string) bool {
	for _, t := range f.texts {
		if t.text == s {
			return true
		}
	}
	return false
}

// quietConfig is the default tuning with spawning pushed far out, so tests
// control every obstacle on screen.
func quietConfig() *Config {
	cfg := DefaultConfig()
	cfg.SpawnIntervalMin = 1000
	cfg.SpawnIntervalMax = 1000
	return cfg
}
