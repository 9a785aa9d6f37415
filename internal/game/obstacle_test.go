package game

import (
	"math"
	"testing"
)

func TestForceMagnitudeDecreasesWithDistance(t *testing.T) {
	cfg := DefaultConfig()
	for _, k := range AtomKinds {
		o := NewObstacle(cfg, k, 0, 0, 0)
		prev := math.Inf(1)
		for dx := 1.0; dx < cfg.AttractionRange; dx += 7 {
			f := o.ForceMagnitude(dx)
			if f <= 0 {
				t.Fatalf("%s: force at dx=%v is %v, want > 0", k, dx, f)
			}
			if f > prev {
				t.Fatalf("%s: force rose from %v to %v at dx=%v", k, prev, f, dx)
			}
			prev = f
		}
		for _, dx := range []float64{-100, -1, 0, cfg.AttractionRange, cfg.AttractionRange + 1} {
			if f := o.ForceMagnitude(dx); f != 0 {
				t.Fatalf("%s: force at dx=%v is %v, want 0", k, dx, f)
			}
		}
	}
}

func TestWavesExertNoForce(t *testing.T) {
	cfg := DefaultConfig()
	e := NewElectron(cfg, 100, 300)
	for _, k := range []ObstacleKind{KindElectricWave, KindMagneticWave} {
		o := NewObstacle(cfg, k, 200, 100, 0)
		if f := o.ForceMagnitude(50); f != 0 {
			t.Fatalf("%s: ForceMagnitude = %v, want 0", k, f)
		}
		if dy := o.Attraction(e, 0.1); dy != 0 {
			t.Fatalf("%s: Attraction = %v, want 0", k, dy)
		}
	}
}

func TestUraniumPullsElectronUp(t *testing.T) {
	cfg := DefaultConfig()
	e := NewElectron(cfg, 100, 328) // centre (132, 360)
	// Centre 300 px ahead and 100 px above.
	o := NewObstacle(cfg, KindUranium, 400, 228, 0)

	dy := o.Attraction(e, 0.05)
	want := -200 * (1 - 300.0/350.0) * 0.05
	if !approx(dy, want, 1e-9) {
		t.Fatalf("got dy=%v, want %v", dy, want)
	}
	if !approx(dy, -1.43, 0.005) {
		t.Fatalf("got dy=%v, want about -1.43", dy)
	}

	o.ApplyAttraction(e, 0.05)
	if !approx(e.Y, 328+want, 1e-9) {
		t.Fatalf("after pull: got y=%v, want %v", e.Y, 328+want)
	}
}

func TestAttractionNeverOvershoots(t *testing.T) {
	cfg := DefaultConfig()
	e := NewElectron(cfg, 100, 328)
	// Almost level with the electron and very close: force*dt exceeds |dy|.
	o := NewObstacle(cfg, KindUranium, 110, 329, 0)
	dy := o.Attraction(e, 1.0)
	if dy != 1 {
		t.Fatalf("got dy=%v, want 1 (the remaining gap)", dy)
	}

	level := NewObstacle(cfg, KindUranium, 110, 328, 0)
	if dy := level.Attraction(e, 1.0); dy != 0 {
		t.Fatalf("level atom: got dy=%v, want 0", dy)
	}
}

func TestAtomBehindElectronDoesNotPull(t *testing.T) {
	cfg := DefaultConfig()
	e := NewElectron(cfg, 300, 328)
	o := NewObstacle(cfg, KindPlutonium, 200, 100, 0)
	if dy := o.Attraction(e, 0.1); dy != 0 {
		t.Fatalf("got dy=%v, want 0", dy)
	}
}

func TestAdvanceMovesLeft(t *testing.T) {
	cfg := DefaultConfig()
	o := NewObstacle(cfg, KindOxygen, 1000, 200, 0)
	o.Advance(0.5, 320, 0.5)
	if o.X != 840 {
		t.Fatalf("x: got %v, want 840", o.X)
	}
	if o.Y != 200 {
		t.Fatalf("atoms do not bob: got y=%v, want 200", o.Y)
	}
}

func TestElectricWaveBobsAroundBaseY(t *testing.T) {
	cfg := DefaultConfig()
	o := NewObstacle(cfg, KindElectricWave, 1000, 300, 2)
	o.OscAmp = cfg.WaveAmplitude
	o.OscFreq = 2

	now := 2.0
	for range 200 {
		now += 1.0 / 60
		o.Advance(1.0/60, 300, now)
		want := 300 + cfg.WaveAmplitude*math.Sin((now-2)*2)
		if !approx(o.Y, want, 1e-9) {
			t.Fatalf("t=%v: got y=%v, want %v", now, o.Y, want)
		}
	}
}

func TestElectricWaveClampedToScreen(t *testing.T) {
	cfg := DefaultConfig()
	o := NewObstacle(cfg, KindElectricWave, 1000, 5, 0)
	o.OscAmp = cfg.WaveAmplitude
	o.OscFreq = 1
	maxY := cfg.ScreenHeight - cfg.WaveHeight

	for i := range 400 {
		now := float64(i) / 60
		o.Advance(1.0/60, 300, now)
		if o.Y < 0 || o.Y > maxY {
			t.Fatalf("t=%v: y=%v off screen", now, o.Y)
		}
	}
}

func TestMagneticWaveDoesNotBob(t *testing.T) {
	cfg := DefaultConfig()
	o := NewObstacle(cfg, KindMagneticWave, 1000, 300, 0)
	o.OscAmp = 50
	o.OscFreq = 3
	o.Advance(0.3, 300, 0.3)
	if o.Y != 300 {
		t.Fatalf("got y=%v, want 300", o.Y)
	}
}

func TestIsOffScreen(t *testing.T) {
	cfg := DefaultConfig()
	o := NewObstacle(cfg, KindGold, 0, 100, 0)
	if o.IsOffScreen() {
		t.Fatalf("obstacle at x=0 reported off screen")
	}
	o.X = -cfg.AtomWidth
	if o.IsOffScreen() {
		t.Fatalf("right edge exactly at 0 reported off screen")
	}
	o.X -= 0.5
	if !o.IsOffScreen() {
		t.Fatalf("right edge past 0 not reported off screen")
	}
}

func TestFootprints(t *testing.T) {
	cfg := DefaultConfig()
	for _, k := range AllKinds {
		o := NewObstacle(cfg, k, 0, 0, 0)
		wantW, wantH := float64(AtomSize), float64(AtomSize)
		if !k.IsAtom() {
			wantW, wantH = WaveWidth, WaveHeight
		}
		if o.W != wantW || o.H != wantH {
			t.Fatalf("%s: got %vx%v, want %vx%v", k, o.W, o.H, wantW, wantH)
		}
	}
}

func TestKindNames(t *testing.T) {
	tests := map[ObstacleKind]string{
		KindHydrogen:     "hydrogen",
		KindGold:         "gold",
		KindElectricWave: "electric_wave",
		KindMagneticWave: "magnetic_wave",
		ObstacleKind(99): "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Fatalf("kind %d: got %q, want %q", k, got, want)
		}
	}
}
