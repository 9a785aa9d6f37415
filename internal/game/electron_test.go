package game

import "testing"

func TestElectronMoveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	e := NewElectron(cfg, 100, 300)

	e.MoveUp(0.1)
	if !approx(e.Y, 265, 1e-9) {
		t.Fatalf("after MoveUp: got y=%v, want 265", e.Y)
	}
	e.MoveDown(0.1)
	if !approx(e.Y, 300, 1e-9) {
		t.Fatalf("after round trip: got y=%v, want 300", e.Y)
	}
}

func TestElectronClampedToScreen(t *testing.T) {
	cfg := DefaultConfig()
	maxY := cfg.ScreenHeight - cfg.PlayerHeight

	e := NewElectron(cfg, 100, 10)
	e.MoveUp(1)
	if e.Y != 0 {
		t.Fatalf("top clamp: got y=%v, want 0", e.Y)
	}
	e.ApplyForce(-50)
	if e.Y != 0 {
		t.Fatalf("force past top: got y=%v, want 0", e.Y)
	}

	e = NewElectron(cfg, 100, maxY-5)
	e.MoveDown(1)
	if e.Y != maxY {
		t.Fatalf("bottom clamp: got y=%v, want %v", e.Y, maxY)
	}

	e = NewElectron(cfg, 100, 5000)
	if e.Y != maxY {
		t.Fatalf("constructor clamp: got y=%v, want %v", e.Y, maxY)
	}
}

func TestElectronStaysInBoundsUnderRandomOps(t *testing.T) {
	cfg := DefaultConfig()
	maxY := cfg.ScreenHeight - cfg.PlayerHeight
	e := NewElectron(cfg, 100, cfg.StartY)
	r := NewRand(42)

	for i := range 5000 {
		dt := r.RangeF(0, 0.2)
		switch r.Intn(5) {
		case 0:
			e.MoveUp(dt)
		case 1:
			e.MoveDown(dt)
		case 2:
			e.ApplyForce(r.RangeF(-400, 400))
		case 3:
			e.ApplySlow(r.RangeF(0, 2))
		case 4:
			e.Tick(dt)
		}
		if e.Y < 0 || e.Y > maxY {
			t.Fatalf("op %d: y=%v outside [0, %v]", i, e.Y, maxY)
		}
	}
}

func TestApplySlowDoesNotStack(t *testing.T) {
	cfg := DefaultConfig()
	e := NewElectron(cfg, 100, 300)

	e.ApplySlow(2.0)
	e.ApplySlow(1.0)
	e.ApplySlow(0.5)
	if e.SlowTimer != 2.0 {
		t.Fatalf("timer: got %v, want 2.0", e.SlowTimer)
	}
	if e.SlowFactor != cfg.SlowFactor {
		t.Fatalf("factor: got %v, want %v", e.SlowFactor, cfg.SlowFactor)
	}

	e.ApplySlow(3.0)
	if e.SlowTimer != 3.0 {
		t.Fatalf("longer slow: got timer %v, want 3.0", e.SlowTimer)
	}
}

func TestTickEndsSlow(t *testing.T) {
	cfg := DefaultConfig()
	e := NewElectron(cfg, 100, 300)
	e.ApplySlow(0.25)

	e.Tick(0.1)
	if !e.Slowed() {
		t.Fatalf("slow ended early, timer %v", e.SlowTimer)
	}
	e.Tick(0.2)
	if e.Slowed() || e.SlowTimer != 0 || e.SlowFactor != 1.0 {
		t.Fatalf("after expiry: timer=%v factor=%v", e.SlowTimer, e.SlowFactor)
	}
}

func TestSlowedMoveDown(t *testing.T) {
	cfg := DefaultConfig()
	e := NewElectron(cfg, 100, 328)
	e.ApplySlow(cfg.SlowDuration)
	e.MoveDown(0.1)
	if !approx(e.Y, 343.75, 1e-9) {
		t.Fatalf("got y=%v, want 343.75", e.Y)
	}
}

func TestElectronRectAndCenter(t *testing.T) {
	cfg := DefaultConfig()
	e := NewElectron(cfg, 100, 328)
	r := e.Rect()
	if r != (RectF{X0: 100, Y0: 328, X1: 164, Y1: 392}) {
		t.Fatalf("rect: got %+v", r)
	}
	cx, cy := e.Center()
	if cx != 132 || cy != 360 {
		t.Fatalf("center: got (%v, %v), want (132, 360)", cx, cy)
	}
}
