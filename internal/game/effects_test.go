package game

import (
	"math"
	"testing"
)

func TestCameraShakeDecays(t *testing.T) {
	c := NewCamera(3)
	c.AddShake(10, 0.3)
	c.AddShake(4, 0.1) // weaker shake does not shorten the stronger one
	if c.ShakeIntensity != 10 || c.ShakeTimer != 0.3 {
		t.Fatalf("intensity=%v timer=%v", c.ShakeIntensity, c.ShakeTimer)
	}

	moved := false
	for range 30 {
		c.UpdateShake(1.0 / 60)
		if math.Abs(c.ShakeX) > 10 || math.Abs(c.ShakeY) > 10 {
			t.Fatalf("offset (%v, %v) beyond intensity", c.ShakeX, c.ShakeY)
		}
		if c.ShakeX != 0 || c.ShakeY != 0 {
			moved = true
		}
	}
	if !moved {
		t.Fatalf("shake never moved the camera")
	}
	if c.ShakeX != 0 || c.ShakeY != 0 || c.ShakeTimer != 0 {
		t.Fatalf("shake did not settle: (%v, %v) timer %v", c.ShakeX, c.ShakeY, c.ShakeTimer)
	}

	r := rectAt(10, 20, 5, 5)
	if got := c.Apply(r); got != r {
		t.Fatalf("settled camera moved rect to %+v", got)
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := NewParticleSystem(64, 1)
	ps.SpawnBurst(100, 100, Palette.Spark, 20, 200)
	ps.SpawnFlux(100, 100, Palette.Magnetic)
	if len(ps.P) != 38 {
		t.Fatalf("got %d particles, want 38", len(ps.P))
	}
	for range 120 {
		ps.Update(1.0 / 60)
	}
	if len(ps.P) != 0 {
		t.Fatalf("%d particles outlived their life", len(ps.P))
	}
}

func TestParticlesOverwriteWhenFull(t *testing.T) {
	ps := NewParticleSystem(4, 1)
	for i := range 6 {
		ps.Add(Particle{X: float64(i), MaxLife: 1})
	}
	if len(ps.P) != 4 {
		t.Fatalf("got %d particles, want 4", len(ps.P))
	}
	if ps.P[0].X != 4 || ps.P[1].X != 5 || ps.P[2].X != 2 {
		t.Fatalf("overwrite order wrong: %v %v %v", ps.P[0].X, ps.P[1].X, ps.P[2].X)
	}
}

func TestParticleAlphaFades(t *testing.T) {
	for _, k := range []ParticleKind{ParticleSpark, ParticleTrail, ParticleFlux} {
		p := Particle{MaxLife: 1, Kind: k}
		start := p.Alpha()
		p.Life = 0.5
		mid := p.Alpha()
		p.Life = 1
		end := p.Alpha()
		if !(start > mid && mid > end && end == 0) {
			t.Fatalf("kind %d: alpha %v -> %v -> %v", k, start, mid, end)
		}
	}
}

func TestParticlesDrawThroughPlatform(t *testing.T) {
	ps := NewParticleSystem(16, 2)
	for range 5 {
		ps.SpawnTrail(50, 50)
	}
	fp := &fakePlatform{}
	ps.Draw(fp, NewCamera(1))
	if fp.dots != 5 {
		t.Fatalf("drew %d dots, want 5", fp.dots)
	}
}

func TestEventBusDispatch(t *testing.T) {
	bus := NewEventBus()
	var order []int
	bus.Subscribe(EventSlowed, func(e Event) { order = append(order, 1) })
	bus.Subscribe(EventSlowed, func(e Event) { order = append(order, 2) })
	bus.Subscribe(EventCollision, func(e Event) { order = append(order, 9) })

	bus.Emit(Event{Type: EventSlowed})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("handlers ran as %v, want [1 2]", order)
	}

	var nilBus *EventBus
	nilBus.Emit(Event{Type: EventSlowed}) // must not panic
}
