package game

import "math"

const MaxParticles = 512

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota // collision burst
	ParticleTrail                     // electron exhaust during the intro
	ParticleFlux                      // magnetic hit ring
)

type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64

	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

// ParticleSystem holds short-lived cosmetic sparks. It has no effect on the
// simulation.
type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update ages and moves every particle and drops the expired ones.
func (ps *ParticleSystem) Update(dt float64) {
	drag := math.Exp(-3.0 * dt)
	kept := ps.P[:0]
	for _, p := range ps.P {
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= drag
		p.VY *= drag
		kept = append(kept, p)
	}
	ps.P = kept
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// SpawnBurst throws count sparks outwards from (x, y).
func (ps *ParticleSystem) SpawnBurst(x, y float64, col RGB, count int, speed float64) {
	r := ps.rng
	for range count {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(0.3, 1.0) * speed
		ps.Add(Particle{
			X: x + r.RangeF(-4, 4), Y: y + r.RangeF(-4, 4),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: r.RangeF(6, 14), MaxLife: r.RangeF(0.35, 0.9),
			Col:  col.Add(r.Range(-20, 20), r.Range(-20, 20), r.Range(-20, 20)),
			Kind: ParticleSpark,
		})
	}
}

// SpawnFlux emits an expanding ring of particles, used for magnetic hits.
func (ps *ParticleSystem) SpawnFlux(x, y float64, col RGB) {
	const n = 18
	for i := range n {
		ang := float64(i) / n * math.Pi * 2
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * 180, VY: math.Sin(ang) * 180,
			Size: 10, MaxLife: 0.45,
			Col: col, Kind: ParticleFlux,
		})
	}
}

// SpawnTrail drops one exhaust particle behind the electron.
func (ps *ParticleSystem) SpawnTrail(x, y float64) {
	r := ps.rng
	ps.Add(Particle{
		X: x, Y: y + r.RangeF(-6, 6),
		VX: -r.RangeF(40, 120), VY: r.RangeF(-20, 20),
		Size: r.RangeF(8, 16), MaxLife: r.RangeF(0.2, 0.4),
		Col: lerpRGB(Palette.Electron, Palette.ElectronHot, r.Float64()), Kind: ParticleTrail,
	})
}

// Alpha returns the fade factor of a particle.
func (p *Particle) Alpha() float64 {
	t := clampF(p.Life/p.MaxLife, 0, 1)
	switch p.Kind {
	case ParticleFlux:
		return (1 - t) * 0.8
	case ParticleTrail:
		return (1 - t) * 0.6
	}
	return 1 - t*t
}

// Draw submits every live particle to the platform.
func (ps *ParticleSystem) Draw(p Platform, cam *Camera) {
	for i := range ps.P {
		pt := &ps.P[i]
		a := pt.Alpha()
		if a <= 0 {
			continue
		}
		p.DrawDot(pt.X+cam.ShakeX, pt.Y+cam.ShakeY, pt.Size, pt.Col, a)
	}
}
