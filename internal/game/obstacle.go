package game

import "math"

// ObstacleKind tags an obstacle. The first six kinds are atoms (lethal,
// attracting); the last two are waves.
type ObstacleKind uint8

const (
	KindHydrogen ObstacleKind = iota
	KindOxygen
	KindTitanium
	KindUranium
	KindPlutonium
	KindGold
	KindElectricWave // oscillates vertically, no contact effect
	KindMagneticWave // slows the electron on contact

	numObstacleKinds
)

// AtomKinds lists the lethal kinds in table order.
var AtomKinds = []ObstacleKind{
	KindHydrogen, KindOxygen, KindTitanium, KindUranium, KindPlutonium, KindGold,
}

// AllKinds is the spawn table: every atom plus both waves.
var AllKinds = []ObstacleKind{
	KindHydrogen, KindOxygen, KindTitanium, KindUranium, KindPlutonium, KindGold,
	KindElectricWave, KindMagneticWave,
}

var kindNames = [numObstacleKinds]string{
	KindHydrogen:     "hydrogen",
	KindOxygen:       "oxygen",
	KindTitanium:     "titanium",
	KindUranium:      "uranium",
	KindPlutonium:    "plutonium",
	KindGold:         "gold",
	KindElectricWave: "electric_wave",
	KindMagneticWave: "magnetic_wave",
}

func (k ObstacleKind) String() string {
	if k < numObstacleKinds {
		return kindNames[k]
	}
	return "unknown"
}

func (k ObstacleKind) IsAtom() bool {
	return k <= KindGold
}

// Obstacle is a single hazard drifting leftwards across the screen.
type Obstacle struct {
	Kind ObstacleKind
	X, Y float64
	W, H float64

	BaseY     float64 // Y at spawn; oscillation is centred on it
	SpawnTime float64 // game seconds
	OscAmp    float64
	OscFreq   float64 // rad/s

	attraction float64
	pullRange  float64
	maxY       float64
}

// NewObstacle builds an obstacle of the given kind with its footprint and
// pull constant taken from cfg. Oscillation parameters are left to the caller.
func NewObstacle(cfg *Config, kind ObstacleKind, x, y, now float64) Obstacle {
	w, h := cfg.Footprint(kind)
	o := Obstacle{
		Kind:      kind,
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		BaseY:     y,
		SpawnTime: now,
		pullRange: cfg.AttractionRange,
		maxY:      cfg.ScreenHeight - h,
	}
	if kind.IsAtom() {
		o.attraction = cfg.AttractionFor(kind)
	}
	return o
}

// Advance drifts the obstacle left at speed. The electric wave also bobs
// around its spawn height, clamped to the screen.
func (o *Obstacle) Advance(dt, speed, now float64) {
	o.X -= speed * dt
	if o.Kind != KindElectricWave {
		return
	}
	t := now - o.SpawnTime
	offset := o.OscAmp * math.Sin(t*o.OscFreq)
	o.Y = clampF(o.BaseY+offset, 0, o.maxY)
}

// ForceMagnitude returns the pull strength at horizontal distance dx
// (obstacle centre minus electron centre). Falloff is linear: full strength
// when adjacent, zero at the range edge and behind the electron.
func (o *Obstacle) ForceMagnitude(dx float64) float64 {
	if !o.Kind.IsAtom() || dx <= 0 || dx >= o.pullRange {
		return 0
	}
	frac := 1.0 - dx/o.pullRange
	return o.attraction * frac
}

// Attraction returns the vertical displacement this obstacle pulls the
// electron by over dt. It never overshoots the obstacle's centre line.
func (o *Obstacle) Attraction(e *Electron, dt float64) float64 {
	if !o.Kind.IsAtom() {
		return 0
	}
	r := o.Rect()
	ex, ey := e.Center()
	force := o.ForceMagnitude(r.CenterX() - ex)
	if force == 0 {
		return 0
	}
	dy := r.CenterY() - ey
	if dy == 0 {
		return 0
	}
	step := math.Min(math.Abs(dy), force*dt)
	if dy < 0 {
		return -step
	}
	return step
}

// ApplyAttraction nudges the electron toward this atom.
func (o *Obstacle) ApplyAttraction(e *Electron, dt float64) {
	if dy := o.Attraction(e, dt); dy != 0 {
		e.ApplyForce(dy)
	}
}

// IsOffScreen reports whether the obstacle has fully left past the left edge.
func (o *Obstacle) IsOffScreen() bool {
	return o.X+o.W < 0
}

func (o *Obstacle) Rect() RectF {
	return rectAt(o.X, o.Y, o.W, o.H)
}
