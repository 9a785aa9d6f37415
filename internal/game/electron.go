package game

// Direction is a vertical input direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
)

// Electron is the player particle. Only Y changes through gameplay; X is
// driven by the intro slide.
type Electron struct {
	X, Y  float64
	W, H  float64
	Speed float64 // px/s

	SlowTimer  float64 // seconds left on the slow effect
	SlowFactor float64 // 1.0 when not slowed

	slowValue float64
	maxY      float64
}

func NewElectron(cfg *Config, x, y float64) *Electron {
	e := &Electron{
		X:          x,
		W:          cfg.PlayerWidth,
		H:          cfg.PlayerHeight,
		Speed:      cfg.PlayerSpeed,
		SlowFactor: 1.0,
		slowValue:  cfg.SlowFactor,
		maxY:       cfg.ScreenHeight - cfg.PlayerHeight,
	}
	e.setY(y)
	return e
}

func (e *Electron) setY(y float64) {
	e.Y = clampF(y, 0, e.maxY)
}

// Move displaces the electron by its (possibly slowed) speed over dt.
func (e *Electron) Move(dir Direction, dt float64) {
	step := e.Speed * e.SlowFactor * dt
	if dir == DirUp {
		step = -step
	}
	e.setY(e.Y + step)
}

func (e *Electron) MoveUp(dt float64)   { e.Move(DirUp, dt) }
func (e *Electron) MoveDown(dt float64) { e.Move(DirDown, dt) }

// ApplyForce displaces the electron immediately. The caller has already
// scaled dy by the frame time.
func (e *Electron) ApplyForce(dy float64) {
	e.setY(e.Y + dy)
}

// ApplySlow starts or extends the slow effect. Repeated hits refresh the
// timer to the longer of the two and never compound the factor.
func (e *Electron) ApplySlow(duration float64) {
	e.SlowTimer = max(e.SlowTimer, duration)
	e.SlowFactor = e.slowValue
}

// Slowed reports whether the slow effect is active.
func (e *Electron) Slowed() bool {
	return e.SlowTimer > 0
}

// Tick counts down the slow effect.
func (e *Electron) Tick(dt float64) {
	if e.SlowTimer <= 0 {
		return
	}
	e.SlowTimer -= dt
	if e.SlowTimer <= 0 {
		e.SlowTimer = 0
		e.SlowFactor = 1.0
	}
}

func (e *Electron) Rect() RectF {
	return rectAt(e.X, e.Y, e.W, e.H)
}

func (e *Electron) Center() (float64, float64) {
	return e.X + e.W*0.5, e.Y + e.H*0.5
}
