package game

import "log"

type GameState int

const (
	StateRunning GameState = iota // electron alive
	StateLost                     // hit an atom
)

func (s GameState) String() string {
	if s == StateLost {
		return "lost"
	}
	return "running"
}

// Outcome is what a simulation step reports back to the frame loop. A loss
// is an ordinary result, not an error.
type Outcome struct {
	State GameState
	Score int
	// LostTo is the atom kind that ended the run; only set when State is
	// StateLost.
	LostTo ObstacleKind
}

// Session is one run of the game, from the intro until an atom hit.
type Session struct {
	State    GameState
	Intro    Intro
	GameTime float64 // seconds since the run started, intro included
	Score    int
	LostTo   ObstacleKind

	Electron  *Electron
	Obstacles *ObstacleManager
	Events    *EventBus

	cfg *Config
}

// NewSession validates cfg and sets up a fresh run with the electron
// parked inside the accelerator.
func NewSession(cfg *Config, rng Random, events *EventBus) (*Session, error) {
	obstacles, err := NewObstacleManager(cfg, rng)
	if err != nil {
		return nil, err
	}
	obstacles.Events = events
	return &Session{
		State:     StateRunning,
		Intro:     NewIntro(cfg),
		Electron:  NewElectron(cfg, cfg.IntroStartX, cfg.StartY),
		Obstacles: obstacles,
		Events:    events,
		cfg:       cfg,
	}, nil
}

func (s *Session) outcome() Outcome {
	return Outcome{State: s.State, Score: s.Score, LostTo: s.LostTo}
}

// Step advances the run by dt seconds of measured frame time.
func (s *Session) Step(dt float64, in InputState) Outcome {
	if s.State != StateRunning {
		return s.outcome()
	}
	if dt < 0 {
		dt = 0
	}
	s.GameTime += dt
	e := s.Electron

	// Movement is allowed during the intro too.
	if in.Up {
		e.MoveUp(dt)
	}
	if in.Down {
		e.MoveDown(dt)
	}

	if s.Intro.Update(e, s.GameTime) {
		s.Events.Emit(Event{Type: EventIntroDone, X: e.X, Y: e.Y})
	}

	e.Tick(dt)
	s.Obstacles.Update(dt, s.GameTime, s.Intro.Done())

	for i := range s.Obstacles.Obstacles {
		s.Obstacles.Obstacles[i].ApplyAttraction(e, dt)
	}

	if s.collide() {
		return s.outcome()
	}

	s.Score = s.scoreAt(s.GameTime)
	return s.outcome()
}

// collide resolves contacts in collection order. It returns true when an
// atom ended the run.
func (s *Session) collide() bool {
	e := s.Electron
	er := e.Rect()
	for i := range s.Obstacles.Obstacles {
		o := &s.Obstacles.Obstacles[i]
		if !er.Intersects(o.Rect()) {
			continue
		}
		switch {
		case o.Kind.IsAtom():
			log.Printf("collision with atom %q, game over", o.Kind)
			s.State = StateLost
			s.LostTo = o.Kind
			s.Score = s.scoreAt(s.GameTime)
			cx, cy := e.Center()
			s.Events.Emit(Event{Type: EventCollision, X: cx, Y: cy, Data: int(o.Kind)})
			return true
		case o.Kind == KindMagneticWave:
			fresh := !e.Slowed()
			e.ApplySlow(s.cfg.SlowDuration)
			if fresh {
				log.Printf("hit magnetic wave, slowing electron")
				cx, cy := e.Center()
				s.Events.Emit(Event{Type: EventSlowed, X: cx, Y: cy, Data: int(o.Kind)})
			}
		}
	}
	return false
}

// scoreAt counts whole seconds survived since the intro finished.
func (s *Session) scoreAt(gameTime float64) int {
	if !s.Intro.Done() {
		return 0
	}
	return int(max(0, gameTime-s.cfg.IntroDuration))
}
