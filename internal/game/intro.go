package game

// IntroPhase is the one-way intro state: the electron slides out of the
// accelerator, then play starts and never returns to the intro.
type IntroPhase uint8

const (
	IntroPlaying IntroPhase = iota
	IntroDone
)

func (p IntroPhase) String() string {
	if p == IntroDone {
		return "done"
	}
	return "playing"
}

// easeOut maps normalized time t to 1-(1-t)^2, clamping t to [0,1].
func easeOut(t float64) float64 {
	t = clampF(t, 0, 1)
	return 1 - (1-t)*(1-t)
}

// Intro animates the electron's X from StartX to TargetX over Duration.
type Intro struct {
	Phase    IntroPhase
	StartX   float64
	TargetX  float64
	Duration float64
}

func NewIntro(cfg *Config) Intro {
	return Intro{
		Phase:    IntroPlaying,
		StartX:   cfg.IntroStartX,
		TargetX:  cfg.IntroTargetX,
		Duration: cfg.IntroDuration,
	}
}

// Update positions e for the given elapsed intro time. It returns true on
// the single call that completes the intro.
func (in *Intro) Update(e *Electron, elapsed float64) bool {
	if in.Phase == IntroDone {
		return false
	}
	t := elapsed / in.Duration
	if t >= 1 {
		e.X = in.TargetX
		in.Phase = IntroDone
		return true
	}
	e.X = in.StartX + (in.TargetX-in.StartX)*easeOut(t)
	return false
}

func (in *Intro) Done() bool {
	return in.Phase == IntroDone
}
