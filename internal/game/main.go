package game

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Game ties a platform to a run of the simulation and its cosmetic systems.
type Game struct {
	cfg       *Config
	platform  Platform
	rng       *Rand
	events    *EventBus
	sess      *Session
	cam       *Camera
	particles *ParticleSystem

	lostAt       float64 // platform time of the loss, for ExitOnLoss
	musicPending bool    // soundtrack waits for the audio device
	trailAcc     float64
	accelRect    RectF
}

// NewGame builds the first session and subscribes the feedback handlers.
func NewGame(p Platform, cfg *Config) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		platform:  p,
		rng:       NewRand(cfg.Seed),
		events:    NewEventBus(),
		cam:       NewCamera(cfg.Seed ^ 0x5EED),
		particles: NewParticleSystem(MaxParticles, cfg.Seed^0xBEAD),
		accelRect: rectAt(
			AcceleratorLeft,
			cfg.ScreenHeight/2-AcceleratorHeight/2,
			AcceleratorWidth, AcceleratorHeight,
		),
	}
	sess, err := NewSession(cfg, g.rng, g.events)
	if err != nil {
		return nil, err
	}
	g.sess = sess
	g.subscribe()
	return g, nil
}

func (g *Game) subscribe() {
	g.events.Subscribe(EventIntroDone, func(e Event) {
		if g.cfg.Debug {
			log.Printf("intro done at x=%.0f y=%.0f", e.X, e.Y)
		}
		g.particles.SpawnBurst(e.X, e.Y+ElectronSize/2, Palette.ElectronHot, 14, 160)
	})
	g.events.Subscribe(EventSpawned, func(e Event) {
		if ObstacleKind(e.Data) == KindGold {
			PlaySound(SoundGold)
		}
	})
	g.events.Subscribe(EventSlowed, func(e Event) {
		PlaySound(SoundSlow)
		g.particles.SpawnFlux(e.X, e.Y, Palette.Magnetic)
		g.cam.AddShake(4, 0.2)
	})
	g.events.Subscribe(EventCollision, func(e Event) {
		PlaySound(SoundGameOver)
		g.particles.SpawnBurst(e.X, e.Y, KindColor(ObstacleKind(e.Data)), 60, 420)
		g.particles.SpawnBurst(e.X, e.Y, Palette.Spark, 30, 260)
		g.cam.AddShake(14, 0.5)
	})
	g.events.Subscribe(EventRestart, func(e Event) {
		PlaySound(SoundRestart)
		PlaySound(SoundLaunch)
		log.Printf("restarting, previous score %d", e.Data)
	})
}

// restart replaces the lost session with a fresh one on the same config.
func (g *Game) restart() error {
	prev := g.sess.Score
	sess, err := NewSession(g.cfg, g.rng, g.events)
	if err != nil {
		return err
	}
	g.sess = sess
	g.particles.Clear()
	g.trailAcc = 0
	g.lostAt = 0
	g.events.Emit(Event{Type: EventRestart, Data: prev})
	return nil
}

// startMusic begins the soundtrack on the loop thread once the audio
// device reports ready, so start and stop never overlap.
func (g *Game) startMusic(ready func() bool) {
	if !g.musicPending || !ready() {
		return
	}
	g.musicPending = false
	StartMusic()
	PlaySound(SoundLaunch)
}

// Update advances one frame. It returns false when the loop should stop.
func (g *Game) Update(dt float64, in InputState) (bool, error) {
	if in.Quit {
		return false, nil
	}

	switch g.sess.State {
	case StateRunning:
		out := g.sess.Step(dt, in)
		if out.State == StateLost {
			g.lostAt = g.platform.Now()
			log.Printf("game over: score %d, hit %s", out.Score, out.LostTo)
		}
		if !g.sess.Intro.Done() {
			g.trail(dt)
		}
	case StateLost:
		if g.cfg.ExitOnLoss {
			if g.platform.Now()-g.lostAt >= GameOverHold {
				return false, nil
			}
		} else if in.Retry {
			if err := g.restart(); err != nil {
				return false, err
			}
		}
	}

	g.cam.UpdateShake(dt)
	g.particles.Update(dt)
	return true, nil
}

// trail emits exhaust behind the electron while it leaves the accelerator.
func (g *Game) trail(dt float64) {
	const interval = 0.02
	g.trailAcc += dt
	e := g.sess.Electron
	for g.trailAcc >= interval {
		g.trailAcc -= interval
		g.particles.SpawnTrail(e.X, e.Y+e.H/2)
	}
}

// Draw renders the accelerator, the electron, the obstacles, sparks and HUD.
func (g *Game) Draw() {
	p := g.platform
	p.BeginFrame()

	p.DrawSprite(SpriteAccelerator, g.cam.Apply(g.accelRect))
	p.DrawSprite(SpriteElectron, g.cam.Apply(g.sess.Electron.Rect()))
	for i := range g.sess.Obstacles.Obstacles {
		o := &g.sess.Obstacles.Obstacles[i]
		p.DrawSprite(obstacleSprite(o.Kind), g.cam.Apply(o.Rect()))
	}
	g.particles.Draw(p, g.cam)
	RenderHUD(p, g.sess, g.cfg)

	p.EndFrame()
}

// Run drives the frame loop until the player quits. dt is measured wall
// time, capped at MaxFrameDt.
func Run(p Platform, cfg *Config) error {
	g, err := NewGame(p, cfg)
	if err != nil {
		return err
	}

	if !cfg.Mute {
		if err := InitAudio(); err != nil {
			log.Printf("audio init failed (continuing without sound): %v", err)
		} else {
			g.musicPending = true
			defer StopMusic()
		}
	}

	frame := time.Second / time.Duration(cfg.TargetFPS)
	last := p.Now()
	for {
		frameStart := time.Now()
		now := p.Now()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		g.startMusic(audioReady)

		in := p.Poll()
		running, err := g.Update(dt, in)
		if err != nil {
			return err
		}
		if !running {
			log.Printf("exiting with score %d", g.sess.Score)
			return nil
		}
		g.Draw()

		if spare := frame - time.Since(frameStart); spare > 0 {
			time.Sleep(spare)
		}
	}
}

// RunDesktop opens the GLFW window and runs the game on the main OS thread.
func RunDesktop(cfg *Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d, err := NewDesktop(cfg)
	if err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	defer d.Close()
	return Run(d, cfg)
}

// RunTerminal runs the game in the current terminal.
func RunTerminal(cfg *Config) error {
	t, err := NewTerminal(cfg)
	if err != nil {
		return err
	}
	defer t.Close()
	return Run(t, cfg)
}
