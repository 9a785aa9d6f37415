package game

import "log"

// ObstacleManager owns the live obstacles, the randomized spawn countdown and
// the global speed ramp.
type ObstacleManager struct {
	Obstacles  []Obstacle
	SpawnTimer float64
	Events     *EventBus

	cfg *Config
	rng Random
}

func NewObstacleManager(cfg *Config, rng Random) (*ObstacleManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &ObstacleManager{
		Obstacles: make([]Obstacle, 0, 16),
		cfg:       cfg,
		rng:       rng,
	}
	m.resetTimer()
	return m, nil
}

func (m *ObstacleManager) resetTimer() {
	m.SpawnTimer = randRangeF(m.rng, m.cfg.SpawnIntervalMin, m.cfg.SpawnIntervalMax)
}

// CurrentSpeed is the drift speed shared by every obstacle at gameTime.
func (m *ObstacleManager) CurrentSpeed(gameTime float64) float64 {
	return m.cfg.ObstacleBaseSpeed + m.cfg.ObstacleAcceleration*max(0, gameTime)
}

// Update runs the spawn countdown (only once the intro is over), advances
// every obstacle and drops the ones that left the screen. It returns the
// number of obstacles spawned this call.
func (m *ObstacleManager) Update(dt, gameTime float64, introDone bool) int {
	speed := m.CurrentSpeed(gameTime)

	spawned := 0
	if introDone {
		m.SpawnTimer -= dt
		if m.SpawnTimer <= 0 {
			spawned = m.SpawnRandom(gameTime)
			m.resetTimer()
		}
	}

	kept := m.Obstacles[:0]
	for i := range m.Obstacles {
		o := m.Obstacles[i]
		o.Advance(dt, speed, gameTime)
		if o.IsOffScreen() {
			continue
		}
		kept = append(kept, o)
	}
	clear(m.Obstacles[len(kept):])
	m.Obstacles = kept
	return spawned
}

// SpawnRandom picks a kind uniformly from the full table and spawns it.
func (m *ObstacleManager) SpawnRandom(now float64) int {
	kind := AllKinds[m.rng.Intn(len(AllKinds))]
	return m.Spawn(kind, now)
}

// Spawn adds an obstacle of kind just past the right edge at a random
// height. The companion kind (gold by default) always arrives paired with a
// second, different atom at the same height, a fixed distance behind it.
// It returns the number of obstacles added.
func (m *ObstacleManager) Spawn(kind ObstacleKind, now float64) int {
	first := m.spawnOne(kind, m.randomX(), m.randomY(kind), now)
	if kind != m.cfg.CompanionKind {
		return 1
	}

	others := make([]ObstacleKind, 0, len(AtomKinds)-1)
	for _, k := range AtomKinds {
		if k != kind {
			others = append(others, k)
		}
	}
	extra := others[m.rng.Intn(len(others))]
	m.spawnOne(extra, first.X+m.cfg.CompanionOffsetX, first.Y, now)
	return 2
}

func (m *ObstacleManager) spawnOne(kind ObstacleKind, x, y, now float64) Obstacle {
	o := NewObstacle(m.cfg, kind, x, y, now)
	if kind == KindElectricWave {
		o.OscAmp = m.cfg.WaveAmplitude
		o.OscFreq = randRangeF(m.rng, m.cfg.WaveFreqMin, m.cfg.WaveFreqMax)
	}
	m.Obstacles = append(m.Obstacles, o)

	if m.cfg.Debug {
		log.Printf("spawn %s at (%.0f, %.0f)", kind, o.X, o.Y)
	}
	m.Events.Emit(Event{Type: EventSpawned, X: o.X, Y: o.Y, Data: int(kind)})
	return o
}

func (m *ObstacleManager) randomX() float64 {
	return m.cfg.ScreenWidth + float64(randRange(m.rng, 0, m.cfg.SpawnJitterX))
}

func (m *ObstacleManager) randomY(kind ObstacleKind) float64 {
	_, h := m.cfg.Footprint(kind)
	lo := m.cfg.SpawnMarginY
	hi := int(m.cfg.ScreenHeight) - m.cfg.SpawnMarginY - int(h)
	return float64(randRange(m.rng, lo, hi))
}

// Clear drops every obstacle and restarts the countdown.
func (m *ObstacleManager) Clear() {
	clear(m.Obstacles)
	m.Obstacles = m.Obstacles[:0]
	m.resetTimer()
}
