package game

// Camera holds the screen-shake offset applied to every drawn entity.
// The playfield itself never scrolls.
type Camera struct {
	ShakeX, ShakeY float64 // current offset in screen pixels
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude

	seed uint64
}

func NewCamera(seed uint64) *Camera {
	return &Camera{seed: seed}
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64) {
	if c.ShakeTimer <= 0 {
		c.ShakeX = 0
		c.ShakeY = 0
		c.ShakeIntensity = 0
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	rr := NewRand(c.seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

// Apply offsets a screen rectangle by the current shake.
func (c *Camera) Apply(r RectF) RectF {
	return r.Offset(c.ShakeX, c.ShakeY)
}
