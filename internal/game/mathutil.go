package game

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

// RectF is an axis-aligned rectangle in screen-pixel space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func rectAt(x, y, w, h float64) RectF {
	return RectF{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

func (r RectF) Offset(dx, dy float64) RectF {
	return RectF{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

func (r RectF) CenterX() float64 { return (r.X0 + r.X1) * 0.5 }
func (r RectF) CenterY() float64 { return (r.Y0 + r.Y1) * 0.5 }

// Random is the source every randomized decision draws from. *Rand is the
// production implementation; tests substitute a scripted one.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// randRange returns an integer in [min, max] inclusive.
func randRange(r Random, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// randRangeF returns a float in [min, max).
func randRangeF(r Random, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	seed = splitmix64(seed)
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Range(min, max int) int {
	return randRange(r, min, max)
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	return randRangeF(r, min, max)
}
