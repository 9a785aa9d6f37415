package game

import "testing"

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(123), NewRand(123)
	for range 100 {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("same seed diverged")
		}
	}
	if NewRand(0).NextU64() == 0 {
		t.Fatalf("zero seed produced a stuck generator")
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(9)
	seenMin, seenMax := false, false
	for range 10000 {
		v := r.Range(40, 45)
		if v < 40 || v > 45 {
			t.Fatalf("Range(40, 45) = %d", v)
		}
		seenMin = seenMin || v == 40
		seenMax = seenMax || v == 45
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v", f)
		}
		if n := r.Intn(8); n < 0 || n >= 8 {
			t.Fatalf("Intn(8) = %d", n)
		}
	}
	if !seenMin || !seenMax {
		t.Fatalf("Range is not inclusive: min=%v max=%v", seenMin, seenMax)
	}
	if r.Intn(0) != 0 || r.Range(5, 5) != 5 || r.RangeF(2, 2) != 2 {
		t.Fatalf("degenerate ranges")
	}
}

func TestRectIntersects(t *testing.T) {
	a := rectAt(0, 0, 10, 10)
	tests := []struct {
		b    RectF
		want bool
	}{
		{rectAt(5, 5, 10, 10), true},
		{rectAt(10, 0, 10, 10), false}, // touching edges do not overlap
		{rectAt(0, 10, 10, 10), false},
		{rectAt(-5, -5, 6, 6), true},
		{rectAt(20, 20, 1, 1), false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Fatalf("%+v intersects %+v = %v, want %v", a, tt.b, got, tt.want)
		}
	}
	if a.CenterX() != 5 || a.CenterY() != 5 {
		t.Fatalf("centre (%v, %v)", a.CenterX(), a.CenterY())
	}
}
