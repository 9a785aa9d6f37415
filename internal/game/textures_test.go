package game

import "testing"

func TestGenerateSpriteSizes(t *testing.T) {
	for s := Sprite(0); s < numSprites; s++ {
		img := GenerateSprite(s)
		w, h := SpriteSize(s)
		if img.W != w || img.H != h || len(img.Pix) != w*h*4 {
			t.Fatalf("sprite %d: got %dx%d (%d bytes), want %dx%d", s, img.W, img.H, len(img.Pix), w, h)
		}
	}
}

func TestSpritesHaveOpaqueCentreAndClearCorner(t *testing.T) {
	for _, s := range []Sprite{obstacleSprite(KindHydrogen), obstacleSprite(KindGold), SpriteElectron} {
		img := GenerateSprite(s)
		if _, a := img.At(img.W/2, img.H/2); a < 200 {
			t.Fatalf("sprite %d: centre alpha %d, want opaque", s, a)
		}
		if _, a := img.At(0, 0); a != 0 {
			t.Fatalf("sprite %d: corner alpha %d, want 0", s, a)
		}
	}
}

func TestAtomNucleusUsesKindColour(t *testing.T) {
	for _, k := range AtomKinds {
		img := GenerateSprite(obstacleSprite(k))
		got, _ := img.At(img.W/2+4, img.H/2+4)
		want := KindColor(k)
		// Shading moves the channels but keeps the dominant one.
		if dominant(got) != dominant(want) && !(want.R == want.G && want.G == want.B) {
			t.Fatalf("%s: nucleus %v does not resemble %v", k, got, want)
		}
	}
}

func dominant(c RGB) int {
	switch {
	case c.R >= c.G && c.R >= c.B:
		return 0
	case c.G >= c.B:
		return 1
	}
	return 2
}

func TestBlendOverTransparentKeepsColour(t *testing.T) {
	img := newSpriteImage(2, 2)
	img.blend(0, 0, RGB{R: 200, G: 100, B: 50}, 0.5)
	c, a := img.At(0, 0)
	if c != (RGB{R: 200, G: 100, B: 50}) || a != 127 {
		t.Fatalf("got %v alpha %d", c, a)
	}
	img.blend(5, 5, RGB{}, 1) // out of bounds is ignored
}

func TestWaveSpritesDiffer(t *testing.T) {
	e := GenerateSprite(obstacleSprite(KindElectricWave))
	m := GenerateSprite(obstacleSprite(KindMagneticWave))
	same := true
	for i := range e.Pix {
		if e.Pix[i] != m.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("electric and magnetic wave sprites are identical")
	}
}
