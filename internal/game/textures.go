package game

import "math"

// SpriteImage is a straight-alpha RGBA8 pixel buffer, row-major from the top.
type SpriteImage struct {
	W, H int
	Pix  []uint8
}

func newSpriteImage(w, h int) *SpriteImage {
	return &SpriteImage{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

// blend composites col at alpha a over the pixel at (x, y).
func (img *SpriteImage) blend(x, y int, col RGB, a float64) {
	if x < 0 || y < 0 || x >= img.W || y >= img.H || a <= 0 {
		return
	}
	a = clampF(a, 0, 1)
	i := (y*img.W + x) * 4
	dstA := float64(img.Pix[i+3]) / 255.0
	outA := a + dstA*(1-a)
	if outA <= 0 {
		return
	}
	mix := func(src, dst uint8) uint8 {
		v := (float64(src)*a + float64(dst)*dstA*(1-a)) / outA
		return uint8(clampF(v, 0, 255))
	}
	img.Pix[i+0] = mix(col.R, img.Pix[i+0])
	img.Pix[i+1] = mix(col.G, img.Pix[i+1])
	img.Pix[i+2] = mix(col.B, img.Pix[i+2])
	img.Pix[i+3] = uint8(outA * 255)
}

// At returns the colour and alpha of a pixel.
func (img *SpriteImage) At(x, y int) (RGB, uint8) {
	i := (y*img.W + x) * 4
	return RGB{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}, img.Pix[i+3]
}

// GenerateSprite rasterises the procedural art for a sprite.
func GenerateSprite(s Sprite) *SpriteImage {
	switch {
	case s < Sprite(numObstacleKinds) && ObstacleKind(s).IsAtom():
		return genAtom(KindColor(ObstacleKind(s)))
	case s == obstacleSprite(KindElectricWave):
		return genElectricWave()
	case s == obstacleSprite(KindMagneticWave):
		return genMagneticWave()
	case s == SpriteElectron:
		return genElectron()
	case s == SpriteAccelerator:
		return genAccelerator()
	}
	return newSpriteImage(1, 1)
}

// SpriteSize returns the footprint a sprite is generated at.
func SpriteSize(s Sprite) (int, int) {
	switch {
	case s < Sprite(numObstacleKinds) && ObstacleKind(s).IsAtom():
		return AtomSize, AtomSize
	case s < Sprite(numObstacleKinds):
		return WaveWidth, WaveHeight
	case s == SpriteElectron:
		return ElectronSize, ElectronSize
	case s == SpriteAccelerator:
		return AcceleratorWidth, AcceleratorHeight
	}
	return 1, 1
}

// genAtom: shaded nucleus inside three tilted orbit rings.
func genAtom(nucleus RGB) *SpriteImage {
	const s = AtomSize
	img := newSpriteImage(s, s)
	c := float64(s) * 0.5

	// Orbits: ellipses at 0, 60 and 120 degrees.
	for _, tilt := range []float64{0, math.Pi / 3, 2 * math.Pi / 3} {
		ct, st := math.Cos(tilt), math.Sin(tilt)
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				dx := float64(x) + 0.5 - c
				dy := float64(y) + 0.5 - c
				rx := ct*dx + st*dy
				ry := -st*dx + ct*dy
				e := math.Sqrt(rx*rx/(29*29) + ry*ry/(10*10))
				d := math.Abs(e-1) * 10
				if d < 1.2 {
					img.blend(x, y, Palette.Orbit, 1.0-d/1.2)
				}
			}
		}
	}

	// Nucleus with a top-left highlight.
	const rad = 14.0
	hi := nucleus.Add(70, 70, 70)
	lo := nucleus.Mul(150)
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Hypot(dx, dy)
			if d > rad+1 {
				continue
			}
			edge := clampF(rad+1-d, 0, 1)
			light := clampF(1-math.Hypot(dx+5, dy+5)/(rad*1.6), 0, 1)
			col := lerpRGB(lo, hi, light)
			img.blend(x, y, col, edge)
		}
	}
	return img
}

// genElectricWave: a bright zig-zag band with a soft halo.
func genElectricWave() *SpriteImage {
	img := newSpriteImage(WaveWidth, WaveHeight)
	mid := float64(WaveHeight) * 0.5
	for x := 0; x < WaveWidth; x++ {
		u := float64(x) / float64(WaveWidth)
		// Fade in and out at the ends.
		end := math.Min(u, 1-u) * 8
		end = clampF(end, 0, 1)
		yc := mid + 30*math.Sin(u*4*math.Pi)
		for y := 0; y < WaveHeight; y++ {
			d := math.Abs(float64(y) + 0.5 - yc)
			switch {
			case d < 3:
				img.blend(x, y, RGB{R: 255, G: 255, B: 220}, end)
			case d < 12:
				img.blend(x, y, Palette.Electric, end*(1-(d-3)/9)*0.8)
			}
		}
	}
	return img
}

// genMagneticWave: concentric field arcs alternating between poles.
func genMagneticWave() *SpriteImage {
	img := newSpriteImage(WaveWidth, WaveHeight)
	ox, oy := -40.0, float64(WaveHeight)*0.5
	for y := 0; y < WaveHeight; y++ {
		for x := 0; x < WaveWidth; x++ {
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5
			// Elliptical mask so the sprite has no hard corners.
			mx := (fx - float64(WaveWidth)*0.5) / (float64(WaveWidth) * 0.5)
			my := (fy - oy) / oy
			mask := clampF((1-(mx*mx+my*my))*3, 0, 1)
			if mask <= 0 {
				continue
			}
			d := math.Hypot(fx-ox, fy-oy)
			band := math.Mod(d, 18)
			if band > 6 {
				continue
			}
			col := Palette.Magnetic
			if int(d/18)%2 == 1 {
				col = Palette.MagneticAlt
			}
			a := (1 - math.Abs(band-3)/3) * mask
			img.blend(x, y, col, a)
		}
	}
	return img
}

// genElectron: glowing radial dot.
func genElectron() *SpriteImage {
	const s = ElectronSize
	img := newSpriteImage(s, s)
	c := float64(s) * 0.5
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / (c - 1)
			if d >= 1 {
				continue
			}
			var col RGB
			var a float64
			if d < 0.45 {
				col = lerpRGB(Palette.ElectronHot, Palette.Electron, d/0.45)
				a = 1
			} else {
				col = Palette.Electron
				f := 1 - (d-0.45)/0.55
				a = f * f
			}
			img.blend(x, y, col, a)
		}
	}
	return img
}

// genAccelerator: rounded housing with trim stripes and a dark muzzle on
// the right side where the electron emerges.
func genAccelerator() *SpriteImage {
	const w, h = AcceleratorWidth, AcceleratorHeight
	img := newSpriteImage(w, h)
	const radius = 18.0
	dark := Palette.Accelerator.Mul(140)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5
			// Distance outside the rounded rectangle.
			qx := math.Max(math.Abs(fx-w/2)-(w/2-radius), 0)
			qy := math.Max(math.Abs(fy-h/2)-(h/2-radius), 0)
			out := math.Hypot(qx, qy) - radius
			if out > 1 {
				continue
			}
			a := clampF(1-out, 0, 1)
			col := Palette.Accelerator
			if out > -4 {
				col = dark
			}
			if y > h/4 && y < h/4+8 || y > 3*h/4-8 && y < 3*h/4 {
				col = Palette.AccelTrim
			}
			img.blend(x, y, col, a)
		}
	}
	// Muzzle.
	mx, my := float64(w)-26, float64(h)*0.5
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - mx) / 14
			dy := (float64(y) + 0.5 - my) / 40
			d := dx*dx + dy*dy
			if d < 1 {
				img.blend(x, y, RGB{R: 20, G: 24, B: 32}, clampF((1-d)*4, 0, 1))
			}
		}
	}
	return img
}
