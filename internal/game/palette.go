package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{
		R: uint8(clamp(int(c.R)+dr, 0, 255)),
		G: uint8(clamp(int(c.G)+dg, 0, 255)),
		B: uint8(clamp(int(c.B)+db, 0, 255)),
	}
}

var Palette = struct {
	Background  RGB
	Text        RGB
	GameOver    RGB
	Hint        RGB
	Electron    RGB
	ElectronHot RGB
	Accelerator RGB
	AccelTrim   RGB
	Electric    RGB
	Magnetic    RGB
	MagneticAlt RGB
	Orbit       RGB
	Spark       RGB
}{
	Background:  RGB{R: 255, G: 255, B: 255},
	Text:        RGB{R: 0, G: 0, B: 0},
	GameOver:    RGB{R: 200, G: 0, B: 0},
	Hint:        RGB{R: 90, G: 90, B: 110},
	Electron:    RGB{R: 60, G: 150, B: 255},
	ElectronHot: RGB{R: 210, G: 240, B: 255},
	Accelerator: RGB{R: 96, G: 104, B: 118},
	AccelTrim:   RGB{R: 255, G: 190, B: 60},
	Electric:    RGB{R: 250, G: 220, B: 40},
	Magnetic:    RGB{R: 220, G: 50, B: 60},
	MagneticAlt: RGB{R: 50, G: 90, B: 220},
	Orbit:       RGB{R: 70, G: 70, B: 80},
	Spark:       RGB{R: 255, G: 200, B: 90},
}

// atomColors are the nucleus colours per atom kind.
var atomColors = [...]RGB{
	KindHydrogen:  {R: 230, G: 230, B: 240},
	KindOxygen:    {R: 220, G: 60, B: 50},
	KindTitanium:  {R: 150, G: 160, B: 175},
	KindUranium:   {R: 90, G: 210, B: 70},
	KindPlutonium: {R: 150, G: 70, B: 200},
	KindGold:      {R: 245, G: 190, B: 40},
}

// KindColor returns the dominant colour of an obstacle kind.
func KindColor(k ObstacleKind) RGB {
	switch {
	case k.IsAtom():
		return atomColors[k]
	case k == KindElectricWave:
		return Palette.Electric
	default:
		return Palette.Magnetic
	}
}
