package game

import (
	"errors"
	"fmt"
	"math"
)

// Logical screen dimensions (in screen pixels). The desktop window opens at
// this size and the terminal renderer scales from it.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
)

// Frame pacing.
const (
	MaxFrameDt   = 0.1 // seconds; longer stalls are clamped
	GameOverHold = 2.0 // seconds the game-over screen stays up before exit
)

// Sprite footprints.
const (
	ElectronSize      = 64
	AtomSize          = 64
	WaveWidth         = 140
	WaveHeight        = 100
	AcceleratorWidth  = 220
	AcceleratorHeight = 160
	AcceleratorLeft   = 20
)

// Spawn layout.
const (
	SpawnJitterX     = 80 // px past the right edge
	SpawnMarginY     = 40 // px kept clear at top and bottom
	CompanionOffsetX = 40 // px between a gold atom and its companion
)

// Electric wave oscillation.
const (
	WaveAmplitude = 28.0
	WaveFreqMin   = 1.2
	WaveFreqMax   = 2.2
)

// DefaultAttraction applies to any atom without an entry in Config.Attraction.
const DefaultAttraction = 60.0

// Font atlas layout (32 cols x 4 rows, ASCII 0-127), rasterised from basicfont.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 32
	FontRows   = 4
	FontAtlasW = FontCellW * FontCols // 224
	FontAtlasH = FontCellH * FontRows // 52
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable the simulation reads. Speeds are px/s,
// durations are seconds.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64
	TargetFPS    int
	Seed         uint64

	PlayerSpeed  float64
	PlayerWidth  float64
	PlayerHeight float64

	ObstacleBaseSpeed    float64
	ObstacleAcceleration float64 // px/s^2
	AtomWidth            float64
	AtomHeight           float64
	WaveWidth            float64
	WaveHeight           float64

	SpawnIntervalMin float64
	SpawnIntervalMax float64
	SpawnJitterX     int
	SpawnMarginY     int
	CompanionKind    ObstacleKind
	CompanionOffsetX float64

	Attraction        map[ObstacleKind]float64
	DefaultAttraction float64
	AttractionRange   float64

	WaveAmplitude float64
	WaveFreqMin   float64
	WaveFreqMax   float64

	SlowDuration float64
	SlowFactor   float64

	IntroDuration float64
	IntroStartX   float64
	IntroTargetX  float64
	StartY        float64

	Mute       bool
	Debug      bool
	ExitOnLoss bool
}

// DefaultConfig returns the stock game tuning.
func DefaultConfig() *Config {
	accelCenterY := float64(ScreenHeight / 2)
	return &Config{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		TargetFPS:    TargetFPS,

		PlayerSpeed:  350,
		PlayerWidth:  ElectronSize,
		PlayerHeight: ElectronSize,

		ObstacleBaseSpeed:    300,
		ObstacleAcceleration: 5,
		AtomWidth:            AtomSize,
		AtomHeight:           AtomSize,
		WaveWidth:            WaveWidth,
		WaveHeight:           WaveHeight,

		SpawnIntervalMin: 0.9,
		SpawnIntervalMax: 1.6,
		SpawnJitterX:     SpawnJitterX,
		SpawnMarginY:     SpawnMarginY,
		CompanionKind:    KindGold,
		CompanionOffsetX: CompanionOffsetX,

		Attraction: map[ObstacleKind]float64{
			KindHydrogen:  40,
			KindOxygen:    60,
			KindTitanium:  120,
			KindUranium:   200,
			KindPlutonium: 170,
			KindGold:      150,
		},
		DefaultAttraction: DefaultAttraction,
		AttractionRange:   350,

		WaveAmplitude: WaveAmplitude,
		WaveFreqMin:   WaveFreqMin,
		WaveFreqMax:   WaveFreqMax,

		SlowDuration: 1.5,
		SlowFactor:   0.45,

		// The electron starts tucked inside the accelerator and slides out.
		IntroDuration: 1.6,
		IntroStartX:   AcceleratorLeft - 60,
		IntroTargetX:  100,
		StartY:        accelCenterY - ElectronSize/2,
	}
}

// AttractionFor returns the pull constant of an obstacle kind.
func (c *Config) AttractionFor(k ObstacleKind) float64 {
	if v, ok := c.Attraction[k]; ok {
		return v
	}
	return c.DefaultAttraction
}

// Footprint returns the sprite size of an obstacle kind.
func (c *Config) Footprint(k ObstacleKind) (w, h float64) {
	if k.IsAtom() {
		return c.AtomWidth, c.AtomHeight
	}
	return c.WaveWidth, c.WaveHeight
}

type namedFloat struct {
	name string
	v    float64
}

// floatFields names every float tunable, attraction constants included.
func (c *Config) floatFields() []namedFloat {
	fields := []namedFloat{
		{"screen width", c.ScreenWidth},
		{"screen height", c.ScreenHeight},
		{"player speed", c.PlayerSpeed},
		{"player width", c.PlayerWidth},
		{"player height", c.PlayerHeight},
		{"obstacle base speed", c.ObstacleBaseSpeed},
		{"obstacle acceleration", c.ObstacleAcceleration},
		{"atom width", c.AtomWidth},
		{"atom height", c.AtomHeight},
		{"wave width", c.WaveWidth},
		{"wave height", c.WaveHeight},
		{"spawn interval min", c.SpawnIntervalMin},
		{"spawn interval max", c.SpawnIntervalMax},
		{"companion offset", c.CompanionOffsetX},
		{"default attraction", c.DefaultAttraction},
		{"attraction range", c.AttractionRange},
		{"wave amplitude", c.WaveAmplitude},
		{"wave frequency min", c.WaveFreqMin},
		{"wave frequency max", c.WaveFreqMax},
		{"slow duration", c.SlowDuration},
		{"slow factor", c.SlowFactor},
		{"intro duration", c.IntroDuration},
		{"intro start x", c.IntroStartX},
		{"intro target x", c.IntroTargetX},
		{"start y", c.StartY},
	}
	for _, k := range AtomKinds {
		fields = append(fields, namedFloat{"attraction for " + k.String(), c.AttractionFor(k)})
	}
	return fields
}

// Validate rejects configurations that would produce silently wrong ranges.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	// Every check below is an ordered comparison, which NaN passes.
	for _, f := range c.floatFields() {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s is %g, want a finite number", f.name, f.v)
		}
	}

	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return invalid("screen size %gx%g must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TargetFPS <= 0 {
		return invalid("target fps %d must be positive", c.TargetFPS)
	}
	if c.PlayerWidth <= 0 || c.PlayerHeight <= 0 {
		return invalid("player size %gx%g must be positive", c.PlayerWidth, c.PlayerHeight)
	}
	if c.AtomWidth <= 0 || c.AtomHeight <= 0 || c.WaveWidth <= 0 || c.WaveHeight <= 0 {
		return invalid("obstacle sizes must be positive")
	}
	if c.PlayerHeight > c.ScreenHeight {
		return invalid("player height %g exceeds screen height %g", c.PlayerHeight, c.ScreenHeight)
	}
	if widest := max(c.PlayerWidth, c.AtomWidth, c.WaveWidth); widest > c.ScreenWidth {
		return invalid("sprite width %g exceeds screen width %g", widest, c.ScreenWidth)
	}
	tallest := max(c.AtomHeight, c.WaveHeight)
	if float64(2*c.SpawnMarginY)+tallest > c.ScreenHeight {
		return invalid("spawn margin %d leaves no room for a %g px obstacle", c.SpawnMarginY, tallest)
	}
	if c.SpawnMarginY < 0 || c.SpawnJitterX < 0 {
		return invalid("spawn margin and jitter must not be negative")
	}
	if c.PlayerSpeed <= 0 {
		return invalid("player speed %g must be positive", c.PlayerSpeed)
	}
	if c.ObstacleBaseSpeed <= 0 {
		return invalid("obstacle base speed %g must be positive", c.ObstacleBaseSpeed)
	}
	if c.ObstacleAcceleration < 0 {
		return invalid("obstacle acceleration %g must not be negative", c.ObstacleAcceleration)
	}
	if c.SpawnIntervalMin <= 0 {
		return invalid("spawn interval min %g must be positive", c.SpawnIntervalMin)
	}
	if c.SpawnIntervalMin > c.SpawnIntervalMax {
		return invalid("spawn interval min %g exceeds max %g", c.SpawnIntervalMin, c.SpawnIntervalMax)
	}
	if !c.CompanionKind.IsAtom() {
		return invalid("companion kind %s is not an atom", c.CompanionKind)
	}
	if c.CompanionOffsetX < 0 {
		return invalid("companion offset %g must not be negative", c.CompanionOffsetX)
	}
	for _, k := range AtomKinds {
		if c.AttractionFor(k) < 0 {
			return invalid("attraction for %s must not be negative", k)
		}
	}
	if c.AttractionRange <= 0 {
		return invalid("attraction range %g must be positive", c.AttractionRange)
	}
	if c.WaveAmplitude < 0 {
		return invalid("wave amplitude %g must not be negative", c.WaveAmplitude)
	}
	if c.WaveFreqMin > c.WaveFreqMax {
		return invalid("wave frequency min %g exceeds max %g", c.WaveFreqMin, c.WaveFreqMax)
	}
	if c.SlowDuration < 0 {
		return invalid("slow duration %g must not be negative", c.SlowDuration)
	}
	if c.SlowFactor <= 0 || c.SlowFactor > 1 {
		return invalid("slow factor %g must be in (0, 1]", c.SlowFactor)
	}
	if c.IntroDuration <= 0 {
		return invalid("intro duration %g must be positive", c.IntroDuration)
	}
	if c.StartY < 0 || c.StartY > c.ScreenHeight-c.PlayerHeight {
		return invalid("start y %g is off screen", c.StartY)
	}
	return nil
}
