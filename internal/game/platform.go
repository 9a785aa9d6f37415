package game

// InputState is a per-frame snapshot of the controls.
type InputState struct {
	Up    bool
	Down  bool
	Quit  bool
	Retry bool // edge-triggered
}

// Sprite identifies a pre-sized visual. Obstacle kinds map onto the first
// sprites one to one.
type Sprite uint8

const (
	SpriteElectron Sprite = Sprite(numObstacleKinds) + iota
	SpriteAccelerator

	numSprites
)

func obstacleSprite(k ObstacleKind) Sprite { return Sprite(k) }

// Platform is everything the game needs from a rendering backend.
// Coordinates are logical screen pixels (Config.ScreenWidth x ScreenHeight).
type Platform interface {
	// Poll pumps the backend's events and returns the current controls.
	Poll() InputState
	// Now is a monotonic clock in seconds.
	Now() float64

	BeginFrame()
	DrawSprite(s Sprite, r RectF)
	// DrawDot draws a soft round spark centred at (x, y).
	DrawDot(x, y, size float64, col RGB, alpha float64)
	DrawText(text string, x, y int, scale float32, col RGB)
	TextWidth(text string, scale float32) int
	EndFrame()

	Close()
}
