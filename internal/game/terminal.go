package game

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses but no releases; a held key shows up as a
// stream of repeats. A press counts as held for this long.
const termKeyHold = 0.12

// cellGrid maps logical screen pixels onto terminal cells.
type cellGrid struct {
	cols, rows int
	sx, sy     float64 // logical px per cell
}

func newCellGrid(cols, rows int, screenW, screenH float64) cellGrid {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return cellGrid{
		cols: cols,
		rows: rows,
		sx:   screenW / float64(cols),
		sy:   screenH / float64(rows),
	}
}

// cell returns the cell containing logical point (x, y).
func (g cellGrid) cell(x, y float64) (int, int) {
	return int(x / g.sx), int(y / g.sy)
}

// span returns the inclusive cell range covered by r, at least one cell,
// clipped to the grid. ok is false when r is entirely off the grid.
func (g cellGrid) span(r RectF) (c0, r0, c1, r1 int, ok bool) {
	c0, r0 = g.cell(r.X0, r.Y0)
	c1, r1 = g.cell(r.X1-0.001, r.Y1-0.001)
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	if c1 < 0 || r1 < 0 || c0 >= g.cols || r0 >= g.rows {
		return 0, 0, 0, 0, false
	}
	return clamp(c0, 0, g.cols-1), clamp(r0, 0, g.rows-1),
		clamp(c1, 0, g.cols-1), clamp(r1, 0, g.rows-1), true
}

// spriteGlyph is how a sprite fills its cells in the terminal.
func spriteGlyph(s Sprite) (rune, RGB) {
	switch s {
	case SpriteElectron:
		return '●', Palette.Electron
	case SpriteAccelerator:
		return '▓', Palette.Accelerator
	case obstacleSprite(KindElectricWave):
		return '≈', Palette.Electric
	case obstacleSprite(KindMagneticWave):
		return '∿', Palette.Magnetic
	}
	k := ObstacleKind(s)
	return []rune("HOTUPG")[k], KindColor(k)
}

func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Terminal is the tcell platform. Input is read on a goroutine and drained
// once per frame by Poll.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	start  time.Time
	grid   cellGrid
	cfg    *Config

	upUntil   float64
	downUntil float64
	quit      bool
	bg        tcell.Style
}

func NewTerminal(cfg *Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		start:  time.Now(),
		cfg:    cfg,
		bg:     tcell.StyleDefault.Background(tcellColor(Palette.Background)).Foreground(tcellColor(Palette.Text)),
	}
	t.resize()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			t.events <- ev
		}
	}()
	return t, nil
}

func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	t.grid = newCellGrid(cols, rows, t.cfg.ScreenWidth, t.cfg.ScreenHeight)
}

func (t *Terminal) Now() float64 { return time.Since(t.start).Seconds() }

func (t *Terminal) Poll() InputState {
	now := t.Now()
	var in InputState
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.quit = true
				in.Quit = true
				return in
			}
			t.handle(ev, now, &in)
			continue
		default:
		}
		break
	}
	in.Up = now < t.upUntil
	in.Down = now < t.downUntil
	in.Quit = in.Quit || t.quit
	return in
}

func (t *Terminal) handle(ev tcell.Event, now float64, in *InputState) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.quit = true
		case tcell.KeyUp:
			t.upUntil = now + termKeyHold
			t.downUntil = 0
		case tcell.KeyDown:
			t.downUntil = now + termKeyHold
			t.upUntil = 0
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				t.quit = true
			case 'w', 'k':
				t.upUntil = now + termKeyHold
				t.downUntil = 0
			case 's', 'j':
				t.downUntil = now + termKeyHold
				t.upUntil = 0
			case ' ':
				in.Retry = true
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
}

func (t *Terminal) BeginFrame() {
	t.screen.SetStyle(t.bg)
	t.screen.Clear()
}

func (t *Terminal) DrawSprite(s Sprite, r RectF) {
	c0, r0, c1, r1, ok := t.grid.span(r)
	if !ok {
		return
	}
	ch, col := spriteGlyph(s)
	style := t.bg.Foreground(tcellColor(col))
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (t *Terminal) DrawDot(x, y, size float64, col RGB, alpha float64) {
	if alpha < 0.3 {
		return
	}
	cx, cy := t.grid.cell(x, y)
	if cx < 0 || cy < 0 || cx >= t.grid.cols || cy >= t.grid.rows {
		return
	}
	t.screen.SetContent(cx, cy, '·', nil, t.bg.Foreground(tcellColor(col)))
}

// DrawText places one character per cell starting at the cell under (x, y);
// scale is ignored.
func (t *Terminal) DrawText(text string, x, y int, scale float32, col RGB) {
	cx, cy := t.grid.cell(float64(x), float64(y))
	style := t.bg.Foreground(tcellColor(col)).Bold(true)
	startX := cx
	for _, ch := range text {
		if ch == '\n' {
			cx = startX
			cy++
			continue
		}
		if cx >= 0 && cx < t.grid.cols && cy >= 0 && cy < t.grid.rows {
			t.screen.SetContent(cx, cy, ch, nil, style)
		}
		cx++
	}
}

// TextWidth reports the width in logical pixels, so centring math written
// for the desktop layout lands on the right cell.
func (t *Terminal) TextWidth(text string, scale float32) int {
	n := 0
	for _, ch := range text {
		if ch != '\n' {
			n++
		}
	}
	return int(float64(n) * t.grid.sx)
}

func (t *Terminal) EndFrame() {
	t.screen.Show()
}

func (t *Terminal) Close() {
	t.screen.Fini()
}
