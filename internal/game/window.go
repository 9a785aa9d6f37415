package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func initWindow(cfg *Config) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(int(cfg.ScreenWidth), int(cfg.ScreenHeight), "Electron Dodge Game", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}

// Desktop is the GLFW + OpenGL platform. It must be created and used on the
// main OS thread.
type Desktop struct {
	window *glfw.Window
	rend   *Renderer
	input  *Input
}

func NewDesktop(cfg *Config) (*Desktop, error) {
	window, err := initWindow(cfg)
	if err != nil {
		return nil, err
	}
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)

	rend, err := NewRenderer(cfg)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}
	rend.InitSprites()
	rend.InitFont()

	return &Desktop{window: window, rend: rend, input: NewInput()}, nil
}

func (d *Desktop) Poll() InputState {
	glfw.PollEvents()
	return d.input.Snapshot(d.window)
}

func (d *Desktop) Now() float64 { return glfw.GetTime() }

func (d *Desktop) BeginFrame() {
	fbW, fbH := d.window.GetFramebufferSize()
	d.rend.BeginFrame(fbW, fbH)
}

func (d *Desktop) DrawSprite(s Sprite, r RectF) { d.rend.DrawSprite(s, r) }

func (d *Desktop) DrawDot(x, y, size float64, col RGB, alpha float64) {
	d.rend.DrawDot(x, y, size, col, alpha)
}

func (d *Desktop) DrawText(text string, x, y int, scale float32, col RGB) {
	d.rend.DrawString(text, x, y, scale, col)
}

func (d *Desktop) TextWidth(text string, scale float32) int { return TextWidth(text, scale) }

func (d *Desktop) EndFrame() {
	d.rend.EndFrame()
	d.window.SwapBuffers()
}

func (d *Desktop) Close() {
	d.rend.Destroy()
	d.window.Destroy()
	glfw.Terminate()
}
