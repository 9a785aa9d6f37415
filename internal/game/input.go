package game

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Snapshot reads the controls: arrows or W/S to move, Space to retry after
// a loss, Esc or closing the window to quit.
func (in *Input) Snapshot(window *glfw.Window) InputState {
	return InputState{
		Up:    held(window, glfw.KeyUp, glfw.KeyW),
		Down:  held(window, glfw.KeyDown, glfw.KeyS),
		Quit:  window.ShouldClose() || held(window, glfw.KeyEscape),
		Retry: in.JustPressed(window, glfw.KeySpace),
	}
}
