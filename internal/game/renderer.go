package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Per-frame buffer capacities.
const (
	maxQuadsPerBatch = 256
	maxDots          = MaxParticles
	floatsPerVertex  = 8 // pos(2) + uv(2) + color(4)
	floatsPerDot     = 7 // pos(2) + size(1) + color(4)
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws in logical screen pixels; the projection maps them onto
// whatever framebuffer size the window reports.
type Renderer struct {
	width, height float32 // logical screen size

	// Textured quad program (sprites and text).
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32
	quadURes int32
	quadUTex int32

	// Point-sprite program for sparks.
	dotProg        uint32
	dotVAO         uint32
	dotVBO         uint32
	dotURes        int32
	dotUPixelScale int32

	spriteTex [numSprites]uint32
	fontTex   uint32

	// Pending sprite batch; flushed on texture change and at frame end.
	quadBuf []float32
	quadTex uint32

	textBuf []float32
	dotBuf  []float32

	pixelScale float32
}

func NewRenderer(cfg *Config) (*Renderer, error) {
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	dotProg, err := linkProgram(dotVertSrc, dotFragSrc)
	if err != nil {
		gl.DeleteProgram(quadProg)
		return nil, fmt.Errorf("dot program: %w", err)
	}

	r := &Renderer{
		width:      float32(cfg.ScreenWidth),
		height:     float32(cfg.ScreenHeight),
		quadProg:   quadProg,
		dotProg:    dotProg,
		pixelScale: 1,
	}

	// Quad VAO/VBO: streaming triangles, 6 vertices per quad.
	var qVAO, qVBO uint32
	gl.GenVertexArrays(1, &qVAO)
	gl.GenBuffers(1, &qVBO)
	gl.BindVertexArray(qVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, qVBO)

	stride := int32(floatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuadsPerBatch*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.quadVAO = qVAO
	r.quadVBO = qVBO

	gl.UseProgram(quadProg)
	r.quadURes = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))
	r.quadUTex = gl.GetUniformLocation(quadProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.quadUTex, 0)

	// Dot VAO/VBO.
	var dVAO, dVBO uint32
	gl.GenVertexArrays(1, &dVAO)
	gl.GenBuffers(1, &dVBO)
	gl.BindVertexArray(dVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, dVBO)

	dStride := int32(floatsPerDot * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxDots*int(dStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, dStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aSize
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, dStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, dStride, glOffset(3*4))
	r.dotVAO = dVAO
	r.dotVBO = dVBO

	gl.UseProgram(dotProg)
	r.dotURes = gl.GetUniformLocation(dotProg, gl.Str("uResolution\x00"))
	r.dotUPixelScale = gl.GetUniformLocation(dotProg, gl.Str("uPixelScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.dotVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.dotVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.quadProg, r.dotProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for i := range r.spriteTex {
		if r.spriteTex[i] != 0 {
			gl.DeleteTextures(1, &r.spriteTex[i])
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if fbH > 0 {
		r.pixelScale = float32(fbH) / r.height
	}
	r.quadBuf = r.quadBuf[:0]
	r.quadTex = 0
	r.textBuf = r.textBuf[:0]
	r.dotBuf = r.dotBuf[:0]
}

// EndFrame draws sprites, then sparks, then text on top.
func (r *Renderer) EndFrame() {
	r.flushQuads()
	r.flushDots()
	r.flushText()
}

// drawQuads uploads buf as textured triangles and draws them with tex.
func (r *Renderer) drawQuads(buf []float32, tex uint32) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.Uniform2f(r.quadURes, r.width, r.height)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(buf) / floatsPerVertex
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// appendQuad queues a screen-space quad with UVs and a colour tint.
func appendQuad(buf []float32, x0, y0, x1, y1, u0, v0, u1, v1 float32, col RGB, a float32) []float32 {
	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0

	// Two triangles: TL, TR, BL then TR, BR, BL.
	return append(buf,
		x0, y0, u0, v0, cr, cg, cb, a,
		x1, y0, u1, v0, cr, cg, cb, a,
		x0, y1, u0, v1, cr, cg, cb, a,
		x1, y0, u1, v0, cr, cg, cb, a,
		x1, y1, u1, v1, cr, cg, cb, a,
		x0, y1, u0, v1, cr, cg, cb, a,
	)
}
