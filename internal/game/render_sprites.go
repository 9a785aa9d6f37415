package game

import "github.com/go-gl/gl/v4.1-core/gl"

var white = RGB{R: 255, G: 255, B: 255}

func uploadTexture(img *SpriteImage, filter int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(img.W), int32(img.H), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

// InitSprites generates and uploads every sprite texture.
func (r *Renderer) InitSprites() {
	for s := Sprite(0); s < numSprites; s++ {
		r.spriteTex[s] = uploadTexture(GenerateSprite(s), gl.LINEAR)
	}
}

// DrawSprite queues sprite s stretched over rect.
func (r *Renderer) DrawSprite(s Sprite, rect RectF) {
	if s >= numSprites {
		return
	}
	tex := r.spriteTex[s]
	if tex != r.quadTex || len(r.quadBuf) >= maxQuadsPerBatch*6*floatsPerVertex {
		r.flushQuads()
		r.quadTex = tex
	}
	r.quadBuf = appendQuad(r.quadBuf,
		float32(rect.X0), float32(rect.Y0), float32(rect.X1), float32(rect.Y1),
		0, 0, 1, 1, white, 1)
}

func (r *Renderer) flushQuads() {
	r.drawQuads(r.quadBuf, r.quadTex)
	r.quadBuf = r.quadBuf[:0]
}

// DrawDot queues a round spark.
func (r *Renderer) DrawDot(x, y, size float64, col RGB, alpha float64) {
	if len(r.dotBuf) >= maxDots*floatsPerDot {
		return
	}
	r.dotBuf = append(r.dotBuf,
		float32(x), float32(y), float32(size),
		float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0, float32(clampF(alpha, 0, 1)),
	)
}

func (r *Renderer) flushDots() {
	if len(r.dotBuf) == 0 {
		return
	}
	gl.UseProgram(r.dotProg)
	gl.BindVertexArray(r.dotVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.dotVBO)
	gl.Uniform2f(r.dotURes, r.width, r.height)
	gl.Uniform1f(r.dotUPixelScale, r.pixelScale)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.dotBuf) / floatsPerDot
	gl.BufferData(gl.ARRAY_BUFFER, len(r.dotBuf)*4, gl.Ptr(r.dotBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	r.dotBuf = r.dotBuf[:0]
}
