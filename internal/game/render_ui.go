package game

import "github.com/go-gl/gl/v4.1-core/gl"

// InitFont uploads the basicfont atlas used for the HUD.
func (r *Renderer) InitFont() {
	r.fontTex = uploadTexture(BuildFontAtlas(), gl.NEAREST)
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB) {
	if ch < 32 || ch > 126 {
		return
	}
	c := int(ch)
	column := c % FontCols
	row := c / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale

	r.textBuf = appendQuad(r.textBuf, sx, sy, sx+w, sy+h, u0, v0, u1, v1, col, 1)
}

// DrawString queues a string at screen pixel position (sx, sy) with given scale.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// flushText draws all buffered text quads and clears the buffer.
func (r *Renderer) flushText() {
	r.drawQuads(r.textBuf, r.fontTex)
	r.textBuf = r.textBuf[:0]
}
