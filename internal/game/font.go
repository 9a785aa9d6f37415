package game

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BuildFontAtlas rasterises printable ASCII from basicfont.Face7x13 into a
// FontCols x FontRows grid of FontCellW x FontCellH cells, white glyphs on
// transparent, indexed by code point.
func BuildFontAtlas() *SpriteImage {
	face := basicfont.Face7x13
	mask := image.NewAlpha(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
	}
	for c := 32; c < 127; c++ {
		col := c % FontCols
		row := c / FontCols
		d.Dot = fixed.P(col*FontCellW, row*FontCellH+face.Ascent)
		d.DrawString(string(rune(c)))
	}

	atlas := newSpriteImage(FontAtlasW, FontAtlasH)
	rgba := image.NewNRGBA(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	draw.DrawMask(rgba, rgba.Bounds(), image.White, image.Point{}, mask, image.Point{}, draw.Src)
	copy(atlas.Pix, rgba.Pix)
	return atlas
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}
