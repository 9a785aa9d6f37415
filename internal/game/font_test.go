package game

import "testing"

func cellCoverage(atlas *SpriteImage, ch rune) int {
	col := int(ch) % FontCols
	row := int(ch) / FontCols
	n := 0
	for y := row * FontCellH; y < (row+1)*FontCellH; y++ {
		for x := col * FontCellW; x < (col+1)*FontCellW; x++ {
			if _, a := atlas.At(x, y); a > 0 {
				n++
			}
		}
	}
	return n
}

func TestFontAtlasGlyphs(t *testing.T) {
	atlas := BuildFontAtlas()
	if atlas.W != FontAtlasW || atlas.H != FontAtlasH {
		t.Fatalf("atlas %dx%d, want %dx%d", atlas.W, atlas.H, FontAtlasW, FontAtlasH)
	}
	for _, ch := range "AZaz09!:" {
		if cellCoverage(atlas, ch) == 0 {
			t.Fatalf("glyph %q is empty", ch)
		}
	}
	if n := cellCoverage(atlas, ' '); n != 0 {
		t.Fatalf("space has %d lit pixels", n)
	}
	c, _ := atlas.At(FontCellW*('A'%FontCols)+3, FontCellH*('A'/FontCols)+6)
	if c != (RGB{}) && c != (RGB{R: 255, G: 255, B: 255}) {
		t.Fatalf("glyph colour %v, want white", c)
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text  string
		scale float32
		want  int
	}{
		{"", 1, 0},
		{"Score: 12", 1, 9 * FontCellW},
		{"Score: 12", 2, 18 * FontCellW},
		{"ab\nlonger", 1, 6 * FontCellW},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text, tt.scale); got != tt.want {
			t.Fatalf("TextWidth(%q, %v) = %d, want %d", tt.text, tt.scale, got, tt.want)
		}
	}
}
