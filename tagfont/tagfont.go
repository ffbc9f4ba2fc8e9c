package tagfont

// Metrics for a single character code, plus the location of its bitmap in
// the font's shared pixel pool. A zero value renders as pure advance with
// no ink, which is also how unknown character codes behave.
type Glyph struct {
	CharacterWidth int16 // advance, independent of the bitmap's width
	BitmapWidth    int16
	BitmapHeight   int16
	BitmapOriginX  int16
	BitmapOriginY  int16
	PixelsOffset   uint32 // into Font.Pixels
}

// A parsed font tag resource. One glyph slot exists per possible 8-bit
// character code; codes without a glyph keep the zero value.
type Font struct {
	AscendingHeight  int16
	DescendingHeight int16
	LeadingHeight    int16
	LeadingWidth     int16
	Glyphs           [256]Glyph
	Pixels           []uint8 // shared monochrome glyph pixel pool
}

// The fixed line height used for all rasterization and row matching.
func (self *Font) LineHeight() int {
	return int(self.AscendingHeight) + int(self.DescendingHeight)
}

// The total advance of the given text, without rasterizing anything.
func (self *Font) TextWidth(text string) int {
	width := 0
	for i := 0; i < len(text); i++ {
		width += int(self.Glyphs[text[i]].CharacterWidth)
	}
	return width
}
