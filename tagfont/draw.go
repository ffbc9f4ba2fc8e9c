package tagfont

import "github.com/SnowyMouse/carnage-reporter/mono"

// Glyph pixels are copied at 75% of their stored intensity, which keeps
// rasterized ink distinguishable from thresholded screenshot ink while
// still clearing the binarization minimum.
const attenuationNum, attenuationDen = 3, 4

// Rasterizes the given byte string into a monochrome image.
//
// The image height is always the font's line height and its width the sum
// of each character's advance. Characters are placed left to right at
// (cursor, ascending height - bitmap origin y); destination pixels that
// fall outside the image are silently dropped, which can happen when a
// glyph's bitmap exceeds its advance-width bounding box. The cursor always
// advances by the full advance width, so blank and space glyphs still take
// up room. Unknown character codes render as pure advance with no ink.
func (self *Font) DrawText(text string) *mono.Image {
	img := mono.New(self.TextWidth(text), self.LineHeight())
	img.Text = text

	xCursor := 0
	for i := 0; i < len(text); i++ {
		glyph := &self.Glyphs[text[i]]
		bitmapWidth := int(glyph.BitmapWidth)
		bitmapHeight := int(glyph.BitmapHeight)
		if bitmapWidth > 0 && bitmapHeight > 0 {
			top := int(self.AscendingHeight) - int(glyph.BitmapOriginY)
			pixels := self.Pixels[glyph.PixelsOffset:]
			for y := 0; y < bitmapHeight; y++ {
				dstY := top + y
				if dstY < 0 || dstY >= img.Height { continue }
				for x := 0; x < bitmapWidth; x++ {
					dstX := xCursor + x
					if dstX < 0 || dstX >= img.Width { continue }
					value := uint32(pixels[x+y*bitmapWidth]) * attenuationNum / attenuationDen
					img.Pix[dstX+dstY*img.Width] = uint8(value)
				}
			}
		}
		xCursor += int(glyph.CharacterWidth)
	}
	return img
}

// Rasterizes and immediately thresholds the given string, the common
// preparation step for anything that will be used as a match template.
func (self *Font) DrawTemplate(text string) *mono.Image {
	img := self.DrawText(text)
	img.Threshold()
	return img
}
