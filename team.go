package carnage

import "github.com/SnowyMouse/carnage-reporter/mono"

// Intensities above this count as team-colored ink.
const colorMinimum = 0x7F

// Tags a row red or blue by inspecting the ink in its name-to-kills
// column span. The first pixel that is ink in the thresholded buffer and
// whose intensity recomputed from the raw RGB channels also clears the
// minimum decides: red if its red channel beats its blue channel.
//
// Blue ink is dim enough under the luma weights that it never clears the
// raw minimum, and colorless free-for-all rows compare equal, so only
// genuinely red rows ever come back red. found reports whether any
// qualifying pixel existed at all.
func (self *Engine) classifyRow(yCursor int) (isRed, found bool) {
	img := self.screenshot.Mono
	rgba := self.screenshot.RGBA
	yEnd := min(yCursor+self.searchHeight(), img.Height)
	for y := yCursor; y < yEnd; y++ {
		for x := self.anchors.NameX; x < self.anchors.KillsX; x++ {
			if img.Pix[x+y*img.Width] <= colorMinimum { continue }
			offset := rgba.PixOffset(x, y)
			red := rgba.Pix[offset]
			green := rgba.Pix[offset+1]
			blue := rgba.Pix[offset+2]
			if mono.Luma(red, green, blue) <= colorMinimum { continue }
			return red > blue, true
		}
	}
	return false, false
}
