package mono

// Two intensities closer than this count as the same pixel when matching.
// The slack absorbs the differences between freshly rasterized glyphs and
// screenshot ink (attenuation, anti-aliasing, compression artifacts).
const matchTolerance = 0x10

// Scores how well the given template aligns against this image with its
// top-left corner placed at (x, y), returning a ratio in [0, 1].
//
// Any placement where the template does not fit entirely within the image
// scores 0, as does a template with zero area. Otherwise the score is the
// fraction of template pixels whose absolute intensity difference against
// the aligned image pixel is strictly below the tolerance.
func (self *Image) Match(template *Image, x, y int) float64 {
	if x < 0 || y < 0 { return 0 }
	if x+template.Width > self.Width || y+template.Height > self.Height {
		return 0
	}
	if template.Width == 0 || template.Height == 0 { return 0 }

	hits := 0
	total := template.Width * template.Height
	for ty := 0; ty < template.Height; ty++ {
		templateRow := template.Pix[ty*template.Width:]
		imageRow := self.Pix[x+(ty+y)*self.Width:]
		for tx := 0; tx < template.Width; tx++ {
			difference := int(templateRow[tx]) - int(imageRow[tx])
			if difference < 0 { difference = -difference }
			if difference < matchTolerance { hits += 1 }
		}
	}
	return float64(hits) / float64(total)
}
