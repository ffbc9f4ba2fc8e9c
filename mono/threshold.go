package mono

// Any intensity below this is considered ink-free after thresholding.
const thresholdMinimum = 0x4F

// Binarizes the image in place: every intensity below 0x4F becomes 0 and
// everything else becomes 0xFF. This normalizes anti-aliased screenshot
// text and rendered glyph templates into comparable binary images.
//
// The operation is idempotent.
func (self *Image) Threshold() {
	for i, value := range self.Pix {
		if value < thresholdMinimum {
			self.Pix[i] = 0
		} else {
			self.Pix[i] = 0xFF
		}
	}
}
