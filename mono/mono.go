package mono

import "image"

// Luma weights. They intentionally favor red and blue over green, unlike
// standard BT.601/709 luma, because scoreboard ink is red, blue or white.
// They must add up to 255 so that pure white maps back to 255.
const (
	redWeight   = 0x90
	greenWeight = 0x0F
	blueWeight  = 0x60
)

// A single-channel image with one byte of intensity per pixel, stored in
// row-major order. When the image is the result of rasterizing a string,
// Text records that string for bookkeeping (e.g. so a whole-name template
// remembers which name it renders).
type Image struct {
	Width  int
	Height int
	Pix    []uint8
	Text   string
}

// Creates a zeroed (fully ink-free) image of the given size.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Converts a single RGBA pixel to its weighted intensity. Each channel is
// scaled by its weight with standard rounding, matching the conversion
// applied to full screenshots by [FromRGBA].
func Luma(r, g, b uint8) uint8 {
	value := (uint32(r)*redWeight + 128) / 255
	value += (uint32(g)*greenWeight + 128) / 255
	value += (uint32(b)*blueWeight + 128) / 255
	return uint8(value)
}

// Converts an RGBA image to a monochrome intensity image. The alpha
// channel is ignored.
func FromRGBA(rgba *image.RGBA) *Image {
	bounds := rgba.Bounds()
	img := New(bounds.Dx(), bounds.Dy())
	index := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := rgba.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Pix[index] = Luma(rgba.Pix[offset], rgba.Pix[offset+1], rgba.Pix[offset+2])
			index += 1
			offset += 4
		}
	}
	return img
}
