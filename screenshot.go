package carnage

import "os"
import "image"
import "image/draw"

import _ "image/gif"
import _ "image/jpeg"
import _ "image/png"
import _ "golang.org/x/image/bmp"

import "github.com/pkg/errors"

import "github.com/SnowyMouse/carnage-reporter/mono"

// All layout anchors and line-height constants are calibrated for one
// fixed vertical resolution; other sizes are rejected outright.
const ScreenHeight = 480

// A decoded screenshot plus its derived monochrome counterpart. Mono is
// already thresholded. Both are read-only after creation; the raw RGBA
// pixels are kept around because the team classifier needs original
// channel values, not binarized ink.
type Screenshot struct {
	RGBA *image.RGBA
	Mono *mono.Image
}

// Decodes the image file at the given path. PNG, JPEG, GIF and BMP are
// supported.
func LoadScreenshot(path string) (*Screenshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open screenshot %s", path)
	}
	img, _, err := image.Decode(file)
	_ = file.Close()
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode screenshot %s", path)
	}
	return FromImage(img)
}

// Wraps an already decoded image, deriving the thresholded monochrome
// buffer. The image must be exactly [ScreenHeight] pixels tall; width is
// unconstrained.
func FromImage(img image.Image) (*Screenshot, error) {
	bounds := img.Bounds()
	if bounds.Dy() != ScreenHeight {
		return nil, errors.Errorf(
			"cannot support %dx%d images, only %d-line screenshots are supported",
			bounds.Dx(), bounds.Dy(), ScreenHeight,
		)
	}

	rgba, isRGBA := img.(*image.RGBA)
	if !isRGBA || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	monochrome := mono.FromRGBA(rgba)
	monochrome.Threshold()
	return &Screenshot{RGBA: rgba, Mono: monochrome}, nil
}
