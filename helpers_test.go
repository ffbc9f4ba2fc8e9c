package carnage

import "image"
import "image/color"

import "github.com/SnowyMouse/carnage-reporter/mono"
import "github.com/SnowyMouse/carnage-reporter/tagfont"

// Glyph geometry for the synthetic test font. Bitmaps fill most of the
// line box so that rows pack the way the real scoreboard does.
const (
	testGlyphWidth  = 5
	testGlyphHeight = 16
	testAdvance     = 6
)

// Whether the synthetic glyph for the given code has ink at (x, y).
// Column 0 is always solid so every bitmap row of every glyph carries
// ink (row segmentation depends on that); the remaining columns hold a
// pseudo-random pattern unique to the code.
func testGlyphInk(code byte, x, y int) bool {
	if x == 0 { return true }
	hash := uint32(code)*2654435761 + uint32(y*testGlyphWidth+x)*2246822519
	hash ^= hash >> 15
	return hash&0x10000 != 0
}

// Builds an in-memory font covering letters, digits, minus and space,
// with distinct glyph patterns per character.
func testFont() *tagfont.Font {
	font := &tagfont.Font{AscendingHeight: 14, DescendingHeight: 4}
	charset := "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-"
	for i := 0; i < len(charset); i++ {
		code := charset[i]
		offset := uint32(len(font.Pixels))
		for y := 0; y < testGlyphHeight; y++ {
			for x := 0; x < testGlyphWidth; x++ {
				if testGlyphInk(code, x, y) {
					font.Pixels = append(font.Pixels, 0xFF)
				} else {
					font.Pixels = append(font.Pixels, 0x00)
				}
			}
		}
		font.Glyphs[code] = tagfont.Glyph{
			CharacterWidth: testAdvance,
			BitmapWidth:    testGlyphWidth,
			BitmapHeight:   testGlyphHeight,
			BitmapOriginY:  font.AscendingHeight,
			PixelsOffset:   offset,
		}
	}
	font.Glyphs[' '] = tagfont.Glyph{CharacterWidth: testAdvance}
	return font
}

var (
	testWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	testRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	testBlue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// Paints every inked pixel of a rasterized string onto the screenshot
// with the given tint, simulating how the game renders scoreboard text.
func stamp(rgba *image.RGBA, text *mono.Image, x, y int, tint color.RGBA) {
	for py := 0; py < text.Height; py++ {
		for px := 0; px < text.Width; px++ {
			if text.Pix[px+py*text.Width] > 0 {
				rgba.SetRGBA(x+px, y+py, tint)
			}
		}
	}
}

// The fixed synthetic layout: a header line plus rows at a line-height
// pitch, with a two-pixel gap between the ink of consecutive rows.
const (
	testNameX    = 140
	testScoreX   = 260
	testKillsX   = 320
	testAssistsX = 380
	testDeathsX  = 440
	testHeaderY  = 126
	testRowPitch = 18
)

type testRow struct {
	name    string
	tint    color.RGBA
	score   string
	kills   string
	assists string
	deaths  string
}

// Renders a complete synthetic scoreboard screenshot.
func testScreenshot(font *tagfont.Font, rows []testRow) *Screenshot {
	rgba := image.NewRGBA(image.Rect(0, 0, 640, ScreenHeight))
	stamp(rgba, font.DrawText("Name"), testNameX, testHeaderY, testWhite)
	stamp(rgba, font.DrawText("Score"), testScoreX, testHeaderY, testWhite)
	stamp(rgba, font.DrawText("Kills"), testKillsX, testHeaderY, testWhite)
	stamp(rgba, font.DrawText("Assists"), testAssistsX, testHeaderY, testWhite)
	stamp(rgba, font.DrawText("Deaths"), testDeathsX, testHeaderY, testWhite)

	for i, row := range rows {
		y := testHeaderY + (i+1)*testRowPitch
		stamp(rgba, font.DrawText(row.name), testNameX, y, row.tint)
		stamp(rgba, font.DrawText(row.score), testScoreX, y, testWhite)
		stamp(rgba, font.DrawText(row.kills), testKillsX, y, testWhite)
		stamp(rgba, font.DrawText(row.assists), testAssistsX, y, testWhite)
		stamp(rgba, font.DrawText(row.deaths), testDeathsX, y, testWhite)
	}

	screenshot, err := FromImage(rgba)
	if err != nil { panic(err) } // the synthetic image is always 480 tall
	return screenshot
}
