// carnage recovers structured scoreboard data from an end-of-match
// screenshot using the game's own bitmap font tag as the only source of
// known glyph shapes. There is no general OCR model anywhere: arbitrary
// strings are rasterized with [tagfont] and located inside the screenshot
// by fuzzy pixel matching, and that single primitive drives layout
// calibration, row segmentation and text decoding alike.
//
// The whole computation is a single linear batch job over one image, so
// everything here is synchronous and single-threaded. All failure modes
// are fatal: a screenshot that can't be calibrated is simply not a
// recognizable scoreboard.
package carnage
