package carnage

import "strconv"

import "github.com/SnowyMouse/carnage-reporter/mono"
import "github.com/SnowyMouse/carnage-reporter/tagfont"

// Visually confusable character pairs, checked in this fixed order. The
// greedy per-character decoder systematically trips over these, so names
// get a second whole-string pass that re-renders both alternatives and
// keeps whichever matches the row better.
var homoglyphPairs = [6][2]byte{
	{'l', 'i'}, {'I', 'i'}, {'I', 'l'}, {'2', 'Z'}, {'a', 'e'}, {'n', 'm'},
}

// Templates for the stat columns: the ten numerals plus the minus sign.
func numeralTemplates(font *tagfont.Font) []*mono.Image {
	templates := make([]*mono.Image, 0, 11)
	for digit := byte('0'); digit <= '9'; digit++ {
		templates = append(templates, font.DrawTemplate(string(rune(digit))))
	}
	return append(templates, font.DrawTemplate("-"))
}

// Templates for the name column: every printable ASCII code the font can
// actually render.
func printableTemplates(font *tagfont.Font) []*mono.Image {
	templates := make([]*mono.Image, 0, 0x7F-0x20)
	for code := byte(' '); code < 0x7F; code++ {
		if font.Glyphs[code].CharacterWidth == 0 { continue }
		templates = append(templates, font.DrawTemplate(string(rune(code))))
	}
	return templates
}

// Decodes the text found in the column span [searchX, endX) of the row at
// searchY, by greedily matching candidate glyph templates.
//
// The span's effective end is determined first: scanning rightward while
// tracking a drought of consecutive ink-free columns (only the row's
// interior band is inspected) trims trailing blank space before any
// matching happens. Then, while the cursor remains left of the trimmed
// end, every candidate is tried at every offset within the jitter radius
// and the single best match wins; candidates whose half-width would
// overshoot the trimmed end are skipped. The cursor advances by the
// winner's tabulated width rather than the offset actually used, which
// prevents drift from accumulating. No candidate scoring above zero ends
// the string.
func (self *Engine) stringAt(searchX, searchY, endX int, table []*mono.Image, fixNames bool) string {
	img := self.screenshot.Mono
	jitter := self.options.Jitter

	maxX := searchX + 1
	drought := 0
	bandEnd := min(searchY+self.searchHeight(), img.Height)
	for ; maxX < endX; maxX++ {
		drought += 1
		for y := searchY + 4; y < bandEnd; y++ {
			if img.Pix[maxX+y*img.Width] != 0 {
				drought = 0
				break
			}
		}
	}
	maxX -= drought

	decoded := []byte{}
	x := searchX
	for x < maxX {
		bestScore := 0.0
		bestWidth := -1
		var bestChar byte
		for offsetY := -jitter; offsetY <= jitter; offsetY++ {
			for offsetX := -jitter; offsetX <= jitter; offsetX++ {
				for _, candidate := range table {
					if float64(x)+float64(candidate.Width)*0.5 > float64(maxX) { continue }
					score := img.Match(candidate, x+offsetX, searchY+offsetY)
					if score > bestScore {
						bestScore = score
						bestChar = candidate.Text[0]
						bestWidth = candidate.Width
					}
				}
			}
		}
		if bestWidth < 0 { break }
		x += bestWidth
		decoded = append(decoded, bestChar)
	}

	for len(decoded) > 0 && decoded[len(decoded)-1] == ' ' {
		decoded = decoded[:len(decoded)-1]
	}

	text := string(decoded)
	if fixNames { text = self.fixHomoglyphs(text, searchX, searchY) }
	return text
}

// The post-hoc homoglyph correction pass. For each position holding
// either character of a confusable pair, the whole current string is
// re-rendered with each alternative substituted and re-matched against
// the original row position; the better-scoring alternative stays. Ties
// keep the pair's second character.
func (self *Engine) fixHomoglyphs(text string, searchX, searchY int) string {
	img := self.screenshot.Mono
	buffer := []byte(text)
	for i := range buffer {
		for _, pair := range homoglyphPairs {
			if buffer[i] != pair[0] && buffer[i] != pair[1] { continue }

			buffer[i] = pair[0]
			scoreA := img.Match(self.font.DrawTemplate(string(buffer)), searchX, searchY)
			buffer[i] = pair[1]
			scoreB := img.Match(self.font.DrawTemplate(string(buffer)), searchX, searchY)
			if scoreA > scoreB { buffer[i] = pair[0] }
		}
	}
	return string(buffer)
}

// Mimics strtol: a stat cell that decodes to garbage or to nothing at
// all simply counts as zero.
func parseStat(text string) int {
	value, err := strconv.Atoi(text)
	if err != nil { return 0 }
	return value
}
