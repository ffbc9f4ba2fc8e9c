package carnage

import "github.com/pkg/errors"

import "github.com/sirupsen/logrus"

// Column left edges and the header row top, derived once by calibration
// and held constant for the remainder of the run.
type Anchors struct {
	NameX    int
	ScoreX   int
	KillsX   int
	AssistsX int
	DeathsX  int
	RowY     int // header row top, also where row segmentation starts
}

// Locates the five fixed header labels and derives the column layout.
//
// The labels are searched in a fixed dependency chain: each subsequent
// label's search window starts at the previous label's found x, slightly
// above the header row, encoding the near-horizontal alignment of the
// header line. A best score below the header threshold means the
// screenshot is not a recognizable scoreboard and is a fatal error.
func (self *Engine) calibrate() (Anchors, error) {
	var anchors Anchors
	backtrack := self.options.HeaderBacktrack

	nameX, nameY, err := self.findHeader("Name", self.options.SearchOriginX, self.options.SearchOriginY)
	if err != nil { return anchors, err }
	scoreX, _, err := self.findHeader("Score", nameX, nameY-backtrack)
	if err != nil { return anchors, err }
	killsX, _, err := self.findHeader("Kills", scoreX, nameY-backtrack)
	if err != nil { return anchors, err }
	assistsX, _, err := self.findHeader("Assists", killsX, nameY-backtrack)
	if err != nil { return anchors, err }
	deathsX, _, err := self.findHeader("Deaths", assistsX, nameY-backtrack)
	if err != nil { return anchors, err }

	anchors = Anchors{
		NameX:    nameX,
		ScoreX:   scoreX,
		KillsX:   killsX,
		AssistsX: assistsX,
		DeathsX:  deathsX,
		RowY:     nameY,
	}
	return anchors, nil
}

// Exhaustively scans for the single best placement of the given label
// within the window starting at (minX, minY): one search height tall and
// extending to the screenshot's right edge.
func (self *Engine) findHeader(text string, minX, minY int) (foundX, foundY int, err error) {
	img := self.screenshot.Mono
	template := self.font.DrawTemplate(text)

	bestScore := 0.0
	for y := minY; y < minY+self.searchHeight(); y++ {
		for x := minX; x < img.Width; x++ {
			score := img.Match(template, x, y)
			if score > bestScore {
				bestScore = score
				foundX, foundY = x, y
			}
		}
	}

	if bestScore < self.options.HeaderThreshold {
		return foundX, foundY, errors.Errorf(
			"failed to find %q: best guess was %d,%d, but it only got a %.2f%% match",
			text, foundX, foundY, bestScore*100,
		)
	}
	self.logger.WithFields(logrus.Fields{
		"text":  text,
		"x":     foundX,
		"y":     foundY,
		"score": bestScore,
	}).Debug("header located")
	return foundX, foundY, nil
}
