package carnage

import "io"

import "github.com/sirupsen/logrus"

import "github.com/SnowyMouse/carnage-reporter/mono"
import "github.com/SnowyMouse/carnage-reporter/tagfont"

// The recognition engine. It owns the font, the screenshot and every
// tunable, and exposes a single entry point, [Engine.Run]. An engine is
// good for one screenshot; build a new one per image.
type Engine struct {
	font       *tagfont.Font
	screenshot *Screenshot
	options    Options
	logger     *logrus.Logger

	anchors   Anchors
	numerals  []*mono.Image // templates for "0".."9" and "-"
	printable []*mono.Image // templates for every renderable ASCII code
}

// Creates an engine for the given font and screenshot. A nil logger
// disables logging.
func New(font *tagfont.Font, screenshot *Screenshot, options Options, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Engine{
		font:       font,
		screenshot: screenshot,
		options:    options,
		logger:     logger,
	}
}

// Vertical extent of all scan windows. The original layout tuning uses
// the ascending height alone here, not the full line height.
func (self *Engine) searchHeight() int {
	return int(self.font.AscendingHeight)
}

// Decodes the scoreboard: calibrates the column layout, walks the rows
// top to bottom, decodes each one and classifies its team. The optional
// name library shortcuts name decoding through whole-name templates; pass
// nil to always decode names per character.
//
// Returns an error if calibration fails; past that point every row scan
// is best-effort and cannot fail, only decode badly.
func (self *Engine) Run(names *NameLibrary) (*Game, error) {
	anchors, err := self.calibrate()
	if err != nil { return nil, err }
	self.anchors = anchors
	self.numerals = numeralTemplates(self.font)
	self.printable = printableTemplates(self.font)

	game := &Game{}
	yCursor := self.skipToNextLine(anchors.RowY)
	for self.rowPresent(yCursor) {
		player := self.decodeRow(yCursor, names)
		game.Players = append(game.Players, player)
		yCursor = self.skipToNextLine(yCursor)
	}

	// free-for-all unless some row was ever tagged red
	game.FFA = true
	for i := range game.Players {
		if game.Players[i].IsRed { game.FFA = false }
	}

	self.logger.WithFields(logrus.Fields{
		"rows": len(game.Players),
		"ffa":  game.FFA,
	}).Info("scoreboard decoded")
	return game, nil
}

// Advances the cursor past the current row: half a line down, then one
// pixel at a time while the rightmost column span still has ink. Stops on
// the first fully blank line, i.e. in the gap between rows. Checking the
// deaths column is enough since it is the rightmost one.
func (self *Engine) skipToNextLine(yCursor int) int {
	img := self.screenshot.Mono
	yCursor += self.searchHeight() / 2
	for yCursor < img.Height {
		blank := true
		for x := self.anchors.DeathsX; x < img.Width; x++ {
			if img.Pix[x+yCursor*img.Width] != 0 {
				blank = false
				break
			}
		}
		if blank { break }
		yCursor += 1
	}
	return yCursor
}

// Whether any ink exists in the rightmost column span across a full
// search band starting at the cursor. No ink means no more rows: this is
// the segmentation loop's exit condition.
func (self *Engine) rowPresent(yCursor int) bool {
	img := self.screenshot.Mono
	yEnd := min(yCursor+self.searchHeight(), img.Height)
	for y := yCursor; y < yEnd; y++ {
		for x := self.anchors.DeathsX; x < img.Width; x++ {
			if img.Pix[x+y*img.Width] > 0 { return true }
		}
	}
	return false
}

// Decodes one scoreboard row at the given cursor into a player entry.
func (self *Engine) decodeRow(yCursor int, names *NameLibrary) Player {
	var player Player
	anchors := self.anchors
	player.IsRed, _ = self.classifyRow(yCursor)

	decodedFromLibrary := false
	if names != nil && names.Size() > 0 {
		name, score, found := names.TakeBestMatch(
			self.screenshot.Mono,
			anchors.NameX, yCursor,
			self.options.NameJitter, self.options.NameThreshold,
		)
		if found {
			player.Name = name
			decodedFromLibrary = true
			self.logger.WithFields(logrus.Fields{
				"name":  name,
				"score": score,
			}).Debug("name taken from library")
		}
	}
	if !decodedFromLibrary {
		player.Name = self.stringAt(anchors.NameX, yCursor, anchors.ScoreX, self.printable, true)
	}

	player.Score = int8(parseStat(self.stringAt(anchors.ScoreX, yCursor, anchors.KillsX, self.numerals, false)))
	player.Kills = int8(parseStat(self.stringAt(anchors.KillsX, yCursor, anchors.AssistsX, self.numerals, false)))
	player.Assists = int8(parseStat(self.stringAt(anchors.AssistsX, yCursor, anchors.DeathsX, self.numerals, false)))
	player.Deaths = int8(parseStat(self.stringAt(anchors.DeathsX, yCursor, self.screenshot.Mono.Width, self.numerals, false)))

	self.logger.WithFields(logrus.Fields{
		"y":       yCursor,
		"name":    player.Name,
		"score":   player.Score,
		"kills":   player.Kills,
		"assists": player.Assists,
		"deaths":  player.Deaths,
		"red":     player.IsRed,
	}).Debug("row decoded")
	return player
}
