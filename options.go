package carnage

import "github.com/pkg/errors"

import "gopkg.in/ini.v1"

// Tunables for the recognition engine. The defaults are calibrated for
// the game's stock 480-line scoreboard and rarely need changing; an INI
// file can override them for modded layouts (see [LoadOptions]).
type Options struct {
	// Minimum match ratio for a header label to count as located.
	// Calibration fails fatally below this.
	HeaderThreshold float64

	// Minimum match ratio for a whole-name template from a names file
	// to be used instead of per-character decoding.
	NameThreshold float64

	// Top-left corner of the search window for the first header label.
	SearchOriginX int
	SearchOriginY int

	// How many pixels above the found header row the search window for
	// each subsequent header label starts.
	HeaderBacktrack int

	// Positional slack, in pixels, for per-character and whole-name
	// template matching respectively.
	Jitter     int
	NameJitter int
}

func DefaultOptions() Options {
	return Options{
		HeaderThreshold: 0.85,
		NameThreshold:   0.80,
		SearchOriginX:   120,
		SearchOriginY:   120,
		HeaderBacktrack: 10,
		Jitter:          3,
		NameJitter:      2,
	}
}

// Reads an INI file and overlays it over [DefaultOptions]. Keys that are
// absent keep their default; unknown keys are ignored.
//
// Recognized keys:
//
//	[match]
//	header_threshold = 0.85
//	name_threshold   = 0.80
//	[search]
//	origin_x    = 120
//	origin_y    = 120
//	backtrack   = 10
//	jitter      = 3
//	name_jitter = 2
func LoadOptions(path string) (Options, error) {
	options := DefaultOptions()
	file, err := ini.Load(path)
	if err != nil {
		return options, errors.Wrapf(err, "could not read config %s", path)
	}

	match := file.Section("match")
	options.HeaderThreshold = match.Key("header_threshold").MustFloat64(options.HeaderThreshold)
	options.NameThreshold = match.Key("name_threshold").MustFloat64(options.NameThreshold)

	search := file.Section("search")
	options.SearchOriginX = search.Key("origin_x").MustInt(options.SearchOriginX)
	options.SearchOriginY = search.Key("origin_y").MustInt(options.SearchOriginY)
	options.HeaderBacktrack = search.Key("backtrack").MustInt(options.HeaderBacktrack)
	options.Jitter = search.Key("jitter").MustInt(options.Jitter)
	options.NameJitter = search.Key("name_jitter").MustInt(options.NameJitter)
	return options, nil
}
