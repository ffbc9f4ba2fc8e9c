// carnage-reporter decodes an end-of-match scoreboard screenshot into a
// CSV table using the game's own font tag:
//
//	carnage-reporter [flags] <image> <font> <output.csv> [names.txt ...]
//
// The screenshot must be 480 pixels tall. Passing "-" as the output path
// writes the CSV to stdout. Any number of trailing names files can be
// supplied; each is a line-oriented list of candidate player names that
// the engine will prefer over per-character decoding when one matches a
// row closely enough.
package main

import "os"
import "flag"
import "fmt"

import "github.com/sirupsen/logrus"

import "github.com/SnowyMouse/carnage-reporter"
import "github.com/SnowyMouse/carnage-reporter/report"
import "github.com/SnowyMouse/carnage-reporter/tagfont"

var (
	configPath = flag.String("config", "", "INI file overriding engine tunables")
	statsPath  = flag.String("stats", "", "append the decoded game to this JSON match log")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image> <font> <output.csv> [names.txt ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) < 3 {
		flag.Usage()
		os.Exit(1)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose { logger.SetLevel(logrus.DebugLevel) }

	options := carnage.DefaultOptions()
	if *configPath != "" {
		var err error
		options, err = carnage.LoadOptions(*configPath)
		if err != nil { logger.Fatal(err) }
	}

	screenshot, err := carnage.LoadScreenshot(args[0])
	if err != nil { logger.Fatal(err) }
	font, err := tagfont.ParseFromPath(args[1])
	if err != nil { logger.Fatal(err) }

	var names *carnage.NameLibrary
	if len(args) > 3 {
		names = carnage.NewNameLibrary(font)
		for _, path := range args[3:] {
			added, err := names.ParseFromPath(path)
			if err != nil { logger.Fatal(err) }
			logger.WithFields(logrus.Fields{"path": path, "names": added}).Debug("name templates loaded")
		}
	}

	game, err := carnage.New(font, screenshot, options, logger).Run(names)
	if err != nil { logger.Fatal(err) }

	output := os.Stdout
	if args[2] != "-" {
		output, err = os.Create(args[2])
		if err != nil { logger.Fatal(err) }
	}
	err = report.WriteCSV(output, game)
	if err == nil && output != os.Stdout { err = output.Close() }
	if err != nil { logger.Fatal(err) }

	if *statsPath != "" {
		err = report.AppendStats(*statsPath, game)
		if err != nil { logger.Fatal(err) }
	}
}
