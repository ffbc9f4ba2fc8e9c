// carnage-console decodes an end-of-match scoreboard screenshot and
// prints a human-readable report to stderr:
//
//	carnage-console [flags] <image> <font>
//
// It shares the recognition engine with carnage-reporter and differs
// only in presentation.
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
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image> <font>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
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

	game, err := carnage.New(font, screenshot, options, logger).Run(nil)
	if err != nil { logger.Fatal(err) }

	err = report.WriteConsole(os.Stderr, game)
	if err != nil { logger.Fatal(err) }
}
