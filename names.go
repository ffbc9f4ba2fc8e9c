package carnage

import "os"
import "bufio"

import "github.com/pkg/errors"

import "github.com/SnowyMouse/carnage-reporter/mono"
import "github.com/SnowyMouse/carnage-reporter/tagfont"

// A collection of pre-rendered whole-name templates, built from
// externally supplied candidate player names. Matching a whole name at
// once is both faster and more reliable than per-character decoding, so
// when a library is available the engine tries it first.
//
// Templates are consumed as they match: a name that has been assigned to
// one row cannot be assigned to another.
type NameLibrary struct {
	font      *tagfont.Font
	templates []*mono.Image
}

// Creates an empty library whose templates will be rendered with the
// given font.
func NewNameLibrary(font *tagfont.Font) *NameLibrary {
	return &NameLibrary{font: font}
}

// Returns the current number of name templates left in the library.
func (self *NameLibrary) Size() int { return len(self.templates) }

// Renders the given name and adds it to the library.
func (self *NameLibrary) AddName(name string) {
	self.templates = append(self.templates, self.font.DrawTemplate(name))
}

// Reads a line-oriented text file of candidate player names, one name
// per line, and adds a template for each. Empty lines are skipped.
// Returns the number of names added.
func (self *NameLibrary) ParseFromPath(path string) (added int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "could not open names file %s", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" { continue }
		self.AddName(line)
		added += 1
	}
	err = scanner.Err()
	if err != nil {
		return added, errors.Wrapf(err, "could not read names file %s", path)
	}
	return added, nil
}

// Searches every template against the given image around (x, y) within
// the jitter radius. If the best score exceeds the threshold, the winning
// template is removed from the library and its source text returned;
// otherwise found is false and the library is left untouched.
func (self *NameLibrary) TakeBestMatch(img *mono.Image, x, y, jitter int, threshold float64) (name string, score float64, found bool) {
	bestScore := 0.0
	bestIndex := 0
	for offsetY := -jitter; offsetY <= jitter; offsetY++ {
		for offsetX := -jitter; offsetX <= jitter; offsetX++ {
			for i, template := range self.templates {
				matchScore := img.Match(template, x+offsetX, y+offsetY)
				if matchScore > bestScore {
					bestScore = matchScore
					bestIndex = i
				}
			}
		}
	}
	if bestScore <= threshold { return "", bestScore, false }

	name = self.templates[bestIndex].Text
	self.templates = append(self.templates[:bestIndex], self.templates[bestIndex+1:]...)
	return name, bestScore, true
}
