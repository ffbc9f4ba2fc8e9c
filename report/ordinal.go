package report

import "strconv"

// Renders a place with its English ordinal suffix: 1st, 2nd, 3rd, 4th...
// including the 11th/12th/13th exception.
func Ordinal(place int) string {
	suffix := "th"
	if place%100 < 10 || place%100 >= 19 {
		switch place % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(place) + suffix
}
