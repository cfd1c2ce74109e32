package scoring

import (
	"strings"

	"github.com/brightpath-labs/pathfinder/internal/catalog"
)

// likertNeutral is the lenient-degradation default for option text that no
// synonym table recognizes.
const likertNeutral = 3

// Likelihood scale used by the psychometric (Big Five) section.
var psychometricLikert = map[string]float64{
	"extremely unlikely": 1,
	"very unlikely":      1,
	"unlikely":           2,
	"somewhat unlikely":  2,
	"neutral":            3,
	"undecided":          3,
	"somewhat likely":    4,
	"likely":             4,
	"very likely":        5,
	"extremely likely":   5,
}

// Frequency scale used by the adversity section.
var adversityLikert = map[string]float64{
	"never":         1,
	"almost never":  1,
	"rarely":        2,
	"seldom":        2,
	"sometimes":     3,
	"occasionally":  3,
	"often":         4,
	"frequently":    4,
	"very often":    4,
	"always":        5,
	"almost always": 5,
}

// Intensity scale used by the socio-emotional section.
var seiLikert = map[string]float64{
	"not at all": 1,
	"a little":   2,
	"slightly":   2,
	"somewhat":   3,
	"moderately": 3,
	"very":       4,
	"very much":  4,
	"extremely":  5,
}

// likertScore resolves an option to a 1-5 point value: explicit positive marks
// win, otherwise the option text is looked up in the scale, otherwise neutral.
func likertScore(o catalog.Option, scale map[string]float64) float64 {
	if o.Marks > 0 {
		return o.Marks
	}
	if v, ok := scale[strings.ToLower(strings.TrimSpace(o.Text))]; ok {
		return v
	}
	return likertNeutral
}
