package testcases

import (
	"maps"
	"slices"

	"seehuhn.de/go/raster/scene"
)

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"stroke":    strokeCases,
	"fill":      fillCases,
	"circle":    circleCases,
	"dot":       dotCases,
	"precision": precisionCases,
	"large":     largeCases,
	"complex":   complexCases,
}

// Scenes returns the scenes for all test cases, ordered by category and
// then by position within the category.
func Scenes() []*scene.Scene {
	var res []*scene.Scene
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			res = append(res, tc.Scene(category))
		}
	}
	return res
}
