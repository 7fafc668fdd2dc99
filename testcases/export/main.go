// Command export writes the test cases as YAML scene files.
// Run from the module root directory.
package main

import (
	"os"
	"path/filepath"

	"seehuhn.de/go/raster/scene"
	"seehuhn.de/go/raster/testcases"
)

const sceneDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		panic(err)
	}

	for _, sc := range testcases.Scenes() {
		if err := scene.Save(filepath.Join(sceneDir, sc.Name+".yaml"), sc); err != nil {
			panic(err)
		}
	}
}
