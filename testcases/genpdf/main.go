// Command genpdf generates reference images for the test cases.
// For every test case it writes a PNG with one pixel per screen pixel, and
// a PDF proof sheet with every pixel drawn as a 2×2 point square.
// Run from the module root directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/raster/proof"
	"seehuhn.de/go/raster/scene"
	"seehuhn.de/go/raster/testcases"
	"seehuhn.de/go/raster/vga"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	s := vga.NewScreen(nil, nil)
	for _, sc := range testcases.Scenes() {
		if _, err := scene.Render(sc, s); err != nil {
			panic(fmt.Errorf("%s: %w", sc.Name, err))
		}

		pngPath := filepath.Join(refDir, sc.Name+".png")
		if err := proof.SavePNG(pngPath, s, 1); err != nil {
			panic(err)
		}

		pdfPath := filepath.Join(refDir, sc.Name+".pdf")
		if err := proof.SavePDF(pdfPath, s, 2); err != nil {
			panic(err)
		}
	}
}
