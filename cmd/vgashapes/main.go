// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command vgashapes draws scene files onto a 320×200 indexed screen and
// writes the result as PNG or PDF.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/proof"
	"seehuhn.de/go/raster/scene"
	"seehuhn.de/go/raster/testcases"
	"seehuhn.de/go/raster/vga"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "vgashapes: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "vgashapes"
	app.Usage = "Draw lines, rectangles, circles and dots on a 320×200 screen"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log every drawing operation and plotted pixel to stderr",
		},
		&cli.IntFlag{
			Name:  "fill",
			Value: 0,
			Usage: "outline thickness for shapes without a fill entry, 0 fills",
		},
	}
	app.Before = setup
	app.Commands = []*cli.Command{
		cmdRender,
		cmdList,
		cmdCatalogue,
	}
	return app
}

func setup(c *cli.Context) error {
	if c.Bool("verbose") {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		vga.SetLogger(slog.New(h))
	}
	raster.SetFillMode(raster.Outline(c.Int("fill")))
	return nil
}

var cmdRender = &cli.Command{
	Name:  "render",
	Usage: "render a scene file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "scene",
			Aliases:  []string{"s"},
			Usage:    "scene file in YAML format",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output PNG file",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 1,
			Usage: "size of one screen pixel in the PNG output",
		},
		&cli.StringFlag{
			Name:  "pdf",
			Usage: "also write a PDF proof sheet to this file",
		},
	},
	Action: runRender,
}

func runRender(c *cli.Context) error {
	sc, err := scene.Load(c.String("scene"))
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = strings.TrimSuffix(c.String("scene"), filepath.Ext(c.String("scene"))) + ".png"
	}

	s := vga.NewScreen(nil, nil)
	n, err := scene.Render(sc, s)
	if err != nil {
		return err
	}
	vga.Logger().Info("rendered", "scene", sc.Name, "pixels", n)

	if err := proof.SavePNG(out, s, c.Int("scale")); err != nil {
		return err
	}
	if pdfPath := c.String("pdf"); pdfPath != "" {
		if err := proof.SavePDF(pdfPath, s, float64(max(c.Int("scale"), 1))); err != nil {
			return err
		}
	}
	return nil
}

var cmdList = &cli.Command{
	Name:  "list",
	Usage: "list the built-in test scenes",
	Action: func(c *cli.Context) error {
		for _, sc := range testcases.Scenes() {
			fmt.Fprintf(c.App.Writer, "%-28s %3d shapes\n", sc.Name, len(sc.Shapes))
		}
		return nil
	},
}

var cmdCatalogue = &cli.Command{
	Name:  "catalogue",
	Usage: "render all built-in test scenes",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   ".",
			Usage:   "output directory",
		},
		&cli.IntFlag{
			Name:  "scale",
			Value: 2,
			Usage: "size of one screen pixel in the PNG output",
		},
		&cli.BoolFlag{
			Name:  "yaml",
			Usage: "also write every scene as a YAML file",
		},
	},
	Action: runCatalogue,
}

func runCatalogue(c *cli.Context) error {
	dir := c.String("out")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	s := vga.NewScreen(nil, nil)
	for _, sc := range testcases.Scenes() {
		if _, err := scene.Render(sc, s); err != nil {
			return fmt.Errorf("%s: %w", sc.Name, err)
		}
		if err := proof.SavePNG(filepath.Join(dir, sc.Name+".png"), s, c.Int("scale")); err != nil {
			return err
		}
		if c.Bool("yaml") {
			if err := scene.Save(filepath.Join(dir, sc.Name+".yaml"), sc); err != nil {
				return err
			}
		}
	}
	return nil
}
