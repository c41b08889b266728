// Command tfedemo composites a transfer function scene and saves it as PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/tfe"
)

func main() {
	var (
		width   = flag.Int("width", 256, "image width")
		height  = flag.Int("height", 128, "image height")
		output  = flag.String("output", "tfe.png", "output file")
		cell    = flag.Int("cell", 16, "checkers cell size in pixels")
		scene   = flag.String("scene", "", "scene description file (YAML)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		tfe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var (
		editor *tfe.Editor
		err    error
	)
	if *scene != "" {
		editor, err = loadScene(*scene, width, height)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	} else {
		editor = defaultScene(*cell)
	}

	pm := editor.Rasterize(*width, *height)
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Composite saved to %s (%dx%d)\n", *output, *width, *height)
}

// defaultScene builds the classic demo: a black and white checkerboard under
// a dented opacity ramp and a tent.
func defaultScene(cell int) *tfe.Editor {
	e := tfe.NewEditor()
	e.SetBackground(tfe.NewCheckers(cell, tfe.Black, tfe.White))
	e.AddFunction(tfe.NewPiecewiseLinear(
		tfe.Pt(0, 1),
		tfe.Pt(0.3, 0.8),
		tfe.Pt(1, 1),
	))
	e.AddFunction(tfe.NewTent())
	return e
}

// Scene file types. Each function entry names exactly one variant.
type sceneFile struct {
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Outline    *bool           `yaml:"outline"`
	Background *backgroundSpec `yaml:"background"`
	Functions  []functionSpec  `yaml:"functions"`
}

type backgroundSpec struct {
	Checkers *checkersSpec `yaml:"checkers"`
}

type checkersSpec struct {
	Cell   int       `yaml:"cell"`
	Color1 []float64 `yaml:"color1"`
	Color2 []float64 `yaml:"color2"`
}

type functionSpec struct {
	Piecewise *piecewiseSpec `yaml:"piecewise"`
	Tent      *tentSpec      `yaml:"tent"`
	Box       *boxSpec       `yaml:"box"`
	Gaussian  *gaussianSpec  `yaml:"gaussian"`
	ColorMap  *colorMapSpec  `yaml:"colormap"`
}

type piecewiseSpec struct {
	Points [][2]float64 `yaml:"points"`
}

type tentSpec struct {
	Tip         [2]float64 `yaml:"tip"`
	TopWidth    float64    `yaml:"topWidth"`
	BottomWidth float64    `yaml:"bottomWidth"`
}

type boxSpec struct {
	Extent [2]float64 `yaml:"extent"`
	Height float64    `yaml:"height"`
}

type gaussianSpec struct {
	Center float64 `yaml:"center"`
	Sigma  float64 `yaml:"sigma"`
	Height float64 `yaml:"height"`
}

type colorMapSpec struct {
	Stops []colorStopSpec `yaml:"stops"`
}

type colorStopSpec struct {
	Offset float64   `yaml:"offset"`
	Color  []float64 `yaml:"color"`
}

// loadScene reads a YAML scene file and builds the editor it describes.
// Width and height flags are overridden when the scene names its own.
func loadScene(path string, width, height *int) (*tfe.Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc sceneFile
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if sc.Width > 0 {
		*width = sc.Width
	}
	if sc.Height > 0 {
		*height = sc.Height
	}

	e := tfe.NewEditor()
	if sc.Outline != nil {
		e.SetShowOutline(*sc.Outline)
	}

	if sc.Background != nil && sc.Background.Checkers != nil {
		cs := sc.Background.Checkers
		c1, err := parseColor(cs.Color1, tfe.Black)
		if err != nil {
			return nil, fmt.Errorf("background color1: %w", err)
		}
		c2, err := parseColor(cs.Color2, tfe.White)
		if err != nil {
			return nil, fmt.Errorf("background color2: %w", err)
		}
		cell := cs.Cell
		if cell == 0 {
			cell = 16
		}
		e.SetBackground(tfe.NewCheckers(cell, c1, c2))
	}

	for i, fs := range sc.Functions {
		f, err := buildFunction(fs)
		if err != nil {
			return nil, fmt.Errorf("function %d: %w", i, err)
		}
		e.AddFunction(f)
	}

	return e, nil
}

func buildFunction(fs functionSpec) (tfe.Function, error) {
	switch {
	case fs.Piecewise != nil:
		pts := make([]tfe.Point, len(fs.Piecewise.Points))
		for i, p := range fs.Piecewise.Points {
			pts[i] = tfe.Pt(p[0], p[1])
		}
		return tfe.NewPiecewiseLinear(pts...), nil

	case fs.Tent != nil:
		t := fs.Tent
		if t.Tip == [2]float64{} && t.TopWidth == 0 && t.BottomWidth == 0 {
			return tfe.NewTent(), nil
		}
		return tfe.NewTentShape(tfe.Pt(t.Tip[0], t.Tip[1]), t.TopWidth, t.BottomWidth), nil

	case fs.Box != nil:
		b := fs.Box
		return tfe.NewBox(tfe.Interval{Lo: b.Extent[0], Hi: b.Extent[1]}, b.Height), nil

	case fs.Gaussian != nil:
		g := fs.Gaussian
		return tfe.NewGaussian(g.Center, g.Sigma, g.Height), nil

	case fs.ColorMap != nil:
		stops := make([]tfe.ColorStop, len(fs.ColorMap.Stops))
		for i, s := range fs.ColorMap.Stops {
			c, err := parseColor(s.Color, tfe.White)
			if err != nil {
				return nil, fmt.Errorf("stop %d: %w", i, err)
			}
			stops[i] = tfe.ColorStop{Offset: s.Offset, Color: c}
		}
		return tfe.NewColorMap(stops...), nil
	}

	return nil, fmt.Errorf("entry names no known function variant")
}

// parseColor accepts [r g b] or [r g b a] component lists.
func parseColor(comps []float64, def tfe.RGBA) (tfe.RGBA, error) {
	switch len(comps) {
	case 0:
		return def, nil
	case 3:
		return tfe.RGB(comps[0], comps[1], comps[2]), nil
	case 4:
		return tfe.RGBAf(comps[0], comps[1], comps[2], comps[3]), nil
	}
	return tfe.RGBA{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(comps))
}
