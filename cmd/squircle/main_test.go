package main

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/squircle"
	"github.com/tdewolff/squircle/cmd/squircle/internal/config"
	"github.com/tdewolff/squircle/curvepath"
	"github.com/tdewolff/test"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Width = 40.0
	cfg.Height = 20.0
	cfg.Radius = squircle.Float(8.0)
	return cfg
}

func TestShapeApply(t *testing.T) {
	cfg := testConfig()
	shape{0.0, 30.0, -1.0, 2.0, -1.0, -1.0, 0.0, 0.2}.apply(cfg)
	test.Float(t, cfg.Width, 40.0)
	test.Float(t, cfg.Height, 30.0)
	test.Float(t, *cfg.Radius, 8.0)
	test.Float(t, *cfg.Corners.TopLeft, 2.0)
	test.That(t, cfg.Corners.TopRight == nil)
	test.Float(t, *cfg.Corners.BottomLeft, 0.0)
	test.Float(t, *cfg.Smoothing, 0.2)
}

func TestOutputFormat(t *testing.T) {
	var tts = []struct {
		format, output string
		expected       string
	}{
		{"", "", svgPathFormat},
		{"", "-", svgPathFormat},
		{"wkt", "", wktFormat},
		{"mask", "out.png", maskFormat},
		{"", "out.wkt", wktFormat},
		{"", "out.geojson", geojsonFormat},
		{"", "out.SVG", imageFormat},
		{"", "out.pdf", imageFormat},
		{"", "out.png", imageFormat},
	}
	for _, tt := range tts {
		t.Run(tt.format+tt.output, func(t *testing.T) {
			format, err := outputFormat(tt.format, tt.output)
			test.Error(t, err)
			test.String(t, format, tt.expected)
		})
	}

	_, err := outputFormat("bmp", "")
	test.That(t, err != nil)
	_, err = outputFormat("", "out.xyz")
	test.That(t, err != nil)
}

func TestParseColor(t *testing.T) {
	col, err := parseColor("#f00")
	test.Error(t, err)
	test.T(t, col, color.RGBA{255, 0, 0, 255})

	col, err = parseColor("00ff00")
	test.Error(t, err)
	test.T(t, col, color.RGBA{0, 255, 0, 255})

	col, err = parseColor("")
	test.Error(t, err)
	test.That(t, col == nil)

	_, err = parseColor("#ff00")
	test.Error(t, err)
	_, err = parseColor("#ff000")
	test.That(t, err != nil)
	_, err = parseColor("#ggg")
	test.That(t, err != nil)
}

func TestRender(t *testing.T) {
	cfg := testConfig()
	p := cfg.Request().Path()

	buf := &bytes.Buffer{}
	test.Error(t, render(buf, svgPathFormat, "", cfg))
	test.String(t, buf.String(), p.ToSVG()+"\n")

	buf.Reset()
	test.Error(t, render(buf, wktFormat, "", cfg))
	test.That(t, strings.HasPrefix(buf.String(), "POLYGON(("))

	buf.Reset()
	test.Error(t, render(buf, geojsonFormat, "", cfg))
	test.That(t, strings.Contains(buf.String(), `"type":"Feature"`))
	test.That(t, strings.Contains(buf.String(), `"smoothing":0.6`))

	buf.Reset()
	test.Error(t, render(buf, maskFormat, "", cfg))
	img, err := png.Decode(buf)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 40)
	test.T(t, img.Bounds().Dy(), 20)

	test.That(t, render(buf, maskFormat, "mask.xyz", cfg) != nil)
}

func TestBorderPath(t *testing.T) {
	req := squircle.Request{Radius: squircle.Float(10.0), Smoothing: 0.6, Width: 100.0, Height: 60.0}

	ring, err := borderPath(req, squircle.UniformInsets(4.0))
	test.Error(t, err)
	test.That(t, curvepath.Winding(ring, 2.0, 30.0, squircle.Tolerance) != 0)
	test.T(t, curvepath.Winding(ring, 50.0, 30.0, squircle.Tolerance), 0)

	ring, err = borderPath(req, squircle.Insets{Top: 2.0, Right: 4.0, Bottom: 6.0, Left: 8.0})
	test.Error(t, err)
	poly := squircle.PolylineFromPath(ring)
	test.That(t, poly.Interior(4.0, 30.0, squircle.NonZero))
	test.That(t, poly.Interior(50.0, 57.0, squircle.NonZero))
	test.That(t, !poly.Interior(50.0, 30.0, squircle.NonZero))
}

func TestWriteImage(t *testing.T) {
	cfg := testConfig()
	cfg.Stroke = "#00f"
	cfg.StrokeWidth = 2.0
	cfg.Border = config.BorderConfig{Width: 2.0, Color: "#fff"}
	cfg.Shadow = config.ShadowConfig{OffsetY: 2.0, Spread: 1.0, Color: "#0004"}
	cfg.Outline = config.OutlineConfig{Width: 1.0, Offset: 1.0, Color: "#f00"}

	filename := filepath.Join(t.TempDir(), "squircle.svg")
	test.Error(t, writeImage(filename, cfg))
	b, err := os.ReadFile(filename)
	test.Error(t, err)
	test.That(t, strings.Contains(string(b), "<svg"))
	test.That(t, strings.Contains(string(b), "<path"))

	filename = filepath.Join(t.TempDir(), "squircle.pdf")
	test.Error(t, writeImage(filename, cfg))
	b, err = os.ReadFile(filename)
	test.Error(t, err)
	test.That(t, strings.HasPrefix(string(b), "%PDF"))

	cfg.Fill = "red"
	test.That(t, writeImage(filename, cfg) != nil)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "squircle.txt")
	test.Error(t, writeFile(filename, func(w io.Writer) error {
		return render(w, svgPathFormat, filename, testConfig())
	}))
	b, err := os.ReadFile(filename)
	test.Error(t, err)
	test.String(t, string(b), testConfig().Request().Path().ToSVG()+"\n")

	errWrite := errors.New("write failed")
	err = writeFile(filename, func(w io.Writer) error {
		return errWrite
	})
	test.That(t, errors.Is(err, errWrite))

	test.That(t, writeFile(filepath.Join(dir, "missing", "squircle.txt"), func(w io.Writer) error {
		return nil
	}) != nil)
}

func TestPrintParams(t *testing.T) {
	buf := &bytes.Buffer{}
	printParams(buf, testConfig().Request())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	test.T(t, len(lines), 7)
	test.String(t, lines[0], "Size: 40x20")
	test.String(t, lines[1], "Budget: 10")
	test.That(t, strings.HasPrefix(lines[3], "TopRight: "))
	test.That(t, strings.HasPrefix(lines[6], "TopLeft: "))
}
