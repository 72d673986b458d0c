package main

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/squircle"
	"github.com/tdewolff/squircle/cmd/squircle/internal/config"
	"github.com/tdewolff/squircle/curvepath"
	"github.com/tdewolff/squircle/orbpath"
	"github.com/tdewolff/squircle/rasterizer"
	"github.com/tdewolff/squircle/tdcanvas"
)

const (
	svgPathFormat = "svg-path"
	wktFormat     = "wkt"
	geojsonFormat = "geojson"
	maskFormat    = "mask"
	imageFormat   = "image"
)

// outputFormat returns the format to write, which is either given explicitly or derived from the extension of the output filename.
func outputFormat(format, output string) (string, error) {
	switch format {
	case svgPathFormat, wktFormat, geojsonFormat, maskFormat:
		return format, nil
	case "":
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}

	if output == "" || output == "-" {
		return svgPathFormat, nil
	}
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".txt":
		return svgPathFormat, nil
	case ".wkt":
		return wktFormat, nil
	case ".geojson", ".json":
		return geojsonFormat, nil
	case ".svg", ".pdf", ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff":
		return imageFormat, nil
	default:
		return "", fmt.Errorf("unknown output extension: %s", ext)
	}
}

// render writes the squircle's outline in one of the textual formats or as an alpha mask.
func render(w io.Writer, format, output string, cfg *config.Config) error {
	req := cfg.Request()
	p := req.Path()
	switch format {
	case svgPathFormat:
		_, err := fmt.Fprintln(w, p.ToSVG())
		return err
	case wktFormat:
		_, err := fmt.Fprintln(w, orbpath.WKT(p, squircle.Tolerance))
		return err
	case geojsonFormat:
		b, err := orbpath.GeoJSON(p, squircle.Tolerance, map[string]any{
			"width":     req.Width,
			"height":    req.Height,
			"smoothing": req.Smoothing,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case maskFormat:
		writer := rasterizer.PNGWriter()
		if output != "" && output != "-" {
			var err error
			if writer, err = rasterizer.WriterFor(output); err != nil {
				return err
			}
		}
		size := rasterizer.Size(req.Width, req.Height, cfg.Resolution)
		return writer(w, rasterizer.Mask(p, size.X, size.Y, cfg.Resolution))
	}
	return fmt.Errorf("unknown format: %s", format)
}

// writeImage draws the squircle with its shadow, border and outline and writes it to filename.
func writeImage(filename string, cfg *config.Config) error {
	c, err := drawCanvas(cfg)
	if err != nil {
		return err
	}
	return tdcanvas.Write(filename, c, cfg.Resolution)
}

func drawCanvas(cfg *config.Config) (*canvas.Canvas, error) {
	fill, err := parseColor(cfg.Fill)
	if err != nil {
		return nil, err
	}
	stroke, err := parseColor(cfg.Stroke)
	if err != nil {
		return nil, err
	}
	shadow, err := parseColor(cfg.Shadow.Color)
	if err != nil {
		return nil, err
	}
	border, err := parseColor(cfg.Border.Color)
	if err != nil {
		return nil, err
	}
	outline, err := parseColor(cfg.Outline.Color)
	if err != nil {
		return nil, err
	}

	req := cfg.Request()
	m := cfg.Margin()
	c, ctx := tdcanvas.New(req.Width+2.0*m, req.Height+2.0*m)
	if shadow != nil {
		p := squircle.ShadowPath(req, cfg.Shadow.OffsetX, cfg.Shadow.OffsetY, cfg.Shadow.Spread)
		tdcanvas.Draw(ctx, m, m, p, tdcanvas.Style{Fill: shadow})
	}
	tdcanvas.Draw(ctx, m, m, req.Path(), tdcanvas.Style{Fill: fill})
	if insets := cfg.BorderInsets(); border != nil && !insets.IsZero() {
		p, err := borderPath(req, insets)
		if err != nil {
			return nil, err
		}
		tdcanvas.Draw(ctx, m, m, p, tdcanvas.Style{Fill: border})
	}
	if stroke != nil {
		tdcanvas.Draw(ctx, m, m, req.Path(), tdcanvas.Style{Stroke: stroke, StrokeWidth: cfg.StrokeWidth})
	}
	if outline != nil && 0.0 < cfg.Outline.Width {
		p := squircle.OutlinePath(req, cfg.Outline.Width, cfg.Outline.Offset)
		tdcanvas.Draw(ctx, m, m, p, tdcanvas.Style{Stroke: outline, StrokeWidth: cfg.Outline.Width})
	}
	return c, nil
}

// borderPath returns the area of the border, to be filled with the non-zero rule.
func borderPath(req squircle.Request, widths squircle.Insets) (*squircle.Path, error) {
	outer, inner, center := squircle.BorderPaths(req, widths)
	if widths.Top == widths.Right && widths.Top == widths.Bottom && widths.Top == widths.Left {
		return curvepath.Stroke(center, widths.Top, squircle.Tolerance)
	}
	return outer.Append(inner.Reverse()), nil
}

// parseColor parses a hexadecimal color such as #f00, #ff0000 or #ff000080. An empty string returns nil.
func parseColor(s string) (color.Color, error) {
	switch strings.ToLower(s) {
	case "":
		return nil, nil
	case "none", "transparent":
		return canvas.Transparent, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if n := len(hex); n != 3 && n != 4 && n != 6 && n != 8 {
		return nil, fmt.Errorf("bad color: %s", s)
	}
	for _, c := range hex {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return nil, fmt.Errorf("bad color: %s", s)
		}
	}
	return canvas.Hex(hex), nil
}
