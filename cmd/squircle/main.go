package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/squircle"
	"github.com/tdewolff/squircle/cmd/squircle/internal/config"
)

type Render struct {
	Width     float64 `short:"W" desc:"Width"`
	Height    float64 `short:"H" desc:"Height"`
	Radius    float64 `short:"r" default:"-1" desc:"Corner radius"`
	TopLeft   float64 `name:"tl" default:"-1" desc:"Top-left corner radius"`
	TopRight  float64 `name:"tr" default:"-1" desc:"Top-right corner radius"`
	BotRight  float64 `name:"br" default:"-1" desc:"Bottom-right corner radius"`
	BotLeft   float64 `name:"bl" default:"-1" desc:"Bottom-left corner radius"`
	Smoothing float64 `short:"s" default:"-1" desc:"Corner smoothing between 0 and 1, defaults to 0.6"`

	Fill         string  `desc:"Fill color, such as #ff0000 or none"`
	Stroke       string  `desc:"Stroke color"`
	StrokeWidth  float64 `name:"stroke-width" desc:"Stroke width"`
	Border       float64 `desc:"Border width inside the squircle"`
	BorderColor  string  `name:"border-color" desc:"Border color"`
	ShadowX      float64 `name:"shadow-x" desc:"Horizontal shadow offset"`
	ShadowY      float64 `name:"shadow-y" desc:"Vertical shadow offset"`
	ShadowSpread float64 `name:"shadow-spread" desc:"Shadow spread"`
	ShadowColor  string  `name:"shadow-color" desc:"Shadow color"`
	Resolution   float64 `desc:"Resolution in pixels per unit for raster output, defaults to 1"`

	Config  string `short:"c" desc:"Configuration file, defaults to squircle.yaml if present"`
	Output  string `short:"o" desc:"Output filename, or stdout if empty"`
	Format  string `short:"f" desc:"Output format: svg-path, wkt, geojson or mask, determined by the output extension if empty (svg, pdf, png, jpg, tif for images)"`
	Verbose bool   `short:"v" desc:"Verbose logging"`
}

type Params struct {
	Width     float64 `short:"W" desc:"Width"`
	Height    float64 `short:"H" desc:"Height"`
	Radius    float64 `short:"r" default:"-1" desc:"Corner radius"`
	TopLeft   float64 `name:"tl" default:"-1" desc:"Top-left corner radius"`
	TopRight  float64 `name:"tr" default:"-1" desc:"Top-right corner radius"`
	BotRight  float64 `name:"br" default:"-1" desc:"Bottom-right corner radius"`
	BotLeft   float64 `name:"bl" default:"-1" desc:"Bottom-left corner radius"`
	Smoothing float64 `short:"s" default:"-1" desc:"Corner smoothing between 0 and 1, defaults to 0.6"`

	Config  string `short:"c" desc:"Configuration file, defaults to squircle.yaml if present"`
	Verbose bool   `short:"v" desc:"Verbose logging"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Squircle renderer")
	root.AddCmd(&Params{}, "params", "Print the resolved corner parameters")
	root.Parse()
	root.PrintHelp()
}

// shape holds the geometry flags, where zero sizes and negative radii or smoothing are unset.
type shape struct {
	width, height, radius                float64
	topLeft, topRight, botRight, botLeft float64
	smoothing                            float64
}

func (s shape) apply(cfg *config.Config) {
	if s.width != 0.0 {
		cfg.Width = s.width
	}
	if s.height != 0.0 {
		cfg.Height = s.height
	}
	if 0.0 <= s.radius {
		cfg.Radius = squircle.Float(s.radius)
	}
	if 0.0 <= s.topLeft {
		cfg.Corners.TopLeft = squircle.Float(s.topLeft)
	}
	if 0.0 <= s.topRight {
		cfg.Corners.TopRight = squircle.Float(s.topRight)
	}
	if 0.0 <= s.botRight {
		cfg.Corners.BottomRight = squircle.Float(s.botRight)
	}
	if 0.0 <= s.botLeft {
		cfg.Corners.BottomLeft = squircle.Float(s.botLeft)
	}
	if 0.0 <= s.smoothing {
		cfg.Smoothing = squircle.Float(s.smoothing)
	}
}

func setVerbose(verbose bool) {
	if verbose {
		squircle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func loadConfig(filename string) (*config.Config, error) {
	if filename == "" {
		return config.LoadOptional(".")
	}
	return config.Load(filename)
}

func (cmd *Render) Run() error {
	setVerbose(cmd.Verbose)
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	shape{cmd.Width, cmd.Height, cmd.Radius, cmd.TopLeft, cmd.TopRight, cmd.BotRight, cmd.BotLeft, cmd.Smoothing}.apply(cfg)
	if cmd.Fill != "" {
		cfg.Fill = cmd.Fill
	}
	if cmd.Stroke != "" {
		cfg.Stroke = cmd.Stroke
	}
	if cmd.StrokeWidth != 0.0 {
		cfg.StrokeWidth = cmd.StrokeWidth
	}
	if cmd.Border != 0.0 {
		cfg.Border = config.BorderConfig{Width: cmd.Border, Color: cfg.Border.Color}
	}
	if cmd.BorderColor != "" {
		cfg.Border.Color = cmd.BorderColor
	}
	if cmd.ShadowX != 0.0 {
		cfg.Shadow.OffsetX = cmd.ShadowX
	}
	if cmd.ShadowY != 0.0 {
		cfg.Shadow.OffsetY = cmd.ShadowY
	}
	if cmd.ShadowSpread != 0.0 {
		cfg.Shadow.Spread = cmd.ShadowSpread
	}
	if cmd.ShadowColor != "" {
		cfg.Shadow.Color = cmd.ShadowColor
	}
	if 0.0 < cmd.Resolution {
		cfg.Resolution = cmd.Resolution
	}
	if cfg.Width == 0.0 && cfg.Height == 0.0 {
		return argp.ShowUsage
	} else if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := outputFormat(cmd.Format, cmd.Output)
	if err != nil {
		return err
	}
	if format == imageFormat {
		return writeImage(cmd.Output, cfg)
	}

	if cmd.Output == "" || cmd.Output == "-" {
		return render(os.Stdout, format, cmd.Output, cfg)
	}
	return writeFile(cmd.Output, func(w io.Writer) error {
		return render(w, format, cmd.Output, cfg)
	})
}

// writeFile creates filename and writes to it, returning the error of closing the file if writing succeeded.
func writeFile(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (cmd *Params) Run() error {
	setVerbose(cmd.Verbose)
	cfg, err := loadConfig(cmd.Config)
	if err != nil {
		return err
	}
	shape{cmd.Width, cmd.Height, cmd.Radius, cmd.TopLeft, cmd.TopRight, cmd.BotRight, cmd.BotLeft, cmd.Smoothing}.apply(cfg)
	if cfg.Width == 0.0 && cfg.Height == 0.0 {
		return argp.ShowUsage
	}

	req := cfg.Request()
	if err := req.Validate(); err != nil {
		return err
	}
	printParams(os.Stdout, req)
	return nil
}

func printParams(w io.Writer, req squircle.Request) {
	fmt.Fprintf(w, "Size: %vx%v\n", req.Width, req.Height)
	fmt.Fprintf(w, "Budget: %v\n", req.Budget())
	fmt.Fprintf(w, "Smoothing: %v\n", req.Smoothing)
	for i, params := range req.CornerPathParams() {
		fmt.Fprintf(w, "%v: %v\n", squircle.Corner(i), params)
	}
}
