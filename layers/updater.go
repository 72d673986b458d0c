// Package layers keeps the background of a view in sync with its squircle shape. The squircle is rasterized into an alpha mask that clips either a given background layer or an extra layer holding the view's background color.
package layers

import (
	"errors"
	"image"

	"github.com/tdewolff/squircle"
	"github.com/tdewolff/squircle/rasterizer"
)

// BackgroundZPosition is the z-position of the extra background layer, below all regular sublayers.
const BackgroundZPosition = -1024.0

// ErrNoView is returned when updating without a view.
var ErrNoView = errors.New("no view")

// UpdateParams are the parameters of an update. Negative radii are unset, the corner radii fall back to Radius and a missing Radius means sharp corners.
type UpdateParams struct {
	View            *Layer
	BackgroundLayer *Layer

	Radius                                     float64
	TopLeft, TopRight, BottomRight, BottomLeft float64
	Smoothing                                  float64

	// Resolution is the number of mask pixels per unit, 1 when zero.
	Resolution float64
}

// NewUpdateParams returns the parameters for view with all radii unset.
func NewUpdateParams(view *Layer) UpdateParams {
	return UpdateParams{
		View:        view,
		Radius:      -1.0,
		TopLeft:     -1.0,
		TopRight:    -1.0,
		BottomRight: -1.0,
		BottomLeft:  -1.0,
	}
}

func ifPresent(radius float64) *float64 {
	if 0.0 <= radius {
		return squircle.Float(radius)
	}
	return nil
}

// Request returns the squircle request for the current frame of the view.
func (params UpdateParams) Request() squircle.Request {
	return squircle.Request{
		Radius:      ifPresent(params.Radius),
		TopLeft:     ifPresent(params.TopLeft),
		TopRight:    ifPresent(params.TopRight),
		BottomRight: ifPresent(params.BottomRight),
		BottomLeft:  ifPresent(params.BottomLeft),
		Smoothing:   params.Smoothing,
		Width:       params.View.Frame.W,
		Height:      params.View.Frame.H,
	}
}

type memoKey struct {
	radii         [4]float64
	smoothing     float64
	width, height float64
	resolution    float64
}

// Updater masks the background of one view. It owns the extra background layer, which is created on first use and removed when a background layer is supplied. The last path and mask are reused while the view's size and radii stay the same.
type Updater struct {
	background *Layer

	key  memoKey
	path *squircle.Path
	mask *image.Alpha
}

// Background returns the extra background layer, or nil if none was created.
func (u *Updater) Background() *Layer {
	return u.background
}

// Path returns the path of the last update.
func (u *Updater) Path() *squircle.Path {
	return u.path
}

// Update rebuilds the squircle mask for the view and applies it to the background layer.
func (u *Updater) Update(params UpdateParams) error {
	if params.View == nil {
		return ErrNoView
	}
	resolution := params.Resolution
	if resolution <= 0.0 {
		resolution = 1.0
	}

	req := params.Request()
	key := memoKey{req.Radii(), req.Smoothing, req.Width, req.Height, resolution}
	if u.path == nil || key != u.key {
		size := rasterizer.Size(req.Width, req.Height, resolution)
		u.key = key
		u.path = req.Path()
		u.mask = rasterizer.Mask(u.path, size.X, size.Y, resolution)
	}

	if params.BackgroundLayer != nil {
		if u.background != nil {
			squircle.Logger().Debug("layers: removing extra background layer")
			u.background.RemoveFromSuperlayer()
			u.background = nil
		}
		params.BackgroundLayer.Mask = u.mask
		return nil
	}

	view := params.View
	background := view.Background
	view.Background = nil
	view.CornerRadius = 0.0
	if u.background == nil {
		squircle.Logger().Debug("layers: adding extra background layer", "z", BackgroundZPosition)
		u.background = &Layer{ZPosition: BackgroundZPosition}
		view.AddSublayer(u.background)
	}
	u.background.Frame = view.Bounds()
	u.background.Mask = u.mask
	if background != nil {
		u.background.Background = background
	}
	return nil
}
