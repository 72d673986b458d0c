// Package squircle draws squircles: rounded rectangles whose corners blend a straight run, a cubic Bézier and a circular arc into a continuous-curvature transition. The amount of blending is controlled by the smoothing factor in [0,1], where 0 draws ordinary rounded corners.
package squircle

import (
	"fmt"
	"math"
)

// DefaultSmoothing is the smoothing used when none is configured.
const DefaultSmoothing = 0.6

// Request describes a squircle. Per-corner radii take precedence over the uniform Radius; corners without either are sharp.
type Request struct {
	TopLeft, TopRight, BottomRight, BottomLeft *float64
	Radius                                     *float64

	Smoothing     float64
	Width, Height float64
}

// Float returns a pointer to f, for use in the optional fields of Request.
func Float(f float64) *float64 {
	return &f
}

// Budget returns the length that a single corner may consume along each edge, which is half of the shorter side.
func (req Request) Budget() float64 {
	return math.Max(0.0, math.Min(req.Width, req.Height)/2.0)
}

func effectiveRadius(corner, uniform *float64) float64 {
	if corner != nil {
		return *corner
	} else if uniform != nil {
		return *uniform
	}
	return 0.0
}

// effectiveRadii returns the radii of the top-right, bottom-right, bottom-left and top-left corners before clamping to the budget. Negative and NaN radii are zero.
func (req Request) effectiveRadii() [4]float64 {
	radii := [4]float64{
		TopRight:    effectiveRadius(req.TopRight, req.Radius),
		BottomRight: effectiveRadius(req.BottomRight, req.Radius),
		BottomLeft:  effectiveRadius(req.BottomLeft, req.Radius),
		TopLeft:     effectiveRadius(req.TopLeft, req.Radius),
	}
	for i, r := range radii {
		if !(0.0 < r) {
			radii[i] = 0.0
		}
	}
	return radii
}

// Radii returns the effective radii of the top-right, bottom-right, bottom-left and top-left corners. Negative and NaN radii are zero, and radii larger than the budget are clamped to the budget.
func (req Request) Radii() [4]float64 {
	budget := req.Budget()
	radii := req.effectiveRadii()
	for i, r := range radii {
		if budget < r {
			Logger().Debug("squircle: radius clamped to budget", "corner", Corner(i), "radius", r, "budget", budget)
			radii[i] = budget
		}
	}
	return radii
}

// CornerPathParams resolves the parameters of the top-right, bottom-right, bottom-left and top-left corners. When all radii are equal the corner is resolved only once.
func (req Request) CornerPathParams() [4]CornerPathParams {
	budget := req.Budget()
	radii := req.Radii()
	if radii[0] == radii[1] && radii[0] == radii[2] && radii[0] == radii[3] {
		params := ResolveCorner(radii[0], req.Smoothing, budget)
		return [4]CornerPathParams{params, params, params, params}
	}

	var params [4]CornerPathParams
	for i, r := range radii {
		params[i] = ResolveCorner(r, req.Smoothing, budget)
	}
	return params
}

// Path returns the closed squircle path. Requests with a non-positive or infinite width or height return an empty path. Smoothing outside of [0,1] is clamped, use Validate to reject it instead.
func (req Request) Path() *Path {
	if !validSize(req.Width) || !validSize(req.Height) {
		Logger().Warn("squircle: invalid size", "width", req.Width, "height", req.Height)
		return &Path{}
	}
	params := req.CornerPathParams()
	return Assemble(req.Width, req.Height, params[TopRight], params[BottomRight], params[BottomLeft], params[TopLeft])
}

func validSize(f float64) bool {
	return 0.0 < f && !math.IsInf(f, 1)
}

// Validate returns an error wrapping ErrInvalidSmoothing, ErrInvalidSize or ErrInvalidRadius if the request is invalid.
func (req Request) Validate() error {
	if !(0.0 <= req.Smoothing && req.Smoothing <= 1.0) {
		return fmt.Errorf("%w: must be between 0 and 1, inclusive. Received: %v", ErrInvalidSmoothing, req.Smoothing)
	} else if !validSize(req.Width) || !validSize(req.Height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, req.Width, req.Height)
	}

	radii := []struct {
		name string
		r    *float64
	}{
		{"radius", req.Radius},
		{"top-left radius", req.TopLeft},
		{"top-right radius", req.TopRight},
		{"bottom-right radius", req.BottomRight},
		{"bottom-left radius", req.BottomLeft},
	}
	for _, radius := range radii {
		if radius.r != nil && !(0.0 <= *radius.r) {
			return fmt.Errorf("%w: %s must be non-negative. Received: %v", ErrInvalidRadius, radius.name, *radius.r)
		}
	}
	return nil
}

// New validates the request and returns its path.
func New(req Request) (*Path, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req.Path(), nil
}
