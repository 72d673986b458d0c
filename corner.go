package squircle

import (
	"fmt"
	"math"
)

// Corner identifies one of the four corners of a squircle.
type Corner int

// Corners in the clockwise order in which they are drawn, starting from the top edge.
const (
	TopRight Corner = iota
	BottomRight
	BottomLeft
	TopLeft
)

func (c Corner) String() string {
	switch c {
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	case BottomLeft:
		return "BottomLeft"
	case TopLeft:
		return "TopLeft"
	}
	return fmt.Sprintf("Corner(%d)", int(c))
}

// CornerParams is the input of the corner resolver.
type CornerParams struct {
	Radius    float64 // corner radius, already clamped to Budget
	Smoothing float64 // in [0,1]
	Budget    float64 // half of the shorter side of the rectangle
}

// Resolve computes the path parameters of the corner.
func (params CornerParams) Resolve() CornerPathParams {
	return ResolveCorner(params.Radius, params.Smoothing, params.Budget)
}

// CornerPathParams are the measurements needed to draw one corner. P is the length along each adjoining edge consumed by the corner. A and B are the offsets of the control points of the Bézier along the edge, C and D the offsets of its end point along and perpendicular to the edge. ArcChordLength is the length of each side of the right triangle that has the chord of the circular arc as hypotenuse.
type CornerPathParams struct {
	A, B, C, D     float64
	P              float64
	Radius         float64
	ArcChordLength float64
}

// IsZero returns true for a sharp corner, which draws no curves.
func (params CornerPathParams) IsZero() bool {
	return params.Radius <= 0.0
}

// EffectiveSmoothing returns the smoothing that was used, which is less than the requested smoothing when the corner would otherwise exceed the budget.
func (params CornerPathParams) EffectiveSmoothing() float64 {
	if params.IsZero() {
		return 0.0
	}
	return params.P/params.Radius - 1.0
}

// ArcMeasure returns the angle swept by the circular arc of the corner in degrees.
func (params CornerPathParams) ArcMeasure() float64 {
	if params.IsZero() {
		return 0.0
	}
	return 90.0 * (1.0 - params.EffectiveSmoothing())
}

// Equals returns true if both parameters are equal with tolerance Epsilon.
func (params CornerPathParams) Equals(q CornerPathParams) bool {
	return Equal(params.A, q.A) && Equal(params.B, q.B) && Equal(params.C, q.C) && Equal(params.D, q.D) && Equal(params.P, q.P) && Equal(params.Radius, q.Radius) && Equal(params.ArcChordLength, q.ArcChordLength)
}

func (params CornerPathParams) String() string {
	return fmt.Sprintf("a=%v b=%v c=%v d=%v p=%v r=%v chord=%v", num(params.A), num(params.B), num(params.C), num(params.D), num(params.P), num(params.Radius), num(params.ArcChordLength))
}

// ResolveCorner computes the path parameters for a corner with the given radius, smoothing and budget, where the budget is half of the shorter side of the rectangle. The radius must already be clamped to the budget. A radius that is zero, negative or NaN, or a budget that is not positive, returns the zero value which draws a sharp corner. Smoothing is clamped to [0,1] and reduced when the corner would exceed the budget.
func ResolveCorner(radius, smoothing, budget float64) CornerPathParams {
	if !(0.0 < radius) || !(0.0 < budget) {
		return CornerPathParams{}
	}
	if !(0.0 <= smoothing) {
		smoothing = 0.0 // includes NaN
	} else if 1.0 < smoothing {
		smoothing = 1.0
	}
	radius = math.Min(radius, budget)

	p := math.Min((1.0+smoothing)*radius, budget)
	if maxSmoothing := budget/radius - 1.0; maxSmoothing < smoothing {
		Logger().Debug("squircle: smoothing reduced to fit budget", "radius", radius, "budget", budget, "smoothing", smoothing, "max", maxSmoothing)
		smoothing = math.Max(0.0, maxSmoothing)
	}

	arcMeasure := 90.0 * (1.0 - smoothing)
	arcChordLength := math.Sin(deg2rad(arcMeasure/2.0)) * radius * math.Sqrt2

	alpha := (90.0 - arcMeasure) / 2.0
	p3ToP4 := radius * math.Tan(deg2rad(alpha/2.0))

	beta := 45.0 * smoothing
	c := p3ToP4 * math.Cos(deg2rad(beta))
	d := c * math.Tan(deg2rad(beta))

	b := (p - arcChordLength - c - d) / 3.0
	a := 2.0 * b
	return CornerPathParams{
		A:              a,
		B:              b,
		C:              c,
		D:              d,
		P:              p,
		Radius:         radius,
		ArcChordLength: arcChordLength,
	}
}
