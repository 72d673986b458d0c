package squircle

import "errors"

var (
	// ErrInvalidSmoothing is returned when the smoothing is not in [0,1].
	ErrInvalidSmoothing = errors.New("invalid smoothing")

	// ErrInvalidSize is returned when the width or height is not positive.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidRadius is returned when a corner radius is negative or NaN.
	ErrInvalidRadius = errors.New("invalid radius")
)
