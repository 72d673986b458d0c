package squircle

import "math/rand/v2"

func setEpsilon(eps float64) func() {
	origEpsilon := Epsilon
	Epsilon = eps
	return func() { Epsilon = origEpsilon }
}

// RandomRequest returns a request with random size, radii and smoothing. Radii may exceed the budget and some corners are left sharp.
func RandomRequest(r *rand.Rand) Request {
	req := Request{
		Smoothing: r.Float64(),
		Width:     1.0 + 200.0*r.Float64(),
		Height:    1.0 + 200.0*r.Float64(),
	}
	corners := []**float64{&req.TopRight, &req.BottomRight, &req.BottomLeft, &req.TopLeft}
	for _, corner := range corners {
		switch r.IntN(3) {
		case 0:
			*corner = Float(0.0)
		case 1:
			*corner = Float(120.0 * r.Float64())
		}
	}
	if r.IntN(2) == 0 {
		req.Radius = Float(120.0 * r.Float64())
	}
	return req
}

func countCmds(p *Path) map[float64]int {
	counts := map[float64]int{}
	for scanner := p.Scanner(); scanner.Scan(); {
		counts[scanner.Cmd()]++
	}
	return counts
}
