package squircle

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// ToSVG returns a string that represents the path in the SVG path data format with minification.
func (p *Path) ToSVG() string {
	sb := strings.Builder{}
	for i := 0; i < len(p.d); {
		cmd := p.d[i]
		switch cmd {
		case MoveToCmd:
			fmt.Fprintf(&sb, "M%v %v", num(p.d[i+1]), num(p.d[i+2]))
		case LineToCmd:
			fmt.Fprintf(&sb, "L%v %v", num(p.d[i+1]), num(p.d[i+2]))
		case CubeToCmd:
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(p.d[i+1]), num(p.d[i+2]), num(p.d[i+3]), num(p.d[i+4]), num(p.d[i+5]), num(p.d[i+6]))
		case ArcToCmd:
			r := num(p.d[i+3])
			large, sweep := arcFlags(p.d[i+4], p.d[i+5])
			sLarge, sSweep := "0", "0"
			if large {
				sLarge = "1"
			}
			if sweep {
				sSweep = "1"
			}
			fmt.Fprintf(&sb, "A%v %v 0 %s %s %v %v", r, r, sLarge, sSweep, num(p.d[i+6]), num(p.d[i+7]))
		case CloseCmd:
			sb.WriteString("z")
		}
		i += cmdLen(cmd)
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// MustParseSVG parses an SVG path data string and panics if it fails.
func MustParseSVG(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVGPath parses an SVG path data string. Quadratic Béziers are converted to cubic Béziers. Only circular arcs are supported.
func ParseSVGPath(s string) (*Path, error) {
	if len(s) == 0 {
		return &Path{}, nil
	}

	i := 0
	path := []byte(s)
	i += skipCommaWhitespace(path[i:])
	if i == len(path) {
		return &Path{}, nil
	} else if path[0] == ',' || path[i] < 'A' {
		return nil, fmt.Errorf("bad path: path should start with command")
	}

	cmdLens := map[byte]int{
		'M': 2,
		'Z': 0,
		'L': 2,
		'H': 1,
		'V': 1,
		'C': 6,
		'S': 4,
		'Q': 4,
		'T': 2,
		'A': 7,
	}
	f := [7]float64{}

	p := &Path{}
	var q, c Point
	var p0, p1 Point
	prevCmd := byte('z')
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !(path[i] >= '0' && path[i] <= '9' || path[i] == '.' || path[i] == '-' || path[i] == '+') {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		CMD := cmd
		if 'a' <= CMD && CMD <= 'z' {
			CMD -= 'a' - 'A'
		}
		n, ok := cmdLens[CMD]
		if !ok {
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		for j := 0; j < n; j++ {
			if i == len(path) {
				return nil, fmt.Errorf("bad path: %d numbers should follow command '%c' at position %d", n, cmd, i)
			}

			if CMD == 'A' && (j == 3 || j == 4) {
				// parse largeArc and sweep booleans for A command
				if path[i] == '0' || path[i] == '1' {
					f[j] = float64(path[i] - '0')
					i++
					i += skipCommaWhitespace(path[i:])
					continue
				}
				return nil, fmt.Errorf("bad path: largeArc and sweep flags should be 0 or 1 in command '%c' at position %d", cmd, i)
			}

			v, m := strconv.ParseFloat(path[i:])
			if m == 0 {
				if repeat && j == 0 && i < len(path) {
					return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", path[i], i)
				} else if 1 < n {
					return nil, fmt.Errorf("bad path: sets of %d numbers should follow command '%c' at position %d", n, cmd, i)
				}
				return nil, fmt.Errorf("bad path: number should follow command '%c' at position %d", cmd, i)
			}
			f[j] = v
			i += m
			i += skipCommaWhitespace(path[i:])
		}

		switch cmd {
		case 'M', 'm':
			p1 = Point{f[0], f[1]}
			if cmd == 'm' {
				p1 = p1.Add(p0)
				cmd = 'l'
			} else {
				cmd = 'L'
			}
			p.MoveTo(p1.X, p1.Y)
		case 'Z', 'z':
			p1 = p.StartPos()
			p.Close()
		case 'L', 'l':
			p1 = Point{f[0], f[1]}
			if cmd == 'l' {
				p1 = p1.Add(p0)
			}
			p.LineTo(p1.X, p1.Y)
		case 'H', 'h':
			p1.X = f[0]
			if cmd == 'h' {
				p1.X += p0.X
			}
			p.LineTo(p1.X, p1.Y)
		case 'V', 'v':
			p1.Y = f[0]
			if cmd == 'v' {
				p1.Y += p0.Y
			}
			p.LineTo(p1.X, p1.Y)
		case 'C', 'c':
			cp1 := Point{f[0], f[1]}
			cp2 := Point{f[2], f[3]}
			p1 = Point{f[4], f[5]}
			if cmd == 'c' {
				cp1 = cp1.Add(p0)
				cp2 = cp2.Add(p0)
				p1 = p1.Add(p0)
			}
			p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'S', 's':
			cp1 := p0
			cp2 := Point{f[0], f[1]}
			p1 = Point{f[2], f[3]}
			if cmd == 's' {
				cp2 = cp2.Add(p0)
				p1 = p1.Add(p0)
			}
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = p0.Mul(2.0).Sub(c)
			}
			p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'Q', 'q':
			cp := Point{f[0], f[1]}
			p1 = Point{f[2], f[3]}
			if cmd == 'q' {
				cp = cp.Add(p0)
				p1 = p1.Add(p0)
			}
			quadTo(p, p0, cp, p1)
			q = cp
		case 'T', 't':
			cp := p0
			p1 = Point{f[0], f[1]}
			if cmd == 't' {
				p1 = p1.Add(p0)
			}
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp = p0.Mul(2.0).Sub(q)
			}
			quadTo(p, p0, cp, p1)
			q = cp
		case 'A', 'a':
			rx := math.Abs(f[0])
			ry := math.Abs(f[1])
			large := f[3] == 1.0
			sweep := f[4] == 1.0
			p1 = Point{f[5], f[6]}
			if cmd == 'a' {
				p1 = p1.Add(p0)
			}
			if rx == 0.0 || ry == 0.0 {
				p.LineTo(p1.X, p1.Y)
				break
			} else if !Equal(rx, ry) {
				return nil, fmt.Errorf("bad path: elliptical arcs are not supported in command '%c' at position %d", cmd, i)
			}
			cx, cy, r, theta0, theta1 := arcToCenter(p0.X, p0.Y, rx, large, sweep, p1.X, p1.Y)
			p.ArcTo(cx, cy, r, theta0, theta1, p1.X, p1.Y)
		}
		prevCmd = cmd
		p0 = p1
	}
	return p, nil
}

// quadTo adds the quadratic Bézier from p0 with control point cp to p1 as a cubic Bézier.
func quadTo(p *Path, p0, cp, p1 Point) {
	cp1 := p0.Interpolate(cp, 2.0/3.0)
	cp2 := p1.Interpolate(cp, 2.0/3.0)
	p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
}
