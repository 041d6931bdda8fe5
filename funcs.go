package scicalc

import (
	"math"
	"strings"
)

// AngleMode selects whether trigonometric functions take and return degrees
// or radians.
type AngleMode int8

const (
	Degrees AngleMode = iota
	Radians
)

// ParseAngleMode parses "deg", "degrees", "rad", or "radians", ignoring case.
func ParseAngleMode(s string) (AngleMode, bool) {
	switch strings.ToLower(s) {
	case "deg", "degrees":
		return Degrees, true
	case "rad", "radians":
		return Radians, true
	default:
		return Degrees, false
	}
}

// Toggle returns the other angle mode.
func (m AngleMode) Toggle() AngleMode {
	if m == Degrees {
		return Radians
	}
	return Degrees
}

func (m AngleMode) String() string {
	if m == Radians {
		return "rad"
	}
	return "deg"
}

// maxFact is the largest argument whose factorial is finite in a float64.
const maxFact = 170

// call applies f to args, which has length f.Arity().
func (f Func) call(args []float64, mode AngleMode) (float64, error) {
	x := args[0]
	switch f {
	case Sin:
		return math.Sin(mode.in(x)), nil
	case Cos:
		return math.Cos(mode.in(x)), nil
	case Tan:
		return math.Tan(mode.in(x)), nil
	case Asin:
		return mode.out(math.Asin(x)), nil
	case Acos:
		return mode.out(math.Acos(x)), nil
	case Atan:
		return mode.out(math.Atan(x)), nil
	case Log:
		return math.Log10(x), nil
	case Ln:
		return math.Log(x), nil
	case Sqrt:
		return math.Sqrt(x), nil
	case Root:
		// root(n, x) is the nth root of x.
		return math.Pow(args[1], 1/x), nil
	case Fact:
		return factorial(x)
	default:
		panic("scicalc: invalid function " + f.String())
	}
}

// factorial computes the factorial of x truncated toward zero.
func factorial(x float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, ErrDomain
	case x < 0 && math.Trunc(x) != 0:
		return 0, ErrNegativeFactorial
	case x >= maxFact+1:
		return 0, ErrFactorialOverflow
	}
	n := int(x)
	r := 1.0
	for i := 2; i <= n; i++ {
		r *= float64(i)
	}
	return r, nil
}

// in converts a trigonometric argument to radians.
func (m AngleMode) in(x float64) float64 {
	if m == Degrees {
		return x * math.Pi / 180
	}
	return x
}

// out converts an inverse trigonometric result from radians.
func (m AngleMode) out(x float64) float64 {
	if m == Degrees {
		return x * 180 / math.Pi
	}
	return x
}
