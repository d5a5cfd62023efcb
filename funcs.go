package calc

import "math"

// monadic is a function applied to the value inside a function opener's
// group. Angle conversion happens outside of it.
type monadic func(float64) float64

var funcs = map[Kind]monadic{
	Sin:  math.Sin,
	Cos:  math.Cos,
	Tan:  math.Tan,
	Asin: math.Asin,
	Acos: math.Acos,
	Atan: math.Atan,
	Ln:   math.Log,
	Log:  math.Log10,
	Sqrt: math.Sqrt,
	// Nroot has no entry; it needs a second operand that the input model
	// cannot express yet.
}

// call applies the function for an opener to v. Forward trigonometric
// functions take degrees and inverse ones return degrees when degrees is set.
func call(k Kind, v float64, degrees bool) (float64, error) {
	f := funcs[k]
	if f == nil {
		return 0, &UnsupportedError{Item: Tok(k)}
	}
	switch k {
	case Sin, Cos, Tan:
		if degrees {
			v = toRadians(v)
		}
		return f(v), nil
	case Asin, Acos, Atan:
		r := f(v)
		if degrees {
			r = toDegrees(r)
		}
		return r, nil
	}
	return f(v), nil
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func toDegrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// factorial is the continuous factorial, Γ(v+1).
func factorial(v float64) float64 {
	return math.Gamma(v + 1)
}

// apply computes a binary operation.
func apply(op Kind, x, y float64) (float64, bool) {
	switch op {
	case Add:
		return x + y, true
	case Subtract:
		return x - y, true
	case Multiply:
		return x * y, true
	case Divide:
		return x / y, true
	case Power:
		return math.Pow(x, y), true
	}
	return 0, false
}
