package calc

import (
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// constPrec is the precision in bits used to compute the digits of constants.
const constPrec = 192

var (
	piDigits = constDigits(bigfloat.Pi)
	eDigits  = constDigits(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	})
)

// constDigits computes a constant and formats it with more decimal places than
// a float64 can hold.
func constDigits(f func(out *big.Float) *big.Float) string {
	r := new(big.Float).SetPrec(constPrec)
	f(r)
	return r.Text('f', 39)
}

// Clean converts the equation into a stream of plain arithmetic items ready
// for Eval. Constants and Ans become numbers, percent becomes a division by
// 100 and EXP becomes a multiplication by a power of ten. Multiplication is
// made explicit and every open group is closed. The result never shares
// storage with the equation.
func (eq *Equation) Clean(ans float64) []Item {
	out := make([]Item, 0, len(eq.list)+eq.OpenParenthesesCount()+4)
	// signs holds the depths of groups opened for a minus typed before a
	// function or parenthesis, which close along with that group.
	var signs []int
	depth := 0
	for _, it := range eq.list {
		switch it.Kind {
		case Number:
			out = appendValue(out, it)
		case Rnd:
			out = appendConst(out, it.Digits)
		case Pi:
			out = appendConst(out, piDigits)
		case E:
			out = appendConst(out, eDigits)
		case Ans:
			out = appendConst(out, formatFloat(ans))
		case Percent:
			out = wrapLast(out, Tok(Divide), Num("100"))
		case Factorial:
			out = wrapLast(out, Tok(Factorial))
		case EXP:
			out = append(out, Tok(Multiply), Num("10"), Tok(Power))
		case CloseParen:
			out = append(out, it)
			depth--
			for len(signs) > 0 && signs[len(signs)-1] == depth {
				out = append(out, Tok(CloseParen))
				signs = signs[:len(signs)-1]
				depth--
			}
		default:
			if !it.IsOpener() {
				out = append(out, it)
				break
			}
			if n := len(out); n > 0 && out[n-1].isMinus() {
				// -(x) → (-1 × (x))
				out = append(out[:n-1], Tok(OpenParen), Num("-1"), Tok(Multiply))
				depth++
				signs = append(signs, depth)
			}
			out = appendValue(out, it)
			depth++
		}
	}
	for ; depth > 0; depth-- {
		out = append(out, Tok(CloseParen))
	}
	return out
}

// appendConst appends the digits of a constant. A pending minus becomes the
// constant's sign.
func appendConst(out []Item, digits string) []Item {
	if n := len(out); n > 0 && out[n-1].isMinus() {
		if strings.HasPrefix(digits, "-") {
			digits = digits[1:]
		} else {
			digits = "-" + digits
		}
		out[n-1] = Num(digits)
		return out
	}
	return appendValue(out, Num(digits))
}

// appendValue appends an item which starts a value, with an explicit
// multiplication if it directly follows another value.
func appendValue(out []Item, it Item) []Item {
	if len(out) > 0 && out[len(out)-1].IsValueComplete() {
		out = append(out, Tok(Multiply))
	}
	return append(out, it)
}

// wrapLast encloses the last value in out in parentheses together with the
// items in tail, e.g. x → ( x ÷ 100 ).
func wrapLast(out []Item, tail ...Item) []Item {
	i := valueStart(out)
	r := make([]Item, 0, len(out)+len(tail)+2)
	r = append(r, out[:i]...)
	r = append(r, Tok(OpenParen))
	r = append(r, out[i:]...)
	r = append(r, tail...)
	return append(r, Tok(CloseParen))
}

// valueStart returns the index at which the last value in out begins. A value
// ending in a parenthesis begins at its matching opener.
func valueStart(out []Item) int {
	j := len(out) - 1
	if j < 0 {
		return 0
	}
	if out[j].Kind != CloseParen {
		return j
	}
	depth := 0
	for ; j >= 0; j-- {
		switch {
		case out[j].Kind == CloseParen:
			depth++
		case out[j].IsOpener():
			depth--
		}
		if depth == 0 {
			return j
		}
	}
	return 0
}
