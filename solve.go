package calc

import (
	"strconv"
	"strings"
)

// Solve evaluates an equation. ans is the value substituted for Ans, and
// degrees selects degrees rather than radians for trigonometric functions.
// The equation is not modified. Solve returns an error of type *NumberError,
// *StackError or *UnsupportedError if the equation cannot be evaluated.
// Arithmetic follows IEEE 754, so e.g. division by zero is not an error.
func Solve(eq *Equation, degrees bool, ans float64, opts ...SolveOption) (float64, error) {
	return Eval(eq.Clean(ans), degrees, opts...)
}

// machine is the pair of stacks used to evaluate a stream of items.
type machine struct {
	ops  []Kind
	vals []float64
	p    solvectx
}

// Eval evaluates a stream of plain arithmetic items as produced by
// Equation.Clean. An empty stream evaluates to 0.
func Eval(stream []Item, degrees bool, opts ...SolveOption) (float64, error) {
	if len(stream) == 0 {
		return 0, nil
	}
	m := machine{
		ops:  make([]Kind, 0, len(stream)/2+1),
		vals: make([]float64, 0, len(stream)/2+1),
		p:    newSolvectx(opts),
	}
	for _, it := range stream {
		if err := m.step(it, degrees); err != nil {
			return 0, err
		}
		m.p.trace("step", "item", it, "values", m.vals, "ops", m.ops)
	}
	// Apply what remains, innermost first.
	for len(m.ops) > 0 {
		op := m.ops[len(m.ops)-1]
		if !op.IsBinary() {
			return 0, &UnsupportedError{Item: Tok(op)}
		}
		if err := m.reduce(); err != nil {
			return 0, err
		}
	}
	if len(m.vals) != 1 {
		return 0, &StackError{Have: len(m.vals)}
	}
	return m.vals[0], nil
}

// step consumes one item.
func (m *machine) step(it Item, degrees bool) error {
	switch k := it.Kind; {
	case k == Number:
		v, err := strconv.ParseFloat(it.Digits, 64)
		if err != nil {
			return &NumberError{Digits: it.Digits, Err: err}
		}
		m.vals = append(m.vals, v)
	case k.IsOpener():
		m.ops = append(m.ops, k)
	case k == CloseParen:
		for len(m.ops) > 0 && !m.ops[len(m.ops)-1].IsOpener() {
			if err := m.reduce(); err != nil {
				return err
			}
		}
		if len(m.ops) == 0 {
			// Unmatched close. Clean never produces one.
			return nil
		}
		fn := m.ops[len(m.ops)-1]
		m.ops = m.ops[:len(m.ops)-1]
		if fn == OpenParen {
			return nil
		}
		if len(m.vals) == 0 {
			return &StackError{Item: Tok(fn)}
		}
		top := &m.vals[len(m.vals)-1]
		r, err := call(fn, *top, degrees)
		if err != nil {
			return err
		}
		m.p.trace("call", "func", fn.String(), "arg", *top, "result", r)
		*top = r
	case k.IsBinary():
		for len(m.ops) > 0 && m.ops[len(m.ops)-1].HasPrecedenceOver(k) && len(m.vals) >= 2 {
			if err := m.reduce(); err != nil {
				return err
			}
		}
		m.ops = append(m.ops, k)
	case k == Factorial:
		if len(m.vals) == 0 {
			return &StackError{Item: it}
		}
		top := &m.vals[len(m.vals)-1]
		*top = factorial(*top)
	default:
		return &UnsupportedError{Item: it}
	}
	return nil
}

// reduce pops an operator and two values and pushes the result.
func (m *machine) reduce() error {
	op := m.ops[len(m.ops)-1]
	if len(m.vals) < 2 {
		return &StackError{Item: Tok(op), Have: len(m.vals)}
	}
	x, y := m.vals[len(m.vals)-2], m.vals[len(m.vals)-1]
	r, ok := apply(op, x, y)
	if !ok {
		return &UnsupportedError{Item: Tok(op)}
	}
	m.p.trace("apply", "op", op.String(), "lhs", x, "rhs", y, "result", r)
	m.ops = m.ops[:len(m.ops)-1]
	m.vals = m.vals[:len(m.vals)-2]
	m.vals = append(m.vals, r)
	return nil
}

// EvalString is a shortcut to type an expression into a new equation and
// solve it.
func EvalString(src string, degrees bool, ans float64, opts ...SolveOption) (float64, error) {
	eq, err := Read(strings.NewReader(src))
	if err != nil {
		return 0, err
	}
	return Solve(eq, degrees, ans, opts...)
}
