package calc

import (
	"strconv"
	"strings"
)

// Equation is an editable calculator expression. Items are added with TryPush,
// which keeps the sequence parseable at every step, so that an Equation can be
// evaluated at any time. The zero Equation is empty and ready to use. An
// Equation is not safe to use concurrently.
type Equation struct {
	list []Item
}

// New creates an empty equation.
func New() *Equation {
	return &Equation{}
}

// Len returns the number of items in the equation.
func (eq *Equation) Len() int {
	return len(eq.list)
}

// IsEmpty returns whether the equation has no items.
func (eq *Equation) IsEmpty() bool {
	return len(eq.list) == 0
}

// Items returns a copy of the items in the equation.
func (eq *Equation) Items() []Item {
	return append([]Item(nil), eq.list...)
}

// Clone returns a copy of the equation that shares no storage with it.
func (eq *Equation) Clone() *Equation {
	return &Equation{list: eq.Items()}
}

// Equal returns whether two equations hold the same items.
func (eq *Equation) Equal(other *Equation) bool {
	if len(eq.list) != len(other.list) {
		return false
	}
	for i, it := range eq.list {
		if it != other.list[i] {
			return false
		}
	}
	return true
}

// OpenParenthesesCount returns the number of openers that have not been
// closed.
func (eq *Equation) OpenParenthesesCount() int {
	return openCount(eq.list)
}

func openCount(items []Item) int {
	n := 0
	for _, it := range items {
		switch {
		case it.IsOpener():
			n++
		case it.Kind == CloseParen:
			n--
		}
	}
	return n
}

// ContainsAns returns whether the equation refers to the previous answer.
func (eq *Equation) ContainsAns() bool {
	for _, it := range eq.list {
		if it.Kind == Ans {
			return true
		}
	}
	return false
}

// Clear removes all items.
func (eq *Equation) Clear() {
	eq.list = eq.list[:0]
}

// last returns a pointer to the last item, or nil if the equation is empty.
func (eq *Equation) last() *Item {
	if len(eq.list) == 0 {
		return nil
	}
	return &eq.list[len(eq.list)-1]
}

// lastComplete returns whether there is a last item and it is value-complete.
func (eq *Equation) lastComplete() bool {
	l := eq.last()
	return l != nil && l.IsValueComplete()
}

func (eq *Equation) push(items ...Item) {
	eq.list = append(eq.list, items...)
}

// implicitMul pushes a Multiply if the last item is value-complete.
func (eq *Equation) implicitMul() {
	if eq.lastComplete() {
		eq.push(Tok(Multiply))
	}
}

// TryPush adds an item to the equation if it is valid in the current state.
// It may also insert items implied by the new one, like an implicit
// multiplication before a parenthesis that follows a number, or a zero before
// an operator typed into an empty equation. An operator typed after another
// operator replaces it. If the item is rejected, the result is false and the
// equation is unchanged.
func (eq *Equation) TryPush(it Item) bool {
	if it.Kind != Number && it.Kind != Rnd {
		it.Digits = ""
	}
	last := eq.last()
	switch k := it.Kind; {
	case k.IsOpener():
		eq.implicitMul()
		eq.push(it)
		return true

	case k == CloseParen:
		if !eq.lastComplete() || eq.OpenParenthesesCount() <= 0 {
			return false
		}
		eq.push(it)
		return true

	case k == Number:
		return eq.pushDigits(it.Digits)

	case k == Add, k == Multiply, k == Divide:
		switch {
		case last == nil:
			eq.push(Num("0"), it)
		case last.IsValueComplete():
			eq.push(it)
		case last.Kind == Add, last.Kind == Multiply, last.Kind == Divide, last.Kind == Subtract:
			*last = it
		default:
			return false
		}
		return true

	case k == Factorial, k == Percent:
		switch {
		case last == nil:
			eq.push(Num("0"), it)
		case last.isMinus():
			return false
		case last.IsValueComplete():
			eq.push(it)
		default:
			return false
		}
		return true

	case k == Subtract:
		// A minus that cannot be binary starts a negative number.
		switch {
		case last == nil, last.IsOpener():
			eq.push(Num("-"))
		case last.isMinus():
			return false
		case last.Kind == Percent, last.Kind == Divide, last.Kind == Multiply, last.Kind == Power, last.Kind == EXP:
			eq.push(Num("-"))
		case last.Kind == Add:
			*last = it
		case last.IsValueComplete():
			eq.push(it)
		default:
			return false
		}
		return true

	case k == Power:
		switch {
		case last == nil:
			eq.push(Num("0"), it)
		case last.IsValueComplete():
			eq.push(it)
		default:
			return false
		}
		return true

	case k == Pi, k == E, k == Ans:
		eq.implicitMul()
		eq.push(Tok(k))
		return true

	case k == Rnd:
		if _, err := strconv.ParseFloat(it.Digits, 64); err != nil {
			return false
		}
		eq.implicitMul()
		eq.push(it)
		return true

	case k == EXP:
		if last == nil || last.Kind != Number || last.isMinus() || strings.HasSuffix(last.Digits, ".") {
			return false
		}
		eq.push(it)
		return true
	}
	return false
}

// pushDigits adds each rune of digits as though typed separately. Either all
// of them are accepted or the equation is left unchanged.
func (eq *Equation) pushDigits(digits string) bool {
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	if len(digits) == 1 {
		return eq.pushDigit(digits[0])
	}
	save := eq.Clone()
	for i := 0; i < len(digits); i++ {
		if !eq.pushDigit(digits[i]) {
			eq.list = save.list
			return false
		}
	}
	return true
}

// pushDigit adds a single digit or decimal point.
func (eq *Equation) pushDigit(d byte) bool {
	last := eq.last()
	if last == nil || last.Kind != Number {
		eq.implicitMul()
		if d == '.' {
			eq.push(Num("0."))
		} else {
			eq.push(Num(string(d)))
		}
		return true
	}
	cur := last.Digits
	switch {
	case d == '.' && cur == "-":
		last.Digits = "-0."
	case d == '.' && strings.Contains(cur, "."):
		return false
	case d == '.':
		last.Digits = cur + "."
	case cur == "0":
		last.Digits = string(d)
	case cur == "-0":
		last.Digits = "-" + string(d)
	default:
		last.Digits = cur + string(d)
	}
	return true
}

// Backspace removes the last typed key. A trailing Number loses one rune. A
// Power, Factorial or Percent is removed together with the zero before it,
// since TryPush inserts that zero itself when the equation is empty. Does
// nothing if the equation is empty.
func (eq *Equation) Backspace() {
	n := len(eq.list)
	if n == 0 {
		return
	}
	last := &eq.list[n-1]
	switch last.Kind {
	case Number:
		switch d := last.Digits; {
		case d == "0.":
			eq.list = eq.list[:n-1]
		case d == "-0.":
			last.Digits = "-"
		case len(d) > 1:
			last.Digits = d[:len(d)-1]
		default:
			eq.list = eq.list[:n-1]
		}
	case Power, Factorial, Percent:
		if n >= 2 && eq.list[n-2].isZero() {
			eq.list = eq.list[:n-2]
		} else {
			eq.list = eq.list[:n-1]
		}
	default:
		eq.list = eq.list[:n-1]
	}
}
