package calc

import (
	"strconv"
	"strings"
)

// Kind identifies the type of an Item.
type Kind int8

const (
	kindNone Kind = iota

	Number // digits typed so far, possibly a lone "-" or ending in "."
	Rnd    // generated literal
	Pi
	E
	Ans

	Factorial // postfix
	Percent   // postfix

	OpenParen
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Ln
	Log
	Sqrt
	Nroot
	CloseParen

	Add
	Subtract
	Multiply
	Divide
	Power

	EXP // ×10^

	kindCount
)

var kindNames = [...]string{
	kindNone:   "None",
	Number:     "Number",
	Rnd:        "Rnd",
	Pi:         "Pi",
	E:          "E",
	Ans:        "Ans",
	Factorial:  "Factorial",
	Percent:    "Percent",
	OpenParen:  "OpenParen",
	Sin:        "Sin",
	Cos:        "Cos",
	Tan:        "Tan",
	Asin:       "Asin",
	Acos:       "Acos",
	Atan:       "Atan",
	Ln:         "Ln",
	Log:        "Log",
	Sqrt:       "Sqrt",
	Nroot:      "Nroot",
	CloseParen: "CloseParen",
	Add:        "Add",
	Subtract:   "Subtract",
	Multiply:   "Multiply",
	Divide:     "Divide",
	Power:      "Power",
	EXP:        "EXP",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsOpener returns whether k opens a group that a CloseParen closes, i.e. a
// parenthesis or a function call.
func (k Kind) IsOpener() bool {
	switch k {
	case OpenParen, Sin, Cos, Tan, Asin, Acos, Atan, Ln, Log, Sqrt, Nroot:
		return true
	}
	return false
}

// IsBinary returns whether k is an infix operator.
func (k Kind) IsBinary() bool {
	switch k {
	case Add, Subtract, Multiply, Divide, Power:
		return true
	}
	return false
}

// HasPrecedenceOver reports whether an operator k waiting on the operator
// stack must be applied before other is pushed. Openers only leave the stack
// through a matching CloseParen. Power is right-associative, so it never
// yields to another Power; other operators yield to themselves.
func (k Kind) HasPrecedenceOver(other Kind) bool {
	switch {
	case k == other:
		return k != Power
	case k.IsOpener():
		return false
	case other.IsOpener(), other == CloseParen:
		return false
	}
	switch other {
	case Power:
		return false
	case Multiply, Divide:
		return k == Power
	}
	return true
}

// Item is a single unit of calculator input: a digit group, a constant, an
// operator, a function or a bracket. Digits is used only by Number and Rnd.
type Item struct {
	Kind   Kind
	Digits string
}

// Tok returns the item for a kind which carries no digits.
func Tok(k Kind) Item {
	return Item{Kind: k}
}

// Num returns a Number item. TryPush accepts digits, "." and runs of them.
func Num(digits string) Item {
	return Item{Kind: Number, Digits: digits}
}

// Random returns an Rnd item holding v. The caller supplies the randomness.
func Random(v float64) Item {
	return Item{Kind: Rnd, Digits: formatFloat(v)}
}

// IsOpener is a shortcut for it.Kind.IsOpener().
func (it Item) IsOpener() bool {
	return it.Kind.IsOpener()
}

// IsValueComplete returns whether the item can end a value, so that a binary
// operator or a closing parenthesis may follow it.
func (it Item) IsValueComplete() bool {
	switch it.Kind {
	case Number:
		return !it.isMinus()
	case Rnd, Pi, E, Ans, Factorial, Percent, CloseParen:
		return true
	}
	return false
}

// isMinus returns whether the item is the placeholder of a unary minus that
// is still waiting for digits.
func (it Item) isMinus() bool {
	return it.Kind == Number && it.Digits == "-"
}

// isZero returns whether the item is a Number that TryPush may have inserted
// as an implicit left operand.
func (it Item) isZero() bool {
	return it.Kind == Number && (it.Digits == "0" || it.Digits == "0.")
}

func (it Item) String() string {
	switch it.Kind {
	case Number, Rnd:
		return it.Kind.String() + "(" + strconv.Quote(it.Digits) + ")"
	}
	return it.Kind.String()
}

// formatFloat formats v as the shortest decimal that parses back to v,
// without an exponent.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	// strconv spells infinities with a sign, which it also parses.
	return strings.TrimPrefix(s, "+")
}
