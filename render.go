package calc

import "strings"

// Style says how a Span should be drawn.
type Style int8

const (
	// Plain is text the user typed.
	Plain Style = iota
	// Placeholder marks where the next key will go, e.g. an empty exponent.
	Placeholder
	// Ghost is a closing parenthesis the user has not typed yet, which
	// evaluation will add.
	Ghost
)

// Span is a run of display text. Level counts how many exponents deep the
// text is; a display would typically shrink and raise each level.
type Span struct {
	Text  string
	Level int
	Style Style
}

var glyphs = [...]string{
	Factorial:  "!",
	Percent:    "%",
	OpenParen:  "(",
	CloseParen: ")",
	Sin:        "sin(",
	Cos:        "cos(",
	Tan:        "tan(",
	Asin:       "arcsin(",
	Acos:       "arccos(",
	Atan:       "arctan(",
	Ln:         "ln(",
	Log:        "log(",
	Sqrt:       "√(",
	Nroot:      "ⁿ√(",
	Add:        " + ",
	Subtract:   " – ",
	Multiply:   " × ",
	Divide:     " ÷ ",
	Pi:         "π",
	E:          "e",
	Ans:        "Ans",
	EXP:        "E",
	Power:      "",
	kindCount:  "",
}

// glyph returns the display text of an item.
func glyph(it Item) string {
	switch it.Kind {
	case Number, Rnd:
		return it.Digits
	}
	if it.Kind < 0 || it.Kind >= kindCount {
		return ""
	}
	return glyphs[it.Kind]
}

// Render lays out the equation as styled spans. Exponents are raised one
// level; an exponent ends after a complete value that closes every group
// opened inside it, unless another Power follows. An empty equation renders
// as "0". Groups left open are closed with Ghost spans.
func (eq *Equation) Render() []Span {
	if len(eq.list) == 0 {
		return []Span{{Text: "0"}}
	}
	spans := make([]Span, 0, len(eq.list)+eq.OpenParenthesesCount())
	// open counts the unclosed openers at each level.
	open := []int{}
	// groups has one entry per exponent level entered, counting the openers
	// inside it which are not yet closed.
	groups := []int{}
	grow := func(level int) {
		for len(open) <= level {
			open = append(open, 0)
		}
	}
	for i, it := range eq.list {
		level := len(groups)
		grow(level)
		switch {
		case it.IsOpener():
			open[level]++
		case it.Kind == CloseParen:
			open[level]--
		}
		if it.Kind == Power {
			groups = append(groups, 0)
			if i == len(eq.list)-1 {
				spans = append(spans, Span{Text: "□", Level: level + 1, Style: Placeholder})
				grow(level + 1)
			}
		} else if g := glyph(it); g != "" {
			spans = append(spans, Span{Text: g, Level: level})
		}
		if len(groups) == 0 {
			continue
		}
		top := &groups[len(groups)-1]
		switch {
		case it.IsOpener():
			*top++
		case it.Kind == CloseParen:
			*top--
		}
		if *top == 0 && it.IsValueComplete() && (i+1 == len(eq.list) || eq.list[i+1].Kind != Power) {
			for len(groups) > 0 && groups[len(groups)-1] == 0 {
				groups = groups[:len(groups)-1]
			}
		}
	}
	for level := len(open) - 1; level >= 0; level-- {
		for n := open[level]; n > 0; n-- {
			spans = append(spans, Span{Text: ")", Level: level, Style: Ghost})
		}
	}
	return spans
}

// String formats the equation on one line, with ^ for Power and without the
// parentheses it is missing.
func (eq *Equation) String() string {
	if len(eq.list) == 0 {
		return "0"
	}
	var b strings.Builder
	for _, it := range eq.list {
		if it.Kind == Power {
			b.WriteString("^")
			continue
		}
		b.WriteString(glyph(it))
	}
	return b.String()
}
