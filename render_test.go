package calc_test

import (
	"reflect"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name string
		keys []calc.Item
		want []calc.Span
	}{
		{"empty", nil, []calc.Span{{Text: "0"}}},
		{"plain", []calc.Item{n("1"), add, n("2.5")}, []calc.Span{
			{Text: "1"}, {Text: " + "}, {Text: "2.5"},
		}},
		{"exponent", []calc.Item{n("2"), pow, n("3"), add, n("1")}, []calc.Span{
			{Text: "2"}, {Text: "3", Level: 1}, {Text: " + "}, {Text: "1"},
		}},
		{"placeholder", []calc.Item{n("2"), pow}, []calc.Span{
			{Text: "2"}, {Text: "□", Level: 1, Style: calc.Placeholder},
		}},
		{"tower", []calc.Item{n("2"), pow, n("3"), pow, n("2")}, []calc.Span{
			{Text: "2"}, {Text: "3", Level: 1}, {Text: "2", Level: 2},
		}},
		{"ghost", []calc.Item{lparen, n("1"), add, n("2")}, []calc.Span{
			{Text: "("}, {Text: "1"}, {Text: " + "}, {Text: "2"}, {Text: ")", Style: calc.Ghost},
		}},
		{"ghost-exponent", []calc.Item{n("2"), pow, lparen, n("1"), add}, []calc.Span{
			{Text: "2"}, {Text: "(", Level: 1}, {Text: "1", Level: 1}, {Text: " + ", Level: 1},
			{Text: ")", Level: 1, Style: calc.Ghost},
		}},
		{"closed-exponent", []calc.Item{n("2"), pow, lparen, n("1"), rparen, mul, n("3")}, []calc.Span{
			{Text: "2"}, {Text: "(", Level: 1}, {Text: "1", Level: 1}, {Text: ")", Level: 1},
			{Text: " × "}, {Text: "3"},
		}},
		{"ghosts-deepest-first", []calc.Item{sin, n("2"), pow, lparen, n("1")}, []calc.Span{
			{Text: "sin("}, {Text: "2"}, {Text: "(", Level: 1}, {Text: "1", Level: 1},
			{Text: ")", Level: 1, Style: calc.Ghost}, {Text: ")", Style: calc.Ghost},
		}},
		{"glyphs", []calc.Item{pi, mul, calc.Tok(calc.E), sub, ans, fact, pct}, []calc.Span{
			{Text: "π"}, {Text: " × "}, {Text: "e"}, {Text: " – "}, {Text: "Ans"}, {Text: "!"}, {Text: "%"},
		}},
		{"exp", []calc.Item{n("2"), exp, n("5")}, []calc.Span{
			{Text: "2"}, {Text: "E"}, {Text: "5"},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := typed(c.keys...).Render()
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("wrong spans\n  got: %+v\n want: %+v", got, c.want)
			}
		})
	}
}

func TestEquationString(t *testing.T) {
	cases := []struct {
		keys []calc.Item
		want string
	}{
		{nil, "0"},
		{[]calc.Item{n("1"), add, n("2")}, "1 + 2"},
		{[]calc.Item{n("2"), pow, n("3")}, "2^3"},
		{[]calc.Item{lparen, n("1"), div, sub, n("2")}, "(1 ÷ -2"},
		{[]calc.Item{calc.Tok(calc.Sqrt), n("4"), rparen, mul, calc.Tok(calc.Log), n("1")}, "√(4) × log(1"},
		{[]calc.Item{calc.Tok(calc.Asin), n("1")}, "arcsin(1"},
	}
	for _, c := range cases {
		if got := typed(c.keys...).String(); got != c.want {
			t.Errorf("wrong string for %v: want %q, got %q", c.keys, c.want, got)
		}
	}
}
