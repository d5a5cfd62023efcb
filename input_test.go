package calc

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src   string
		items []Item
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []Item{Num("0")}},
		{"12", []Item{Num("1"), Num("2")}},
		{"1.5", []Item{Num("1"), Num("."), Num("5")}},
		{"1 0", []Item{Num("1"), Num("0")}},
		// keys
		{"1+2", []Item{Num("1"), Tok(Add), Num("2")}},
		{"1 − 2 – 3", []Item{Num("1"), Tok(Subtract), Num("2"), Tok(Subtract), Num("3")}},
		{"2×3÷4", []Item{Num("2"), Tok(Multiply), Num("3"), Tok(Divide), Num("4")}},
		{"2*3/4^5", []Item{Num("2"), Tok(Multiply), Num("3"), Tok(Divide), Num("4"), Tok(Power), Num("5")}},
		{"5!%", []Item{Num("5"), Tok(Factorial), Tok(Percent)}},
		{"π√4", []Item{Tok(Pi), Tok(Sqrt), Num("4")}},
		// words
		{"sin(30)", []Item{Tok(Sin), Num("3"), Num("0"), Tok(CloseParen)}},
		{"SIN 30", []Item{Tok(Sin), Num("3"), Num("0")}},
		{"arccos(1)", []Item{Tok(Acos), Num("1"), Tok(CloseParen)}},
		{"sqrt((2))", []Item{Tok(Sqrt), Tok(OpenParen), Num("2"), Tok(CloseParen), Tok(CloseParen)}},
		{"root(8)", []Item{Tok(Nroot), Num("8"), Tok(CloseParen)}},
		{"e^2", []Item{Tok(E), Tok(Power), Num("2")}},
		{"2E5", []Item{Num("2"), Tok(EXP), Num("5")}},
		{"2exp5", []Item{Num("2"), Tok(EXP), Num("5")}},
		{"pi", []Item{Tok(Pi)}},
		{"ANS", []Item{Tok(Ans)}},
		{"2ans", []Item{Num("2"), Tok(Ans)}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			items, err := Tokenize(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("%q failed to tokenize: %v", c.src, err)
			}
			if len(items) == 0 && len(c.items) == 0 {
				return
			}
			if !reflect.DeepEqual(items, c.items) {
				t.Errorf("wrong items from %q\n  got: %v\n want: %v", c.src, items, c.items)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src  string
		text string
		pos  int
	}{
		{"$", "$", 1},
		{"2$", "$", 2},
		{"foo", "foo", 1},
		{"1 + x", "x", 5},
		{"sin(x)", "x", 5},
		{"ππx", "x", 3},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			_, err := Tokenize(strings.NewReader(c.src))
			if err == nil {
				t.Fatalf("%q tokenized without error", c.src)
			}
			var ierr InputError
			if !errors.As(err, &ierr) {
				t.Fatalf("%q gave %T, not an InputError", c.src, err)
			}
			if ierr.Pos() != c.pos {
				t.Errorf("%q: wrong position: want %d, got %d", c.src, c.pos, ierr.Pos())
			}
			var lerr *LexError
			if errors.As(err, &lerr) && lerr.Text != c.text {
				t.Errorf("%q: wrong text: want %q, got %q", c.src, c.text, lerr.Text)
			}
		})
	}
}

func TestRead(t *testing.T) {
	cases := []struct {
		src  string
		want []Item
	}{
		{"1+2", []Item{Num("1"), Tok(Add), Num("2")}},
		{"12.5", []Item{Num("12.5")}},
		// Rejected keys are dropped.
		{"1++2", []Item{Num("1"), Tok(Add), Num("2")}},
		{"1.2.3", []Item{Num("1.23")}},
		{"))", nil},
		{"-5", []Item{Num("-5")}},
		{"2(3)", []Item{Num("2"), Tok(Multiply), Tok(OpenParen), Num("3"), Tok(CloseParen)}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			eq, err := FromString(c.src)
			if err != nil {
				t.Fatal(err)
			}
			got := eq.Items()
			if len(got) == 0 && len(c.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("wrong equation from %q\n  got: %v\n want: %v", c.src, got, c.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	w := Words()
	for i := 1; i < len(w); i++ {
		if w[i-1] >= w[i] {
			t.Errorf("words out of order at %d: %q, %q", i, w[i-1], w[i])
		}
	}
	for _, name := range w {
		if name == "e" || name == "E" {
			continue
		}
		if _, ok := words[name]; !ok {
			t.Errorf("%q is not a word", name)
		}
	}
	if len(w) != len(words)+2 {
		t.Errorf("wrong number of words: want %d, got %d", len(words)+2, len(w))
	}
}
