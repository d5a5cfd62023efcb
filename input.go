package calc

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

// keys maps single runes to the items they type.
var keys = map[rune]Item{
	'+': Tok(Add),
	'-': Tok(Subtract),
	'−': Tok(Subtract),
	'–': Tok(Subtract),
	'*': Tok(Multiply),
	'×': Tok(Multiply),
	'/': Tok(Divide),
	'÷': Tok(Divide),
	'^': Tok(Power),
	'!': Tok(Factorial),
	'%': Tok(Percent),
	'(': Tok(OpenParen),
	')': Tok(CloseParen),
	'π': Tok(Pi),
	'√': Tok(Sqrt),
}

// words maps lower-case names to the items they type. "e" and "E" are
// case-sensitive and handled separately.
var words = map[string]Item{
	"sin":    Tok(Sin),
	"cos":    Tok(Cos),
	"tan":    Tok(Tan),
	"asin":   Tok(Asin),
	"acos":   Tok(Acos),
	"atan":   Tok(Atan),
	"arcsin": Tok(Asin),
	"arccos": Tok(Acos),
	"arctan": Tok(Atan),
	"ln":     Tok(Ln),
	"log":    Tok(Log),
	"sqrt":   Tok(Sqrt),
	"root":   Tok(Nroot),
	"pi":     Tok(Pi),
	"ans":    Tok(Ans),
	"exp":    Tok(EXP),
}

// Words returns the names that Tokenize recognizes, for completion.
func Words() []string {
	r := make([]string, 0, len(words)+2)
	for k := range words {
		r = append(r, k)
	}
	r = append(r, "e", "E")
	sortstrs(r)
	return r
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next key. At the end of input, the result is io.EOF.
func (l *lexer) next() (Item, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			return Item{}, err
		}
		pos := l.rune
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			return Num(string(r)), nil
		case unicode.IsLetter(r) && r != 'π':
			l.unreadRune()
			if err := l.scanWord(); err != nil {
				return Item{}, err
			}
			w := l.buf.String()
			l.buf.Reset()
			switch w {
			case "e":
				return Tok(E), nil
			case "E":
				return Tok(EXP), nil
			}
			if it, ok := words[strings.ToLower(w)]; ok {
				if it.IsOpener() {
					// The function's key already opens its group.
					l.skipParen()
				}
				return it, nil
			}
			return Item{}, &LexError{Text: w, Col: pos}
		default:
			if it, ok := keys[r]; ok {
				return it, nil
			}
			return Item{}, &LexError{Text: string(r), Col: pos}
		}
	}
}

func (l *lexer) scanWord() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides word scanning before
				// calling scanWord, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if !unicode.IsLetter(r) || r == 'π' {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// skipParen consumes an open parenthesis if it is the next rune.
func (l *lexer) skipParen() {
	r, err := l.readRune()
	if err != nil {
		return
	}
	if r != '(' {
		l.unreadRune()
	}
}

// Tokenize scans text into the sequence of keys that would type it. Every
// digit and decimal point is its own Number item. Words name functions and
// constants, and a function name swallows a "(" right after it; "e" is
// Euler's number and "E" is EXP. Errors resulting from
// unknown text implement InputError.
func Tokenize(src io.RuneScanner) ([]Item, error) {
	l := lexer{src: src}
	var items []Item
	for {
		it, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return items, nil
			}
			return nil, err
		}
		items = append(items, it)
	}
}

// Read types the keys scanned from src into a new equation. Keys that the
// equation rejects are dropped, as on a keypad.
func Read(src io.RuneScanner) (*Equation, error) {
	items, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	eq := New()
	for _, it := range items {
		eq.TryPush(it)
	}
	return eq, nil
}

// FromString is a shortcut for Read on a string.
func FromString(src string) (*Equation, error) {
	return Read(strings.NewReader(src))
}
