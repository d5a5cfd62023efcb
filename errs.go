package calc

import "strconv"

// NumberError is an error indicating a Number item whose digits do not parse.
type NumberError struct {
	// Digits is the text of the item.
	Digits string
	// Err is the error from strconv.
	Err error
}

func (err *NumberError) Error() string {
	return "malformed number " + strconv.Quote(err.Digits) + ": " + err.Err.Error()
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// StackError is an error indicating that an item found too few values to
// operate on, or that evaluation ended with a number of values other than one.
type StackError struct {
	// Item is the item being applied, or the zero Item when the error occurred
	// after the whole stream was consumed.
	Item Item
	// Have is the number of values that were on the stack.
	Have int
}

func (err *StackError) Error() string {
	if err.Item.Kind == kindNone {
		return "evaluation ended with " + strconv.Itoa(err.Have) + " values"
	}
	return "not enough values for " + err.Item.Kind.String() + " (have " + strconv.Itoa(err.Have) + ")"
}

// UnsupportedError is an error indicating an item which cannot be evaluated.
// Nroot is the only such item that a well-formed Equation can contain.
type UnsupportedError struct {
	Item Item
}

func (err *UnsupportedError) Error() string {
	if err.Item.Kind == Nroot {
		return "nth root is not implemented"
	}
	return "cannot evaluate " + err.Item.String()
}

// LexError indicates text that does not name any key. It implements
// InputError.
type LexError struct {
	// Text is the word or rune that was not understood.
	Text string
	// Col is the number of runes scanned up to and including the start of
	// Text.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unknown key "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid text input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the text that caused the error.
	Pos() int
}

var _ InputError = (*LexError)(nil)
