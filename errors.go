package scicalc

import (
	"errors"
	"strconv"
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the offending text: the invalid rune, the malformed number up to
	// and including the second decimal point, or the unknown identifier.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "identifier", or the empty string for a rune that starts no token.
	Kind string
	// Col is the position of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	switch err.Kind {
	case "number":
		return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
	case "identifier":
		return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Text))
	default:
		return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
	}
}

func (err *LexError) Pos() int {
	return err.Col
}

// SyntaxError indicates a misplaced parenthesis or comma. It implements
// InputError.
type SyntaxError struct {
	// Text is the token that revealed the error.
	Text string
	// Col is the position of that token.
	Col int
	// Msg describes the violation.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Msg+" at "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// Reasons for evaluation failures. An *EvalError unwraps to one of these.
var (
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrNegativeFactorial    = errors.New("factorial of negative number")
	ErrFactorialOverflow    = errors.New("factorial too large")
	ErrDomain               = errors.New("argument outside domain")
	ErrInvalidExpression    = errors.New("invalid expression")
)

// EvalError is an error evaluating a postfix sequence. It implements
// InputError.
type EvalError struct {
	// Text is the token being applied when evaluation failed. It is empty when
	// the failure is in the final result.
	Text string
	// Col is the position of that token, or 0.
	Col int
	// Err is the reason for the failure.
	Err error
}

func (err *EvalError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, err.Err.Error())
	}
	return errpos(err.Col, err.Err.Error()+" for "+strconv.Quote(err.Text))
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

func (err *EvalError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the error,
	// or 0 if the error concerns the expression as a whole.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*EvalError)(nil)
)
