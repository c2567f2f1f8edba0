package cz

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrImbalancedParentheses = errors.New("imbalanced parentheses")

	// Decimal evaluation only. Float evaluation follows IEEE 754 instead.
	ErrDivisionByZero = errors.New("division by zero")
	ErrUndefined      = errors.New("undefined result")
)

// SyntaxError is returned by Parse and Interpret. Err is one of
// ErrUnexpectedToken or ErrImbalancedParentheses.
type SyntaxError struct {
	Err error
	// Pos is the 0-based character offset the error refers to, or -1 when
	// the input ended before any token could be blamed.
	Pos int
	// Token is the offending token, nil when the input was exhausted.
	Token *Token
}

func (e *SyntaxError) Error() string {
	if errors.Is(e.Err, ErrImbalancedParentheses) {
		return fmt.Sprintf("Imbalanced brackets at position %d detected!", e.Pos)
	}
	found := "(empty)"
	if e.Token != nil {
		found = e.Token.String()
	}
	return fmt.Sprintf("Expected <number> found <%s>.", found)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
