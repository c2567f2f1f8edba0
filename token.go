package cz

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	TokenNumber TokenType = iota
	TokenOperator
	TokenParentheses
)

func (t TokenType) String() string {
	switch t {
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenParentheses:
		return "parentheses"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a classified lexical unit. Pos is the 0-based character offset of
// the first character of Payload in the source.
type Token struct {
	Payload string
	Pos     int
	Type    TokenType
}

func (t Token) String() string {
	return fmt.Sprintf("%v %q at position %d", t.Type, t.Payload, t.Pos)
}

func (t Token) is(typ TokenType, payloads ...string) bool {
	if t.Type != typ {
		return false
	}
	for _, p := range payloads {
		if t.Payload == p {
			return true
		}
	}
	return false
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isOperator(r rune) bool {
	return strings.ContainsRune("+-*/^", r)
}

func isParentheses(r rune) bool {
	return r == '(' || r == ')'
}

// Tokenize splits source into tokens. Characters that belong to no token are
// dropped silently, Tokenize never fails.
func Tokenize(source string) []Token {
	src := []rune(source)
	c := NewCursor(src)
	tokens := []Token{}

	for c.Open() {
		r, _ := c.Current()

		switch {
		case isSpace(r):
		case isDigit(r):
			tokens = append(tokens, scanNumber(c, src))
			continue
		case isOperator(r):
			tokens = append(tokens, Token{
				Payload: string(r),
				Pos:     c.Pos(),
				Type:    TokenOperator,
			})
		case isParentheses(r):
			tokens = append(tokens, Token{
				Payload: string(r),
				Pos:     c.Pos(),
				Type:    TokenParentheses,
			})
		}

		c.Forward()
	}

	return tokens
}

// scanNumber consumes digits with an optional ',' fraction and leaves the
// cursor on the first character after the number.
func scanNumber(c *Cursor[rune], src []rune) Token {
	start := c.Pos()
	skipDigits(c)

	if r, ok := c.Current(); ok && r == ',' {
		if r, ok := c.Forward(); ok && isDigit(r) {
			skipDigits(c)
		} else {
			// not a fraction: leave the comma for the outer loop
			c.Back()
		}
	}

	return Token{
		Payload: string(src[start:c.Pos()]),
		Pos:     start,
		Type:    TokenNumber,
	}
}

func skipDigits(c *Cursor[rune]) {
	for r, ok := c.Current(); ok && isDigit(r); r, ok = c.Forward() {
	}
}
