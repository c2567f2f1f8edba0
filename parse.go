package cz

import (
	"errors"
	"strconv"
	"strings"
)

// Parser builds an expression tree from a token stream.
//
// Grammar, loosest binding first:
//
//	additive       = multiplicative [ ("+" | "-") additive ]
//	multiplicative = power [ ("*" | "/") multiplicative ]
//	power          = atomic [ "^" power ]
//	atomic         = number | "(" additive ")"
//
// Every binary level recurses into itself for its right operand, so chains of
// the same level group to the right: 1-2-3 is 1-(2-3). Tokens left over after
// a complete expression are ignored.
type Parser struct {
	tokens *Cursor[Token]
}

func NewParser(source string) *Parser {
	return NewTokenParser(Tokenize(source))
}

func NewTokenParser(tokens []Token) *Parser {
	return &Parser{
		tokens: NewCursor(tokens),
	}
}

func (p *Parser) Parse() (Expr, error) {
	return p.parseExpression()
}

// Parse tokenizes and parses source.
func Parse(source string) (Expr, error) {
	return NewParser(source).Parse()
}

func (p *Parser) parseExpression() (Expr, error) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	op, ok := p.tokens.Current()
	if !ok || !op.is(TokenOperator, "+", "-") {
		return left, nil
	}
	p.tokens.Forward()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if op.Payload == "+" {
		return &Add{Left: left, Right: right}, nil
	}
	return &Sub{Left: left, Right: right}, nil
}

func (p *Parser) parseMultiplicative() (Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	op, ok := p.tokens.Current()
	if !ok || !op.is(TokenOperator, "*", "/") {
		return left, nil
	}
	p.tokens.Forward()
	right, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	if op.Payload == "*" {
		return &Mul{Left: left, Right: right}, nil
	}
	return &Div{Left: left, Right: right}, nil
}

func (p *Parser) parsePower() (Expr, error) {
	left, err := p.parseAtomic()
	if err != nil {
		return nil, err
	}
	op, ok := p.tokens.Current()
	if !ok || !op.is(TokenOperator, "^") {
		return left, nil
	}
	p.tokens.Forward()
	right, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &Pow{Left: left, Right: right}, nil
}

func (p *Parser) parseAtomic() (Expr, error) {
	tok, ok := p.tokens.Current()
	if !ok {
		return nil, &SyntaxError{Err: ErrUnexpectedToken, Pos: -1}
	}

	switch {
	case tok.Type == TokenNumber:
		p.tokens.Forward()
		return parseNumber(tok)
	case tok.is(TokenParentheses, "("):
		p.tokens.Forward()
		content, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		closing, ok := p.tokens.Current()
		if !ok || !closing.is(TokenParentheses, ")") {
			return nil, p.imbalanced()
		}
		p.tokens.Forward()
		return &Paren{Content: content}, nil
	}

	return nil, &SyntaxError{Err: ErrUnexpectedToken, Pos: tok.Pos, Token: &tok}
}

// imbalanced blames the current token, or the last one when the stream is
// exhausted.
func (p *Parser) imbalanced() error {
	err := &SyntaxError{Err: ErrImbalancedParentheses, Pos: -1}
	tok, ok := p.tokens.Current()
	if !ok {
		tok, ok = p.tokens.Last()
	}
	if ok {
		err.Pos = tok.Pos
		err.Token = &tok
	}
	return err
}

func parseNumber(tok Token) (Expr, error) {
	v, err := strconv.ParseFloat(strings.Replace(tok.Payload, ",", ".", 1), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// only hand-built token streams get here
		return nil, &SyntaxError{Err: ErrUnexpectedToken, Pos: tok.Pos, Token: &tok}
	}
	return &Number{Value: v, Literal: tok.Payload}, nil
}
