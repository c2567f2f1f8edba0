package cz

import (
	"fmt"
	"math"
)

// Evaluate reduces e to a number. Division by zero and out of domain powers
// produce IEEE 754 infinities and NaN rather than errors.
func Evaluate(e Expr) float64 {
	switch n := e.(type) {
	case *Number:
		return n.Value
	case *Add:
		return Evaluate(n.Left) + Evaluate(n.Right)
	case *Sub:
		return Evaluate(n.Left) - Evaluate(n.Right)
	case *Mul:
		return Evaluate(n.Left) * Evaluate(n.Right)
	case *Div:
		return Evaluate(n.Left) / Evaluate(n.Right)
	case *Pow:
		return math.Pow(Evaluate(n.Left), Evaluate(n.Right))
	case *Paren:
		return Evaluate(n.Content)
	}
	panic(fmt.Sprintf("unexpected expression %T", e))
}

// Interpret parses and evaluates source.
func Interpret(source string) (float64, error) {
	e, err := Parse(source)
	if err != nil {
		return 0, err
	}
	return Evaluate(e), nil
}
