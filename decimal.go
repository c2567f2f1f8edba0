package cz

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// EvaluateDecimal reduces e with arbitrary-precision decimal arithmetic.
// Numbers are read from their literal text when it is known.
// Decimals have no infinity or NaN, so the cases that produce them in
// Evaluate are reported as ErrDivisionByZero or ErrUndefined.
func EvaluateDecimal(e Expr) (decimal.Decimal, error) {
	switch n := e.(type) {
	case *Number:
		if n.Literal != "" {
			d, err := decimal.NewFromString(strings.Replace(n.Literal, ",", ".", 1))
			if err != nil {
				return decimal.Zero, fmt.Errorf("%w: invalid number %q", ErrUndefined, n.Literal)
			}
			return d, nil
		}
		if math.IsInf(n.Value, 0) || math.IsNaN(n.Value) {
			return decimal.Zero, fmt.Errorf("%w: %v is out of range", ErrUndefined, n)
		}
		return decimal.NewFromFloat(n.Value), nil
	case *Add:
		return evalDecimalPair(n.Left, n.Right, func(l, r decimal.Decimal) (decimal.Decimal, error) {
			return l.Add(r), nil
		})
	case *Sub:
		return evalDecimalPair(n.Left, n.Right, func(l, r decimal.Decimal) (decimal.Decimal, error) {
			return l.Sub(r), nil
		})
	case *Mul:
		return evalDecimalPair(n.Left, n.Right, func(l, r decimal.Decimal) (decimal.Decimal, error) {
			return l.Mul(r), nil
		})
	case *Div:
		return evalDecimalPair(n.Left, n.Right, func(l, r decimal.Decimal) (decimal.Decimal, error) {
			if r.IsZero() {
				return decimal.Zero, fmt.Errorf("%w: %v / %v", ErrDivisionByZero, l, r)
			}
			return l.Div(r), nil
		})
	case *Pow:
		return evalDecimalPair(n.Left, n.Right, decimalPow)
	case *Paren:
		return EvaluateDecimal(n.Content)
	}
	panic(fmt.Sprintf("unexpected expression %T", e))
}

func evalDecimalPair(left, right Expr, op func(l, r decimal.Decimal) (decimal.Decimal, error)) (decimal.Decimal, error) {
	l, err := EvaluateDecimal(left)
	if err != nil {
		return decimal.Zero, err
	}
	r, err := EvaluateDecimal(right)
	if err != nil {
		return decimal.Zero, err
	}
	return op(l, r)
}

func decimalPow(base, exp decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case exp.IsZero():
		return decimal.NewFromInt(1), nil
	case base.IsZero() && exp.IsNegative():
		return decimal.Zero, fmt.Errorf("%w: %v ^ %v", ErrDivisionByZero, base, exp)
	case exp.IsInteger():
		return base.Pow(exp), nil
	case base.IsNegative():
		return decimal.Zero, fmt.Errorf("%w: %v ^ %v", ErrUndefined, base, exp)
	}

	// Fractional exponents go through float64.
	b, _ := base.Float64()
	x, _ := exp.Float64()
	v := math.Pow(b, x)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return decimal.Zero, fmt.Errorf("%w: %v ^ %v", ErrUndefined, base, exp)
	}
	return decimal.NewFromFloat(v), nil
}

// InterpretDecimal parses source and evaluates it with EvaluateDecimal.
func InterpretDecimal(source string) (decimal.Decimal, error) {
	e, err := Parse(source)
	if err != nil {
		return decimal.Zero, err
	}
	return EvaluateDecimal(e)
}
