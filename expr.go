package cz

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Expr is a node of the expression tree. The set of implementations is
// closed: every type switch over Expr must handle all of them.
//
//go-sumtype:decl Expr
type Expr interface {
	fmt.Stringer
	expr()
}

type Number struct {
	Value float64
	// Literal is the source text of the number, empty for trees built by
	// hand.
	Literal string
}

type Add struct {
	Left, Right Expr
}

type Sub struct {
	Left, Right Expr
}

type Mul struct {
	Left, Right Expr
}

type Div struct {
	Left, Right Expr
}

type Pow struct {
	Left, Right Expr
}

// Paren is a parenthesized group. It evaluates to its content.
type Paren struct {
	Content Expr
}

func (*Number) expr() {}
func (*Add) expr()    {}
func (*Sub) expr()    {}
func (*Mul) expr()    {}
func (*Div) expr()    {}
func (*Pow) expr()    {}
func (*Paren) expr()  {}

func (n *Number) String() string { return FormatNumber(n.Value, -1) }
func (n *Add) String() string    { return binaryString("+", n.Left, n.Right) }
func (n *Sub) String() string    { return binaryString("-", n.Left, n.Right) }
func (n *Mul) String() string    { return binaryString("*", n.Left, n.Right) }
func (n *Div) String() string    { return binaryString("/", n.Left, n.Right) }
func (n *Pow) String() string    { return binaryString("^", n.Left, n.Right) }
func (n *Paren) String() string  { return fmt.Sprintf("(paren %v)", n.Content) }

func binaryString(op string, left, right Expr) string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "(", op, " ")
	fmt.Fprint(&buf, left)
	fmt.Fprint(&buf, " ")
	fmt.Fprint(&buf, right)
	fmt.Fprint(&buf, ")")
	return buf.String()
}

// FormatNumber renders v the way results are printed. A negative precision
// selects the shortest representation that reads back to v.
func FormatNumber(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if precision >= 0 {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	if abs := math.Abs(v); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent drops the leading zero strconv pads exponents with:
// 1e-07 becomes 1e-7.
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok || len(exp) < 2 {
		return s
	}
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + exp[:1] + digits
}
