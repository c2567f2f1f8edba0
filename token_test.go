package cz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func num(payload string, pos int) Token {
	return Token{Payload: payload, Pos: pos, Type: TokenNumber}
}

func op(payload string, pos int) Token {
	return Token{Payload: payload, Pos: pos, Type: TokenOperator}
}

func paren(payload string, pos int) Token {
	return Token{Payload: payload, Pos: pos, Type: TokenParentheses}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "",
			want:  []Token{},
		},
		{
			input: "2",
			want:  []Token{num("2", 0)},
		},
		{
			input: "234",
			want:  []Token{num("234", 0)},
		},
		{
			input: "2,4",
			want:  []Token{num("2,4", 0)},
		},
		{
			input: "2,",
			want:  []Token{num("2", 0)},
		},
		{
			input: "2,+1",
			want:  []Token{num("2", 0), op("+", 2), num("1", 3)},
		},
		{
			input: "1,2,3",
			want:  []Token{num("1,2", 0), num("3", 4)},
		},
		{
			input: ",5",
			want:  []Token{num("5", 1)},
		},
		{
			input: "+",
			want:  []Token{op("+", 0)},
		},
		{
			input: "2+13",
			want:  []Token{num("2", 0), op("+", 1), num("13", 2)},
		},
		{
			input: "132 + 134",
			want:  []Token{num("132", 0), op("+", 4), num("134", 6)},
		},
		{
			input: "1-2*3/4^5",
			want: []Token{
				num("1", 0), op("-", 1), num("2", 2), op("*", 3),
				num("3", 4), op("/", 5), num("4", 6), op("^", 7), num("5", 8),
			},
		},
		{
			input: "(1\t+\n2)",
			want:  []Token{paren("(", 0), num("1", 1), op("+", 3), num("2", 5), paren(")", 6)},
		},
		{
			input: "2 x % 3",
			want:  []Token{num("2", 0), num("3", 6)},
		},
		{
			input: "ä+1",
			want:  []Token{op("+", 1), num("1", 2)},
		},
	}
	for _, test := range tests {
		got := Tokenize(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestTokenizeDigitStrings(t *testing.T) {
	for _, d := range []string{"0", "7", "42", "007", "1234567890", "99999999999999999999999"} {
		got := Tokenize(d)
		if diff := cmp.Diff([]Token{num(d, 0)}, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", d, diff)
		}
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	const input = "(1,5 + 2) * 3 ^ 2"
	if diff := cmp.Diff(Tokenize(input), Tokenize(input)); diff != "" {
		t.Error(diff)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{num("2,4", 0), `number "2,4" at position 0`},
		{op("+", 3), `operator "+" at position 3`},
		{paren(")", 12), `parentheses ")" at position 12`},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("want %q but got %q", test.want, got)
		}
	}
}
