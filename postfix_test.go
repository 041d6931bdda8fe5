package scicalc

import (
	"errors"
	"strings"
	"testing"
)

// rpn renders a postfix sequence as space-separated token texts, with unary
// minus shown as "neg".
func rpn(toks []Token) string {
	s := make([]string, len(toks))
	for i, tok := range toks {
		s[i] = strings.ToLower(tok.Text)
		if tok.Kind == Operator {
			s[i] = tok.Op.String()
		}
	}
	return strings.Join(s, " ")
}

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"add", "1+2", "1 2 +"},
		{"left-assoc", "1-2-3", "1 2 - 3 -"},
		{"prec", "2+3*4", "2 3 4 * +"},
		{"prec-left", "2*3+4", "2 3 * 4 +"},
		{"div-mul", "8/4*2", "8 4 / 2 *"},
		{"pow-right-assoc", "2^3^2", "2 3 2 ^ ^"},
		{"pow-over-mul", "2*3^2", "2 3 2 ^ *"},
		{"parens", "(2+3)*4", "2 3 + 4 *"},
		{"nested", "((1))", "1"},
		{"func", "sin(30)", "30 sin"},
		{"func-expr", "sqrt(3*3+4*4)", "3 3 * 4 4 * + sqrt"},
		{"func-in-expr", "1+ln(e)*2", "1 e ln 2 * +"},
		{"two-args", "root(2,9)", "2 9 root"},
		{"two-args-expr", "root(1+1, 3^2)", "1 1 + 3 2 ^ root"},
		{"nested-funcs", "sin(cos(0))", "0 cos sin"},
		{"func-of-arg", "root(sqrt(4),fact(3))", "4 sqrt 3 fact root"},
		{"neg", "-2", "2 neg"},
		{"neg-pow", "-2^2", "2 2 ^ neg"},
		{"pow-neg", "2^-3", "2 3 neg ^"},
		{"neg-mul", "-3*2", "3 neg 2 *"},
		{"sub-neg", "1--1", "1 1 neg -"},
		{"const", "2*pi", "2 pi *"},
		{"bare-func", "sin 30", "30 sin"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to tokenize:", err)
			}
			post, err := ToPostfix(toks)
			if err != nil {
				t.Fatal(c.src, "failed to convert:", err)
			}
			if got := rpn(post); got != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestToPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		text string
		col  int
	}{
		{"unclosed", "(2+3", "(", 1},
		{"unopened", "2+3)", ")", 4},
		{"close-first", ")(", ")", 1},
		{"unclosed-call", "root(2,8", "(", 5},
		{"top-comma", "1,2", ",", 2},
		{"comma-after-close", "(1),2", ",", 4},
		{"double-open", "((1)", "(", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to tokenize:", err)
			}
			post, err := ToPostfix(toks)
			if post != nil {
				t.Errorf("%q: expected no result, got %q", c.src, rpn(post))
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("%q: expected *SyntaxError, got %v", c.src, err)
			}
			if se.Text != c.text || se.Col != c.col {
				t.Errorf("%q: want %q at %d, got %q at %d", c.src, c.text, c.col, se.Text, se.Col)
			}
		})
	}
}
