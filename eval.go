package scicalc

import (
	"io"
	"math"
	"strings"
)

// Evaluate computes the value of a postfix token sequence as produced by
// ToPostfix. Trigonometric functions interpret their arguments, and inverse
// trigonometric functions their results, according to mode.
//
// Any error is an *EvalError.
func Evaluate(postfix []Token, mode AngleMode) (float64, error) {
	stack := make([]float64, 0, len(postfix))
	// pop removes the top n values. The caller checks that there are enough.
	pop := func(n int) []float64 {
		k := len(stack) - n
		r := stack[k:len(stack):len(stack)]
		stack = stack[:k]
		return r
	}
	for _, tok := range postfix {
		switch tok.Kind {
		case Number:
			stack = append(stack, tok.Num)
		case Constant:
			stack = append(stack, tok.Const.Value())
		case Operator:
			if len(stack) < tok.Op.Arity() {
				return 0, evalerr(tok, ErrInsufficientOperands)
			}
			if tok.Op == Neg {
				stack[len(stack)-1] = -stack[len(stack)-1]
				continue
			}
			v := pop(2)
			r, err := binary(tok.Op, v[0], v[1])
			if err != nil {
				return 0, evalerr(tok, err)
			}
			stack = append(stack, r)
		case Function:
			n := tok.Func.Arity()
			if len(stack) < n {
				return 0, evalerr(tok, ErrInsufficientOperands)
			}
			// The first argument was pushed first, so args is already in
			// textual order.
			args := pop(n)
			r, err := tok.Func.call(args, mode)
			if err != nil {
				return 0, evalerr(tok, err)
			}
			stack = append(stack, r)
		case LeftParen, RightParen, Comma:
			return 0, evalerr(tok, ErrInvalidExpression)
		default:
			panic("scicalc: invalid token " + tok.String())
		}
	}
	if len(stack) != 1 {
		return 0, &EvalError{Err: ErrInvalidExpression}
	}
	return stack[0], nil
}

// binary applies a binary operator to a and b, where a was pushed first.
func binary(op Op, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case Pow:
		return math.Pow(a, b), nil
	default:
		panic("scicalc: invalid binary operator " + op.String())
	}
}

func evalerr(tok Token, err error) *EvalError {
	return &EvalError{Text: tok.Text, Col: tok.Pos, Err: err}
}

// Eval is a shortcut to tokenize, convert, and evaluate an expression. The
// first stage to fail stops the pipeline, and its error is returned.
func Eval(src io.RuneScanner, mode AngleMode) (float64, error) {
	toks, err := Lex(src)
	if err != nil {
		return 0, err
	}
	post, err := ToPostfix(toks)
	if err != nil {
		return 0, err
	}
	return Evaluate(post, mode)
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, mode AngleMode) (float64, error) {
	return Eval(strings.NewReader(src), mode)
}
