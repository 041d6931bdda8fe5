package scicalc

// ToPostfix reorders infix tokens into postfix order with the shunting-yard
// algorithm. In the result, every operator immediately follows its operands
// and every function immediately follows its argument list. Parentheses and
// commas do not appear in the result.
//
// ToPostfix checks only the structure of parentheses and commas. Operand
// counts are checked by Evaluate.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case Number, Constant:
			out = append(out, tok)
		case Function, LeftParen:
			stack = append(stack, tok)
		case RightParen:
			k := openParen(stack)
			if k < 0 {
				return nil, &SyntaxError{Text: tok.Text, Col: tok.Pos, Msg: "mismatched parentheses"}
			}
			out = appendReversed(out, stack[k+1:])
			stack = stack[:k]
			// A function directly below the parenthesis owns the argument list.
			if n := len(stack); n > 0 && stack[n-1].Kind == Function {
				out = append(out, stack[n-1])
				stack = stack[:n-1]
			}
		case Comma:
			k := openParen(stack)
			if k < 0 {
				return nil, &SyntaxError{Text: tok.Text, Col: tok.Pos, Msg: "comma outside parentheses"}
			}
			// Leave the parenthesis for the closing one to consume.
			out = appendReversed(out, stack[k+1:])
			stack = stack[:k+1]
		case Operator:
			if tok.Op.Arity() == 1 {
				// Prefix operators have no left operand to finish.
				stack = append(stack, tok)
				continue
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !outranks(top, tok.Op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			panic("scicalc: invalid token " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == LeftParen || top.Kind == RightParen {
			return nil, &SyntaxError{Text: top.Text, Col: top.Pos, Msg: "mismatched parentheses"}
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// openParen returns the index of the topmost left parenthesis on the stack,
// or -1 if there is none.
func openParen(stack []Token) int {
	for k := len(stack) - 1; k >= 0; k-- {
		if stack[k].Kind == LeftParen {
			return k
		}
	}
	return -1
}

// appendReversed appends the elements of s to out from last to first, i.e.
// in the order they would be popped.
func appendReversed(out, s []Token) []Token {
	for k := len(s) - 1; k >= 0; k-- {
		out = append(out, s[k])
	}
	return out
}

// outranks returns whether the token on top of the operator stack must be
// output before pushing the binary operator cur.
func outranks(top Token, cur Op) bool {
	var p int
	switch top.Kind {
	case Operator:
		p = top.Op.Prec()
	case Function:
		p = funcPrec
	default:
		return false
	}
	if cur.RightAssoc() {
		return p > cur.Prec()
	}
	return p >= cur.Prec()
}
