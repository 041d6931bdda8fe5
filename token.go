package scicalc

import (
	"math"
	"strconv"
)

// Token is a single lexical element of an expression. Exactly one of Num, Op,
// Func, or Const is meaningful, selected by Kind.
type Token struct {
	Kind Kind
	// Text is the source text of the token.
	Text string
	// Pos is the 1-based rune column of the first rune of the token.
	Pos int

	Num   float64
	Op    Op
	Func  Func
	Const Const
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Kind is the kind of a token.
type Kind int8

const (
	kindNone Kind = iota
	// Number is a decimal literal.
	Number
	// Operator is an arithmetic operator.
	Operator
	// Function is a named function.
	Function
	// Constant is π or e.
	Constant
	// LeftParen is an open parenthesis.
	LeftParen
	// RightParen is a close parenthesis.
	RightParen
	// Comma separates function arguments.
	Comma
)

var kindNames = [...]string{
	kindNone:   "None",
	Number:     "Number",
	Operator:   "Operator",
	Function:   "Function",
	Constant:   "Constant",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	Comma:      "Comma",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Op is an arithmetic operator.
type Op int8

const (
	opNone Op = iota
	Add
	Sub
	Mul
	Div
	Pow
	// Neg is unary minus. The lexer produces it for a minus sign in prefix
	// position.
	Neg
)

// Prec returns the operator's precedence. Higher binds tighter.
func (o Op) Prec() int {
	switch o {
	case Add, Sub:
		return 2
	case Mul, Div:
		return 3
	case Pow, Neg:
		return 4
	default:
		return 0
	}
}

// RightAssoc returns whether the operator groups right to left.
func (o Op) RightAssoc() bool {
	return o == Pow || o == Neg
}

// Arity returns the number of operands the operator consumes.
func (o Op) Arity() int {
	if o == Neg {
		return 1
	}
	return 2
}

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Neg:
		return "neg"
	default:
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
}

// funcPrec is the precedence of every function on the operator stack.
const funcPrec = 5

// Func is a built-in function.
type Func int8

const (
	funcNone Func = iota
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Log
	Ln
	Sqrt
	Root
	Fact
)

var funcNames = [...]string{
	Sin:  "sin",
	Cos:  "cos",
	Tan:  "tan",
	Asin: "asin",
	Acos: "acos",
	Atan: "atan",
	Log:  "log",
	Ln:   "ln",
	Sqrt: "sqrt",
	Root: "root",
	Fact: "fact",
}

// LookupFunc returns the function with the given lower-case name. The second
// result is false if there is no such function.
func LookupFunc(name string) (Func, bool) {
	for f, s := range funcNames {
		if s != "" && s == name {
			return Func(f), true
		}
	}
	return funcNone, false
}

// Arity returns the number of arguments the function takes.
func (f Func) Arity() int {
	if f == Root {
		return 2
	}
	return 1
}

func (f Func) String() string {
	if f <= funcNone || int(f) >= len(funcNames) {
		return "Func(" + strconv.Itoa(int(f)) + ")"
	}
	return funcNames[f]
}

// Const is a named constant.
type Const int8

const (
	constNone Const = iota
	// Pi is π, the ratio of a circle's circumference to its diameter.
	Pi
	// E is Euler's number.
	E
)

// Value returns the value of the constant.
func (c Const) Value() float64 {
	switch c {
	case Pi:
		return math.Pi
	case E:
		return math.E
	default:
		panic("scicalc: invalid constant " + c.String())
	}
}

func (c Const) String() string {
	switch c {
	case Pi:
		return "π"
	case E:
		return "e"
	default:
		return "Const(" + strconv.Itoa(int(c)) + ")"
	}
}
