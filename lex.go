package scicalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes consumed so far.
	col  int
	toks []Token
}

// Tokenize scans an expression into tokens.
func Tokenize(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}

// Lex scans all of src into tokens. The first invalid token stops scanning; in
// that case the result is nil and the error is a *LexError, unless reading
// from src failed.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src}
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.toks, nil
			}
			return nil, err
		}
		if tok.Kind == kindNone {
			// Dropped unary plus.
			continue
		}
		l.toks = append(l.toks, tok)
	}
}

// readRune reads the next rune and advances the column.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune steps back over the last rune read. The scanner must support one
// rune of lookback.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// prefix returns whether an operator scanned now would have no left operand.
func (l *lexer) prefix() bool {
	if len(l.toks) == 0 {
		return true
	}
	switch l.toks[len(l.toks)-1].Kind {
	case Operator, LeftParen, Comma:
		return true
	}
	return false
}

// next scans the next token. At the end of input, the error is io.EOF. A
// token of kind kindNone with a nil error means the scanned text produces no
// token.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.col, Text: string(r)}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return Token{}, err
			}
			tok.Text = l.buf.String()
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				// Only out of range can fail here; keep the ±Inf result.
				var ne *strconv.NumError
				if !errors.As(err, &ne) || !errors.Is(ne.Err, strconv.ErrRange) {
					return Token{}, &LexError{Text: tok.Text, Kind: "number", Col: tok.Pos}
				}
			}
			tok.Kind, tok.Num = Number, v
			return tok, nil
		case r == 'π':
			tok.Kind, tok.Const = Constant, Pi
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return Token{}, err
			}
			tok.Text = l.buf.String()
			return l.ident(tok)
		case r == '(':
			tok.Kind = LeftParen
			return tok, nil
		case r == ')':
			tok.Kind = RightParen
			return tok, nil
		case r == ',':
			tok.Kind = Comma
			return tok, nil
		default:
			op := binop(r)
			if op == opNone {
				return Token{}, &LexError{Text: tok.Text, Col: tok.Pos}
			}
			if l.prefix() {
				switch op {
				case Sub:
					op = Neg
				case Add:
					return Token{}, nil
				}
			}
			tok.Kind, tok.Op = Operator, op
			return tok, nil
		}
	}
}

// binop gets the binary operator for a rune, or opNone if there is none.
func binop(r rune) Op {
	switch r {
	case '+':
		return Add
	case '-':
		return Sub
	case '*', '×':
		return Mul
	case '/', '÷':
		return Div
	case '^':
		return Pow
	default:
		return opNone
	}
}

func (l *lexer) scanNum() error {
	start := l.col + 1
	var dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' {
			if dot {
				l.buf.WriteRune(r)
				return &LexError{Text: l.buf.String(), Kind: "number", Col: start}
			}
			dot = true
		} else if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	if l.buf.String() == "." {
		return &LexError{Text: ".", Kind: "number", Col: start}
	}
	return nil
}

func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// The first letter was put back by next, so the buffer is
				// never empty here.
				return nil
			}
			return err
		}
		if r == 'π' || !unicode.IsLetter(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// ident resolves a scanned identifier to a constant or function.
func (l *lexer) ident(tok Token) (Token, error) {
	name := strings.ToLower(tok.Text)
	switch name {
	case "pi":
		tok.Kind, tok.Const = Constant, Pi
		return tok, nil
	case "e":
		tok.Kind, tok.Const = Constant, E
		return tok, nil
	}
	f, ok := LookupFunc(name)
	if !ok {
		return Token{}, &LexError{Text: tok.Text, Kind: "identifier", Col: tok.Pos}
	}
	tok.Kind, tok.Func = Function, f
	return tok, nil
}
