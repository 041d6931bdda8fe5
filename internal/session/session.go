// Package session keeps the caller-side state of an interactive calculator:
// the angle mode toggle and the last result, which a line starting with an
// operator continues from.
package session

import (
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/history"
)

// Recorder receives every evaluation. *history.Store is a Recorder.
type Recorder interface {
	Add(history.Entry) error
}

// Kind is the kind of a Reply.
type Kind int8

const (
	// Value is a successful evaluation.
	Value Kind = iota
	// Failure is a failed evaluation.
	Failure
	// Info is the response to a command.
	Info
	// Quit asks the caller to end the session.
	Quit
	// Empty is the response to a blank line.
	Empty
)

// Reply is the outcome of one submitted line.
type Reply struct {
	Kind Kind
	// Expr is the expression that was evaluated, including any continued
	// result.
	Expr  string
	Value float64
	Err   error
	// Text is the message for Info replies.
	Text string
}

// Session is the state of one interactive calculator. It is not safe for
// concurrent use.
type Session struct {
	mode    scicalc.AngleMode
	last    float64
	hasLast bool
	rec     Recorder
	log     *slog.Logger
}

// New creates a session. rec and log may be nil.
func New(mode scicalc.AngleMode, rec Recorder, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{mode: mode, rec: rec, log: log}
}

// Mode returns the current angle mode.
func (s *Session) Mode() scicalc.AngleMode {
	return s.mode
}

// Last returns the last successful result, if there is one that can be
// continued.
func (s *Session) Last() (float64, bool) {
	return s.last, s.hasLast
}

// HelpText describes the commands a session understands.
const HelpText = `Enter an expression, e.g. 2+3*4, sin(30), root(3, 27), fact(5).
A line starting with + * / or ^ continues from the last result.
Commands:
  deg      use degrees for trigonometric functions
  rad      use radians
  mode     toggle between degrees and radians
  clear    forget the last result
  help     show this message
  quit     leave`

// Submit handles one line of input.
func (s *Session) Submit(line string) Reply {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return Reply{Kind: Empty}
	case "deg", "degrees":
		s.mode = scicalc.Degrees
		return Reply{Kind: Info, Text: "angle mode: deg"}
	case "rad", "radians":
		s.mode = scicalc.Radians
		return Reply{Kind: Info, Text: "angle mode: rad"}
	case "mode":
		s.mode = s.mode.Toggle()
		return Reply{Kind: Info, Text: "angle mode: " + s.mode.String()}
	case "clear", "ac":
		s.hasLast = false
		return Reply{Kind: Info, Text: "cleared"}
	case "help", "?":
		return Reply{Kind: Info, Text: HelpText}
	case "quit", "exit":
		return Reply{Kind: Quit}
	}
	return s.Eval(s.continued(line))
}

// continued prefixes the last result to a line that starts with a binary
// operator.
func (s *Session) continued(line string) string {
	r, _ := utf8.DecodeRuneInString(line)
	if !s.hasLast || !strings.ContainsRune("+*/^×÷", r) {
		return line
	}
	v := strconv.FormatFloat(s.last, 'f', -1, 64)
	if s.last < 0 {
		// Keep -5 then ^2 from reading as -(5^2).
		v = "(" + v + ")"
	}
	return v + line
}

// Eval evaluates an expression in the session's angle mode and records it.
func (s *Session) Eval(expr string) Reply {
	r, err := scicalc.EvalString(expr, s.mode)
	e := history.Entry{Expr: expr, Mode: s.mode.String()}
	var reply Reply
	if err != nil {
		s.log.Warn("evaluation failed", slog.String("expr", expr), slog.String("mode", s.mode.String()), slog.Any("err", err))
		s.hasLast = false
		e.Err = err.Error()
		reply = Reply{Kind: Failure, Expr: expr, Err: err}
	} else {
		s.log.Debug("evaluated", slog.String("expr", expr), slog.String("mode", s.mode.String()), slog.Float64("result", r))
		// Non-finite results have no text the lexer would accept.
		s.last, s.hasLast = r, !math.IsNaN(r) && !math.IsInf(r, 0)
		e.Result = r
		reply = Reply{Kind: Value, Expr: expr, Value: r}
	}
	if s.rec != nil {
		if err := s.rec.Add(e); err != nil {
			s.log.Warn("recording history failed", slog.Any("err", err))
		}
	}
	return reply
}
