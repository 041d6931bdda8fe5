package session

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/history"
)

type recorder struct {
	entries []history.Entry
	err     error
}

func (r *recorder) Add(e history.Entry) error {
	r.entries = append(r.entries, e)
	return r.err
}

func TestSubmitValue(t *testing.T) {
	rec := &recorder{}
	s := New(scicalc.Degrees, rec, nil)

	r := s.Submit("2+3*4")
	require.Equal(t, Value, r.Kind)
	assert.Equal(t, 14.0, r.Value)
	assert.Equal(t, "2+3*4", r.Expr)

	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, 14.0, last)

	require.Len(t, rec.entries, 1)
	assert.Equal(t, history.Entry{Expr: "2+3*4", Mode: "deg", Result: 14}, rec.entries[0])
}

func TestContinuation(t *testing.T) {
	s := New(scicalc.Degrees, nil, nil)
	require.Equal(t, Value, s.Submit("2+3").Kind)

	cases := []struct {
		line string
		expr string
		want float64
	}{
		{"*2", "5*2", 10},
		{" ^2", "10^2", 100},
		{"/ 4", "100/ 4", 25},
		{"+0.5", "25+0.5", 25.5},
		{"÷5.1", "25.5÷5.1", 5},
		// A leading minus is a negation, not a continuation.
		{"-1", "-1", -1},
		{"×3", "(-1)×3", -3},
		{"^2", "(-3)^2", 9},
	}
	for _, c := range cases {
		r := s.Submit(c.line)
		require.Equal(t, Value, r.Kind, "%q: %v", c.line, r.Err)
		assert.Equal(t, c.expr, r.Expr)
		assert.InDelta(t, c.want, r.Value, 1e-12, c.line)
	}
}

func TestFailureClearsLast(t *testing.T) {
	rec := &recorder{}
	s := New(scicalc.Degrees, rec, nil)
	s.Submit("7")

	r := s.Submit("5/0")
	require.Equal(t, Failure, r.Kind)
	assert.True(t, errors.Is(r.Err, scicalc.ErrDivisionByZero))
	_, ok := s.Last()
	assert.False(t, ok)

	// Without a last result, "*2" is evaluated as written.
	r = s.Submit("*2")
	assert.Equal(t, Failure, r.Kind)
	assert.Equal(t, "*2", r.Expr)

	require.Len(t, rec.entries, 3)
	assert.NotEmpty(t, rec.entries[1].Err)
}

func TestNonFiniteNotContinued(t *testing.T) {
	s := New(scicalc.Radians, nil, nil)
	r := s.Submit("sqrt(0-1)")
	require.Equal(t, Value, r.Kind)
	assert.True(t, math.IsNaN(r.Value))
	_, ok := s.Last()
	assert.False(t, ok)
}

func TestModeCommands(t *testing.T) {
	s := New(scicalc.Degrees, nil, nil)
	assert.InDelta(t, 0.5, s.Submit("sin(30)").Value, 1e-12)

	r := s.Submit("mode")
	assert.Equal(t, Info, r.Kind)
	assert.Equal(t, scicalc.Radians, s.Mode())
	assert.InDelta(t, -0.9880316, s.Submit("sin(30)").Value, 1e-6)

	s.Submit("DEG")
	assert.Equal(t, scicalc.Degrees, s.Mode())
	s.Submit("radians")
	assert.Equal(t, scicalc.Radians, s.Mode())
	s.Submit("mode")
	assert.Equal(t, scicalc.Degrees, s.Mode())
}

func TestCommands(t *testing.T) {
	s := New(scicalc.Degrees, nil, nil)
	s.Submit("1")
	assert.Equal(t, Info, s.Submit("clear").Kind)
	_, ok := s.Last()
	assert.False(t, ok)

	assert.Equal(t, HelpText, s.Submit("help").Text)
	assert.Equal(t, Empty, s.Submit("   ").Kind)
	assert.Equal(t, Quit, s.Submit("quit").Kind)
	assert.Equal(t, Quit, s.Submit("Exit").Kind)
}

func TestRecorderError(t *testing.T) {
	rec := &recorder{err: errors.New("disk full")}
	s := New(scicalc.Degrees, rec, nil)
	r := s.Submit("1+1")
	assert.Equal(t, Value, r.Kind)
	assert.Equal(t, 2.0, r.Value)
}

func TestRecordsNonFinite(t *testing.T) {
	st, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer st.Close()
	s := New(scicalc.Degrees, st, nil)
	for _, expr := range []string{"1+1", "sqrt(-1)", "10^400", "ln(0)"} {
		require.Equal(t, Value, s.Submit(expr).Kind, expr)
	}

	entries, err := st.List(0)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "ln(0)", entries[0].Expr)
	assert.True(t, math.IsInf(entries[0].Result, -1))
	assert.True(t, math.IsInf(entries[1].Result, 1))
	assert.True(t, math.IsNaN(entries[2].Result))
	assert.Equal(t, 2.0, entries[3].Result)
}
