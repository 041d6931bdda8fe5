package history

import (
	"encoding/json"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sub", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddList(t *testing.T) {
	s := openTemp(t)
	ts := time.Date(2024, 3, 14, 15, 9, 26, 0, time.UTC)
	require.NoError(t, s.Add(Entry{Timestamp: ts, Expr: "2+3*4", Mode: "deg", Result: 14}))
	require.NoError(t, s.Add(Entry{Timestamp: ts, Expr: "5/0", Mode: "deg", Err: "2: division by zero"}))
	require.NoError(t, s.Add(Entry{Expr: "sin(30)", Mode: "rad", Result: -0.988}))

	all, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "sin(30)", all[0].Expr)
	assert.False(t, all[0].Timestamp.IsZero())
	assert.Equal(t, "5/0", all[1].Expr)
	assert.Equal(t, "2+3*4", all[2].Expr)
	assert.Equal(t, 14.0, all[2].Result)

	two, err := s.List(2)
	require.NoError(t, err)
	assert.Equal(t, all[:2], two)
}

func TestNonFiniteResults(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Add(Entry{Expr: "sqrt(-1)", Mode: "deg", Result: math.NaN()}))
	require.NoError(t, s.Add(Entry{Expr: "10^400", Mode: "deg", Result: math.Inf(1)}))
	require.NoError(t, s.Add(Entry{Expr: "ln(0)", Mode: "rad", Result: math.Inf(-1)}))
	require.NoError(t, s.Add(Entry{Expr: "0*1", Mode: "deg", Result: 0}))

	all, err := s.List(0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, 0.0, all[0].Result)
	assert.Empty(t, all[0].Err)
	assert.True(t, math.IsInf(all[1].Result, -1))
	assert.True(t, math.IsInf(all[2].Result, 1))
	assert.True(t, math.IsNaN(all[3].Result))
	assert.True(t, strings.HasSuffix(all[3].Format(6), "sqrt(-1) = NaN"), all[3].Format(6))
	assert.True(t, strings.HasSuffix(all[2].Format(6), "10^400 = +Inf"), all[2].Format(6))
}

func TestEntryJSON(t *testing.T) {
	b, err := json.Marshal(Entry{Expr: "1/3", Mode: "deg", Result: 1.0 / 3})
	require.NoError(t, err)
	var e Entry
	require.NoError(t, json.Unmarshal(b, &e))
	assert.Equal(t, 1.0/3, e.Result)

	b, err = json.Marshal(Entry{Expr: "5/0", Mode: "deg", Err: "2: division by zero"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"result"`)

	assert.Error(t, json.Unmarshal([]byte(`{"expr":"x","result":"abc"}`), &e))
}

func TestClear(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.Add(Entry{Expr: "1", Mode: "deg", Result: 1}))
	require.NoError(t, s.Clear())

	got, err := s.List(0)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Add(Entry{Expr: "2", Mode: "deg", Result: 2}))
	got, err = s.List(0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Add(Entry{Expr: "fact(5)", Mode: "deg", Result: 120}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.List(10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 120.0, got[0].Result)
}

func TestFormat(t *testing.T) {
	ok := Entry{Timestamp: time.Now(), Expr: "root(2,9)", Mode: "deg", Result: 3}
	assert.True(t, strings.HasSuffix(ok.Format(6), "  [deg] root(2,9) = 3.000000"), ok.Format(6))
	assert.True(t, strings.HasSuffix(ok.Format(2), "= 3.00"))

	bad := Entry{Timestamp: time.Now(), Expr: "xyz", Mode: "rad", Err: `1: unknown identifier "xyz"`}
	assert.True(t, strings.HasSuffix(bad.Format(6), `  [rad] xyz  Error: 1: unknown identifier "xyz"`), bad.Format(6))
}

func TestClosedStore(t *testing.T) {
	var s Store
	assert.Error(t, s.Add(Entry{}))
	_, err := s.List(1)
	assert.Error(t, err)
	assert.Error(t, s.Clear())
	assert.NoError(t, s.Close())
}
