package scicalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/scicalc"
)

func FuzzEval(f *testing.F) {
	f.Add("2+3*4")
	f.Add("root(2,9)")
	f.Add("-sin(30)^2")
	f.Add("fact(5)/(1-1)")
	f.Add("((π")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := scicalc.EvalString(s, scicalc.Degrees)
		if err == nil {
			return
		}
		var ie scicalc.InputError
		if !errors.As(err, &ie) {
			t.Errorf("%q: error without position: %v", s, err)
		}
	})
}
