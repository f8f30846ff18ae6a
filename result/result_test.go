package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/linkedfp/fp/result"
	"github.com/stretchr/testify/assert"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultOf(t *testing.T) {
	r := Of(strconv.Atoi("42"))
	assert.True(t, r.IsOk())
	assert.Equal(t, 42, r.WithDefault(-1))

	r = Of(strconv.Atoi("x"))
	assert.False(t, r.IsOk())
	assert.Equal(t, -1, r.WithDefault(-1))
	var err error
	switch m := r.Match(); m {
	case m.Err(&err):
	default:
		t.Error("expected Of(Atoi(x)) to match Err, didn't")
	}
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}
