package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilObject(t *testing.T) {
	var o *Object
	o.Release()
	assert.False(t, o.Valid())
	assert.Equal(t, uintptr(0), o.Key())
	assert.Equal(t, "<nil>", o.String())
	assert.Equal(t, "nil", o.ClassName())
	assert.Nil(t, o.Retain())
	assert.True(t, o.Same(nil))
}

func TestArgs(t *testing.T) {
	assert.Equal(t, Arg{kind: argInt, i: -3}, Int(-3))
	assert.Equal(t, Arg{kind: argUint, u: 7}, Uint(7))
	assert.Equal(t, Arg{kind: argDouble, d: 0.5}, Float(0.5))
	assert.Equal(t, Arg{kind: argBool, i: 1}, Bool(true))
	assert.Equal(t, Arg{kind: argBool}, Bool(false))
	assert.Equal(t, Arg{kind: argObject}, Nil())
}
