package primitives

import (
	"testing"

	"github.com/db47h/sl/internal/eval"
	"github.com/db47h/sl/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterp() (*eval.Interp, *value.Arena) {
	a := value.NewArena(256, 256)
	ip := eval.NewInterp(a)
	RegisterGeneral(ip.Root(), a)
	RegisterLogic(ip.Root(), a)
	RegisterTypes(ip.Root(), a)
	RegisterList(ip.Root(), a)
	return ip, a
}

func list(a *value.Arena, elems ...value.Value) value.Value { return a.FromSlice(elems) }

func callPrim(t *testing.T, ip *eval.Interp, name string, args value.Value) value.Value {
	t.Helper()
	fn, ok := ip.Root().Get(name)
	require.True(t, ok, "primitive %s not bound", name)
	got, err := ip.Apply(ip.Root(), fn, args)
	require.NoError(t, err)
	return got
}

func TestEqualVariadic(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "equal?", list(a, a.NewInt(1), a.NewInt(1), a.NewInt(1)))
	assert.Equal(t, value.Symbol, got.Item.Kind)
	assert.False(t, value.IsNil(got))
}

func TestEqualVariadicMismatch(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "equal?", list(a, a.NewInt(1), a.NewInt(1), a.NewInt(2)))
	assert.True(t, value.IsNil(got))
}

func TestEqualRequiresTwoArgs(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "equal?", list(a, a.NewInt(1)))
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestNumEqualAcrossIntAndFloat(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "=", list(a, a.NewInt(2), a.NewFloat(2.0)))
	assert.False(t, value.IsNil(got))
}

func TestLessChained(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "<", list(a, a.NewInt(1), a.NewInt(2), a.NewInt(3)))
	assert.False(t, value.IsNil(got))
	got = callPrim(t, ip, "<", list(a, a.NewInt(1), a.NewInt(3), a.NewInt(2)))
	assert.True(t, value.IsNil(got))
}

func TestGreaterMixedTypeIsFalse(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, ">", list(a, a.NewInt(1), a.NewString("x")))
	assert.True(t, value.IsNil(got))
}
