package eval

import (
	"testing"

	"github.com/db47h/sl/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPrimitive(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	doubled := a.NewPrimitive(func(ev value.Evaluator, e value.Env, args value.Value) (value.Value, error) {
		elems, _ := value.Elements(args)
		return ev.Arena().NewInt(elems[0].Item.Num * 2), nil
	})
	got, err := ip.Apply(root, doubled, list(a, a.NewInt(21)))
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Item.Num)
}

func TestApplyNonApplicableIsError(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	got, err := ip.Apply(root, a.NewInt(1), a.Nil())
	require.NoError(t, err)
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestInvokeClosureArityMismatch(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	lambdaForm := list(a, a.NewSymbol("lambda"), list(a, a.NewSymbol("x"), a.NewSymbol("y")), a.NewSymbol("x"))
	fn, err := ip.Eval(root, lambdaForm)
	require.NoError(t, err)

	got, err := ip.Apply(root, fn, list(a, a.NewInt(1)))
	require.NoError(t, err)
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestInvokeClosureRestParameter(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	lambdaForm := list(a, a.NewSymbol("lambda"),
		list(a, a.NewSymbol("first"), a.NewSymbol("&rest"), a.NewSymbol("more")),
		a.NewSymbol("more"))
	fn, err := ip.Eval(root, lambdaForm)
	require.NoError(t, err)

	got, err := ip.Apply(root, fn, list(a, a.NewInt(1), a.NewInt(2), a.NewInt(3)))
	require.NoError(t, err)
	elems, ok := value.Elements(got)
	require.True(t, ok)
	require.Len(t, elems, 2)
	assert.Equal(t, int64(2), elems[0].Item.Num)
	assert.Equal(t, int64(3), elems[1].Item.Num)
}

func TestInvokeClosureRebindsSharedFrameAcrossCalls(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	lambdaForm := list(a, a.NewSymbol("lambda"), list(a, a.NewSymbol("x")), a.NewSymbol("x"))
	fn, err := ip.Eval(root, lambdaForm)
	require.NoError(t, err)

	got1, err := ip.Apply(root, fn, list(a, a.NewInt(1)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), got1.Item.Num)

	got2, err := ip.Apply(root, fn, list(a, a.NewInt(2)))
	require.NoError(t, err)
	assert.Equal(t, int64(2), got2.Item.Num)
}
