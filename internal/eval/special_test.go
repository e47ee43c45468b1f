package eval

import (
	"testing"

	"github.com/db47h/sl/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineRefusesToOverwriteConst(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	form := list(a, a.NewSymbol("define"), a.NewSymbol("nil"), a.NewInt(1))
	got, err := ip.Eval(root, form)
	require.NoError(t, err)
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestDefineGlobalFromNestedLambda(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()

	// ((lambda () (define-global g 99))) then g visible at root.
	body := list(a, a.NewSymbol("define-global"), a.NewSymbol("g"), a.NewInt(99))
	lambdaForm := list(a, a.NewSymbol("lambda"), a.Nil(), body)
	call := list(a, lambdaForm)
	_, err := ip.Eval(root, call)
	require.NoError(t, err)

	got, err := ip.Eval(root, a.NewSymbol("g"))
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.Item.Num)
}

func TestLambdaFormalsMustBeSymbols(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	lambdaForm := list(a, a.NewSymbol("lambda"), list(a, a.NewInt(1)), a.NewInt(0))
	got, err := ip.Eval(root, lambdaForm)
	require.NoError(t, err)
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestIfRequiresExactlyThreeArgs(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	form := list(a, a.NewSymbol("if"), a.Tru(), a.NewInt(1))
	got, err := ip.Eval(root, form)
	require.NoError(t, err)
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestOrShortCircuitsWithoutEvaluatingLater(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	// second arg refers to an unbound symbol; if or does not short circuit
	// after the tru() truth, evaluating it would surface an Error.
	form := list(a, a.NewSymbol("or"), a.Tru(), a.NewSymbol("unbound-name"))
	got, err := ip.Eval(root, form)
	require.NoError(t, err)
	assert.True(t, value.Equal(a.Tru(), got))
}

func TestQuoteArityError(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	form := list(a, a.NewSymbol("quote"), a.NewInt(1), a.NewInt(2))
	got, err := ip.Eval(root, form)
	require.NoError(t, err)
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestUnquoteOutsideBackquoteIsError(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	form := list(a, a.NewSymbol("unquote"), a.NewInt(1))
	got, err := ip.Eval(root, form)
	require.NoError(t, err)
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestSpliceOutsideBackquoteIsError(t *testing.T) {
	ip, a := newTestInterp()
	root := ip.Root()
	form := list(a, a.NewSymbol("splice"), a.NewInt(1))
	got, err := ip.Eval(root, form)
	require.NoError(t, err)
	assert.Equal(t, value.Error, got.Item.Kind)
}
