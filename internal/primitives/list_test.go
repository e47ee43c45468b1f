package primitives

import (
	"testing"

	"github.com/db47h/sl/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReturnsArgsAsList(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "list", list(a, a.NewInt(1), a.NewInt(2)))
	elems, ok := value.Elements(got)
	require.True(t, ok)
	require.Len(t, elems, 2)
	assert.Equal(t, int64(1), elems[0].Item.Num)
}

func TestConsBuildsPair(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "cons", list(a, a.NewInt(1), a.NewInt(2)))
	require.Equal(t, value.Pair, got.Item.Kind)
	assert.Equal(t, int64(1), got.Item.Car.Item.Num)
	assert.Equal(t, int64(2), got.Item.Cdr.Item.Num)
}

func TestConsWithNilCdrMakesProperList(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "cons", list(a, a.NewInt(1), a.Nil()))
	assert.True(t, value.IsProperList(got))
}

func TestCarCdrOfNilAreNil(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "car", list(a, a.Nil()))
	assert.True(t, value.IsNil(got))
	got = callPrim(t, ip, "cdr", list(a, a.Nil()))
	assert.True(t, value.IsNil(got))
}

func TestCarCdrOfNonPairIsError(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "car", list(a, a.NewInt(1)))
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestLengthOfListAndString(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "length", list(a, list(a, a.NewInt(1), a.NewInt(2), a.NewInt(3))))
	require.Equal(t, value.Int, got.Item.Kind)
	assert.Equal(t, int64(3), got.Item.Num)

	got = callPrim(t, ip, "length", list(a, a.NewString("hello")))
	assert.Equal(t, int64(5), got.Item.Num)
}

func TestAppendLists(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "append", list(a,
		list(a, a.NewInt(1), a.NewInt(2)),
		a.Nil(),
		list(a, a.NewInt(3)),
	))
	elems, ok := value.Elements(got)
	require.True(t, ok)
	require.Len(t, elems, 3)
	assert.Equal(t, int64(3), elems[2].Item.Num)
}

func TestAppendStrings(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "append", list(a, a.NewString("foo"), a.NewString("bar")))
	require.Equal(t, value.String, got.Item.Kind)
	assert.Equal(t, "foobar", got.Item.Str)
}

func TestAppendNoArgsIsNil(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "append", a.Nil())
	assert.True(t, value.IsNil(got))
}

func TestAppendMixedTypesIsError(t *testing.T) {
	ip, a := newTestInterp()
	got := callPrim(t, ip, "append", list(a, a.NewString("foo"), a.NewInt(1)))
	assert.Equal(t, value.Error, got.Item.Kind)
}
