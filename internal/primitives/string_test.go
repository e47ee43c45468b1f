package primitives

import (
	"testing"

	"github.com/db47h/sl/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToStr(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "write-to-str", list(a, list(a, a.NewSymbol("a"), a.NewInt(1))))
	require.Equal(t, value.String, got.Item.Kind)
	assert.Equal(t, "(a 1)", got.Item.Str)
}

func TestFormatBasic(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "format", list(a,
		a.NewString("%s is %d years old (%f%%)"),
		a.NewString("Ann"), a.NewInt(30), a.NewFloat(100),
	))
	require.Equal(t, value.String, got.Item.Kind)
	assert.Contains(t, got.Item.Str, "Ann is 30 years old")
}

func TestFormatWrongArgTypeIsError(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "format", list(a, a.NewString("%d"), a.NewString("nope")))
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestFormatNotEnoughArgsIsError(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "format", list(a, a.NewString("%s %s"), a.NewString("only-one")))
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestSubstringDefaultRange(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "substring", list(a, a.NewString("hello world")))
	assert.Equal(t, "hello world", got.Item.Str)
}

func TestSubstringNegativeIndicesWrapFromEnd(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "substring", list(a, a.NewString("hello world"), a.NewInt(-5)))
	assert.Equal(t, "world", got.Item.Str)
}

func TestSubstringOutOfBoundsIsClamped(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "substring", list(a, a.NewString("hi"), a.NewInt(-100), a.NewInt(100)))
	assert.Equal(t, "hi", got.Item.Str)
}

func TestReMatchGroups(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "re-match-groups", list(a, a.NewString("(a+)(b+)"), a.NewString("xxaaabbby")))
	elems, ok := value.Elements(got)
	require.True(t, ok)
	require.Len(t, elems, 3)
	whole, ok := value.Elements(elems[0])
	require.True(t, ok)
	assert.Equal(t, int64(2), whole[0].Item.Num)
}

func TestReMatchGroupsNoMatchIsNil(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "re-match-groups", list(a, a.NewString("zzz"), a.NewString("abc")))
	assert.True(t, value.IsNil(got))
}

func TestReMatchGroupsIgnoreCase(t *testing.T) {
	ip, a := newTestInterp()
	RegisterString(ip.Root(), a)
	got := callPrim(t, ip, "re-match-groups", list(a, a.NewString("ABC"), a.NewString("xabcy"), a.Tru()))
	assert.False(t, value.IsNil(got))
}
