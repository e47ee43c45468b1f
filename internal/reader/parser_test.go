package reader

import (
	"io"
	"strings"
	"testing"

	"github.com/db47h/sl/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, a *value.Arena, src string) value.Value {
	t.Helper()
	p := NewParser(NewLexer(strings.NewReader(src)))
	v, err := p.ReadForm(a)
	require.NoError(t, err)
	return v
}

func TestParseAtoms(t *testing.T) {
	a := value.NewArena(256, 256)
	v := parseOne(t, a, "42")
	assert.Equal(t, value.Int, v.Item.Kind)
	assert.Equal(t, int64(42), v.Item.Num)

	v = parseOne(t, a, "3.5")
	assert.Equal(t, value.Float, v.Item.Kind)

	v = parseOne(t, a, `"hi"`)
	assert.Equal(t, value.String, v.Item.Kind)
	assert.Equal(t, "hi", v.Item.Str)

	v = parseOne(t, a, "foo")
	assert.Equal(t, value.Symbol, v.Item.Kind)
	assert.Equal(t, "foo", v.Item.Str)
}

func TestParseList(t *testing.T) {
	a := value.NewArena(256, 256)
	v := parseOne(t, a, "(+ 1 2)")
	elems, ok := value.Elements(v)
	require.True(t, ok)
	require.Len(t, elems, 3)
	assert.Equal(t, "+", elems[0].Item.Str)
	assert.Equal(t, int64(1), elems[1].Item.Num)
	assert.Equal(t, int64(2), elems[2].Item.Num)
}

func TestParseNestedList(t *testing.T) {
	a := value.NewArena(256, 256)
	v := parseOne(t, a, "(list (a b) c)")
	elems, ok := value.Elements(v)
	require.True(t, ok)
	require.Len(t, elems, 3)
	inner, ok := value.Elements(elems[1])
	require.True(t, ok)
	require.Len(t, inner, 2)
}

func TestParseEmptyList(t *testing.T) {
	a := value.NewArena(256, 256)
	v := parseOne(t, a, "()")
	assert.True(t, value.IsNil(v))
}

func TestParseQuoteRewrite(t *testing.T) {
	a := value.NewArena(256, 256)
	v := parseOne(t, a, "'x")
	elems, ok := value.Elements(v)
	require.True(t, ok)
	require.Len(t, elems, 2)
	assert.Equal(t, "quote", elems[0].Item.Str)
	assert.Equal(t, "x", elems[1].Item.Str)
}

func TestParseBackquoteUnquoteSpliceRewrite(t *testing.T) {
	a := value.NewArena(256, 256)
	v := parseOne(t, a, "`(a ,b ,@c)")
	elems, ok := value.Elements(v)
	require.True(t, ok)
	require.Len(t, elems, 2)
	assert.Equal(t, "backquote", elems[0].Item.Str)

	inner, ok := value.Elements(elems[1])
	require.True(t, ok)
	require.Len(t, inner, 3)
	assert.Equal(t, "a", inner[0].Item.Str)

	unquoteForm, ok := value.Elements(inner[1])
	require.True(t, ok)
	require.Len(t, unquoteForm, 2)
	assert.Equal(t, "unquote", unquoteForm[0].Item.Str)
	assert.Equal(t, "b", unquoteForm[1].Item.Str)

	spliceForm, ok := value.Elements(inner[2])
	require.True(t, ok)
	require.Len(t, spliceForm, 2)
	assert.Equal(t, "splice", spliceForm[0].Item.Str)
	assert.Equal(t, "c", spliceForm[1].Item.Str)
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	a := value.NewArena(256, 256)
	p := NewParser(NewLexer(strings.NewReader("1 2 3")))
	var got []value.Value
	for {
		v, err := p.ReadForm(a)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].Item.Num)
	assert.Equal(t, int64(2), got[1].Item.Num)
	assert.Equal(t, int64(3), got[2].Item.Num)
}

func TestParseUnterminatedListIsError(t *testing.T) {
	a := value.NewArena(256, 256)
	p := NewParser(NewLexer(strings.NewReader("(1 2")))
	_, err := p.ReadForm(a)
	assert.Error(t, err)
}

func TestParseUnexpectedCloseIsError(t *testing.T) {
	a := value.NewArena(256, 256)
	p := NewParser(NewLexer(strings.NewReader(")")))
	_, err := p.ReadForm(a)
	assert.Error(t, err)
}
