package primitives

import (
	"testing"

	"github.com/db47h/sl/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNoArgsIsZero(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "+", a.Nil())
	require.Equal(t, value.Int, got.Item.Kind)
	assert.Equal(t, int64(0), got.Item.Num)
}

func TestAddSingleArgIsIdentityNotNegation(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "+", list(a, a.NewInt(5)))
	assert.Equal(t, int64(5), got.Item.Num)

	got = callPrim(t, ip, "*", list(a, a.NewInt(5)))
	assert.Equal(t, int64(5), got.Item.Num)
}

func TestAddMixedTypesPromotesToFloat(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "+", list(a, a.NewInt(9), a.NewFloat(5.0), a.NewInt(1)))
	require.Equal(t, value.Float, got.Item.Kind)
	assert.Equal(t, 15.0, got.Item.Flt)
}

func TestSubSingleArgNegates(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "-", list(a, a.NewInt(5)))
	assert.Equal(t, int64(-5), got.Item.Num)
}

func TestMulInts(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "*", list(a, a.NewInt(9), a.NewInt(5), a.NewInt(1)))
	assert.Equal(t, int64(45), got.Item.Num)
}

func TestDivAlwaysReturnsFloat(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "/", list(a, a.NewInt(9), a.NewInt(2)))
	require.Equal(t, value.Float, got.Item.Kind)
	assert.Equal(t, 4.5, got.Item.Flt)
}

func TestDivByZeroIsError(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "/", list(a, a.NewInt(9), a.NewInt(0)))
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestModFollowsDivisorSign(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "mod", list(a, a.NewInt(-7), a.NewInt(3)))
	require.Equal(t, value.Float, got.Item.Kind)
	assert.Equal(t, 2.0, got.Item.Flt)
}

func TestQuotientAndRemainder(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "quotient", list(a, a.NewInt(7), a.NewInt(2)))
	assert.Equal(t, int64(3), got.Item.Num)

	got = callPrim(t, ip, "remainder", list(a, a.NewInt(7), a.NewInt(2)))
	assert.Equal(t, int64(1), got.Item.Num)
}

func TestQuotientRejectsFloat(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	got := callPrim(t, ip, "quotient", list(a, a.NewFloat(7)))
	assert.Equal(t, value.Error, got.Item.Kind)
}

func TestRoundFloorCeilingTruncate(t *testing.T) {
	ip, a := newTestInterp()
	RegisterArith(ip.Root(), a)
	cases := []struct {
		name string
		want float64
	}{
		{"round", 3.0},
		{"floor", 2.0},
		{"ceiling", 3.0},
		{"truncate", 2.0},
	}
	for _, c := range cases {
		got := callPrim(t, ip, c.name, list(a, a.NewFloat(2.6)))
		require.Equal(t, value.Float, got.Item.Kind)
		assert.Equal(t, c.want, got.Item.Flt)
	}

	got := callPrim(t, ip, "round", list(a, a.NewInt(4)))
	require.Equal(t, value.Int, got.Item.Kind)
	assert.Equal(t, int64(4), got.Item.Num)
}
