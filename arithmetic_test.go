package kanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNum(t *testing.T) {
	assert.Equal(t, EmptyList, BuildNum(0))
	assert.Equal(t, List(Int(1)), BuildNum(1))
	assert.Equal(t, List(Int(0), Int(1), Int(1)), BuildNum(6))
	assert.Panics(t, func() { BuildNum(-1) })

	for n := range 300 {
		got, err := ParseNum(BuildNum(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestParseNum_Invalid(t *testing.T) {
	for _, term := range []Term{
		Int(1),
		Var(0),
		List(Int(2)),
		List(Int(1), Str("a")),
		ImproperList(Var(3), Int(1)),
	} {
		_, err := ParseNum(term)
		assert.Error(t, err, "%v", term)
	}
}

func TestPluso(t *testing.T) {
	for _, tt := range []struct{ n, m, k int }{
		{0, 0, 0},
		{3, 4, 7},
		{29, 13, 42},
		{1, 1, 2},
		{0, 9, 9},
	} {
		got := Run(1, func(q Term) Goal { return Pluso(BuildNum(tt.n), BuildNum(tt.m), q) })
		require.Len(t, got, 1)
		k, err := ParseNum(got[0])
		require.NoError(t, err)
		assert.Equal(t, tt.k, k, "%d + %d", tt.n, tt.m)
	}
}

func TestMinuso(t *testing.T) {
	got := Run(1, func(q Term) Goal { return Minuso(BuildNum(8), BuildNum(3), q) })
	require.Len(t, got, 1)
	assert.Equal(t, BuildNum(5), got[0])

	got = Run(1, func(q Term) Goal { return Pluso(q, BuildNum(2), BuildNum(7)) })
	require.Len(t, got, 1)
	assert.Equal(t, BuildNum(5), got[0])

	assert.Empty(t, Run(1, func(q Term) Goal { return Minuso(BuildNum(3), BuildNum(8), q) }))
}

func TestPluso_Splits(t *testing.T) {
	got := RunAll(func(q Term) Goal {
		return Fresh2(func(x, y Term) Goal {
			return Both(Equal(q, List(x, y)), Pluso(x, y, BuildNum(5)))
		})
	})
	split := func(x, y int) Term { return List(BuildNum(x), BuildNum(y)) }
	assert.ElementsMatch(t, []Term{
		split(0, 5), split(1, 4), split(2, 3),
		split(3, 2), split(4, 1), split(5, 0),
	}, got)
}
