package kanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtom(t *testing.T) {
	assert.Equal(t, Int(3), Atom(3))
	assert.Equal(t, Int(3), Atom(int64(3)))
	assert.Equal(t, Int(3), Atom(uint8(3)))
	assert.Equal(t, Str("a"), Atom("a"))
	assert.Equal(t, Bool(true), Atom(true))
	assert.Equal(t, Var(2), Atom(Var(2)), "terms pass through")
	assert.Panics(t, func() { Atom(1.5) })
	assert.Panics(t, func() { Atom([]int{1}) })
}

func TestTermEquality(t *testing.T) {
	assert.True(t, Term(Int(1)) == Term(Int(1)))
	assert.False(t, Term(Int(1)) == Term(Bool(true)))
	assert.False(t, Term(Int(0)) == Term(EmptyList))
	assert.True(t, Term(Var(4)) == Term(Var(4)))
	assert.True(t, List(Int(1), Str("a")) == List(Int(1), Str("a")))
	assert.False(t, List(Int(1), Str("a")) == List(Int(1), Str("b")))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsVar(Var(0)))
	assert.False(t, IsVar(Int(0)))
	assert.True(t, IsPair(Cons(Int(1), Int(2))))
	assert.False(t, IsPair(EmptyList))
	assert.False(t, IsPair(Var(1)))
}

func TestHeadTail(t *testing.T) {
	l := List(Int(1), Int(2))
	assert.Equal(t, Int(1), Head(l))
	assert.Equal(t, List(Int(2)), Tail(l))
	assert.Equal(t, EmptyList, Tail(Tail(l)))
	assert.Equal(t, EmptyList, Head(EmptyList))
	assert.Equal(t, EmptyList, Tail(EmptyList))
	assert.Equal(t, EmptyList, Head(Int(3)))
}

func TestList(t *testing.T) {
	assert.Equal(t, EmptyList, List())
	assert.Equal(t, Pair{Int(1), EmptyList}, List(Int(1)))
	assert.Equal(t, Pair{Int(1), Pair{Int(2), Var(0)}}, ImproperList(Var(0), Int(1), Int(2)))
	assert.Equal(t, Var(0), ImproperList(Var(0)))

	ts, ok := Slice(List(Int(1), Str("b")))
	assert.True(t, ok)
	assert.Equal(t, []Term{Int(1), Str("b")}, ts)

	ts, ok = Slice(EmptyList)
	assert.True(t, ok)
	assert.Empty(t, ts)

	_, ok = Slice(ImproperList(Var(0), Int(1)))
	assert.False(t, ok)
	_, ok = Slice(Int(1))
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	for _, tt := range []struct {
		term Term
		want string
	}{
		{term: Int(-4), want: "-4"},
		{term: Str("Homer"), want: "Homer"},
		{term: Bool(false), want: "#f"},
		{term: Var(3), want: "#3"},
		{term: EmptyList, want: "()"},
		{term: List(Int(1)), want: "(1)"},
		{term: List(Int(1), List(Int(2), Int(3)), EmptyList), want: "(1 (2 3) ())"},
		{term: Cons(Int(1), Int(2)), want: "(1 . 2)"},
		{term: ImproperList(Var(0), Int(1), Int(2)), want: "(1 2 . #0)"},
	} {
		assert.Equal(t, tt.want, tt.term.String())
	}
}
