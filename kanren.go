// Package kanren is a small relational programming engine in the
// miniKanren family.
//
// Goals are evaluated against a State and produce a lazy Stream of states.
// Disjunction interleaves its branches fairly; recursive goals must be
// wrapped in Suspend so that the search stays stack safe.
//
//	kanren.Run(10, func(q kanren.Term) kanren.Goal {
//		return kanren.Either(kanren.Equal(q, kanren.Int(23)), kanren.Equal(q, kanren.Int(24)))
//	})
//	// [23 24]
package kanren

import "fmt"

// Goal is a relation applied to one state.
type Goal interface {
	Apply(st State) Stream
}

// GoalFunc adapts an ordinary function to a Goal.
type GoalFunc func(State) Stream

// Apply calls f(st).
func (f GoalFunc) Apply(st State) Stream {
	return f(st)
}

type succeed struct{}

func (succeed) Apply(st State) Stream { return Unit(st) }

type fail struct{}

func (fail) Apply(State) Stream { return MZero }

var (
	// Succeed always succeeds once, without new bindings.
	Succeed Goal = succeed{}
	// Fail never succeeds.
	Fail Goal = fail{}
)

type equal struct {
	u, v Term
}

func (g equal) Apply(st State) Stream {
	s, ok := st.sub.Unify(g.u, g.v)
	if !ok {
		return MZero
	}
	return Unit(st.withSub(s))
}

// Equal succeeds once if u and v unify.
func Equal(u, v Term) Goal {
	return equal{u: u, v: v}
}

type fresh struct {
	n int
	f func([]Term) Goal
}

func (g fresh) Apply(st State) Stream {
	vars, next := st.Fresh(g.n)
	terms := make([]Term, len(vars))
	for i, v := range vars {
		terms[i] = v
	}
	return g.f(terms).Apply(next)
}

// Fresh introduces n new variables and passes them to f, which is given
// exactly n terms. A negative n panics before any search starts.
func Fresh(n int, f func(vars []Term) Goal) Goal {
	if n < 0 {
		panic(fmt.Errorf("fresh %d variables: %w", n, ErrArity))
	}
	return fresh{n: n, f: f}
}

func Fresh1(f func(x Term) Goal) Goal {
	return Fresh(1, func(v []Term) Goal { return f(v[0]) })
}

func Fresh2(f func(x, y Term) Goal) Goal {
	return Fresh(2, func(v []Term) Goal { return f(v[0], v[1]) })
}

func Fresh3(f func(x, y, z Term) Goal) Goal {
	return Fresh(3, func(v []Term) Goal { return f(v[0], v[1], v[2]) })
}

type disj struct {
	g1, g2 Goal
}

func (g disj) Apply(st State) Stream {
	return Append(g.g1.Apply(st), g.g2.Apply(st))
}

// Either succeeds for every result of g1 or g2, interleaved fairly.
func Either(g1, g2 Goal) Goal {
	return disj{g1: g1, g2: g2}
}

type conj struct {
	g1, g2 Goal
}

func (g conj) Apply(st State) Stream {
	return Mappend(g.g2, g.g1.Apply(st))
}

// Both succeeds for every result of g1 that g2 also accepts.
//
// g1 is applied eagerly and g2 only through the laziness of Mappend, so
// Both is not commutative with regard to termination: Both(Fail, loop)
// returns at once while Both(loop, Fail) never does. See BothSC.
func Both(g1, g2 Goal) Goal {
	return conj{g1: g1, g2: g2}
}

type deferred struct {
	f func() Goal
}

func (g deferred) Apply(st State) Stream {
	return Suspension(func() Stream { return g.f().Apply(st) })
}

// Suspend delays building a goal until the search reaches it. Recursive
// relations must call themselves through Suspend.
func Suspend(f func() Goal) Goal {
	return deferred{f: f}
}

// Any is the disjunction of goals, folded from the left. Any() fails.
func Any(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Fail
	}
	g := goals[0]
	for _, h := range goals[1:] {
		g = Either(g, h)
	}
	return g
}

// All is the conjunction of goals, folded from the left. All() succeeds.
func All(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Succeed
	}
	g := goals[0]
	for _, h := range goals[1:] {
		g = Both(g, h)
	}
	return g
}

// Cond succeeds for every clause whose goals all succeed.
func Cond(clauses ...[]Goal) Goal {
	goals := make([]Goal, len(clauses))
	for i, c := range clauses {
		goals[i] = All(c...)
	}
	return Any(goals...)
}
