package kanren

import (
	"context"
	"errors"
	"fmt"
	"iter"
)

// ErrArity reports a query or fresh scope declared with an unusable number
// of variables.
var ErrArity = errors.New("kanren: invalid number of variables")

// Query is a goal over a single query variable.
type Query func(q Term) Goal

func (q Query) start() (Goal, State) {
	vars, st := EmptyState.Fresh(1)
	return q(vars[0]), st
}

// Run returns up to n values of the query variable, in the order the
// search finds them.
func Run(n int, q Query) []Term {
	g, st := q.start()
	return reify(Take(n, g.Apply(st)))
}

// RunAll returns every value of the query variable. It only returns if the
// search space is finite.
func RunAll(q Query) []Term {
	g, st := q.start()
	return reify(TakeAll(g.Apply(st)))
}

// RunContext is Run, stopping early when ctx is done. The values found
// before cancellation are returned along with the error.
func RunContext(ctx context.Context, n int, q Query) ([]Term, error) {
	g, st := q.start()
	states, err := TakeContext(ctx, n, g.Apply(st))
	if err != nil {
		return reify(states), fmt.Errorf("run %d: %w", n, err)
	}
	return reify(states), nil
}

// RunVars runs a query over k variables and returns up to n tuples of
// their values. k must be at least 1.
func RunVars(n, k int, q func(vars []Term) Goal) ([][]Term, error) {
	if k < 1 {
		return nil, fmt.Errorf("query over %d variables: %w", k, ErrArity)
	}
	vars, st := EmptyState.Fresh(k)
	terms := make([]Term, k)
	for i, v := range vars {
		terms[i] = v
	}
	states := Take(n, q(terms).Apply(st))
	out := make([][]Term, len(states))
	for i, s := range states {
		tuple := make([]Term, k)
		for j, v := range vars {
			tuple[j] = ReifyVar(s, v)
		}
		out[i] = tuple
	}
	return out, nil
}

// Solutions yields the values of the query variable lazily. The search
// advances only as far as the consumer ranges.
func Solutions(q Query) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		g, st := q.start()
		s := g.Apply(st)
		for {
			c, ok := Pull(s).(*Cell)
			if !ok {
				return
			}
			if !yield(Reify(c.Head)) {
				return
			}
			s = c.Tail
		}
	}
}

// Reify resolves the query variable of st.
func Reify(st State) Term {
	return ReifyVar(st, Var(0))
}

// ReifyVar resolves v deeply through the bindings of st.
func ReifyVar(st State, v Var) Term {
	return st.sub.WalkStar(v)
}

func reify(states []State) []Term {
	terms := make([]Term, len(states))
	for i, st := range states {
		terms[i] = Reify(st)
	}
	return terms
}
