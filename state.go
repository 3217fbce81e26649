package kanren

import "fmt"

// State is one search branch: its bindings and the index of the next
// variable to allocate. States are values and are never modified.
type State struct {
	sub Substitution
	vc  int
}

// EmptyState is where every query starts.
var EmptyState = State{}

// NewState returns a state with the given bindings and variable counter.
func NewState(sub Substitution, next int) State {
	return State{sub: sub, vc: next}
}

// Substitution returns the bindings of the branch.
func (st State) Substitution() Substitution {
	return st.sub
}

// Next returns the index the next fresh variable will get.
func (st State) Next() int {
	return st.vc
}

// Fresh allocates n new variables. The returned state has the same
// bindings and a counter advanced by n.
func (st State) Fresh(n int) ([]Var, State) {
	if n < 0 {
		panic(fmt.Errorf("fresh %d variables: %w", n, ErrArity))
	}
	vars := make([]Var, n)
	for i := range vars {
		vars[i] = Var(st.vc + i)
	}
	return vars, State{sub: st.sub, vc: st.vc + n}
}

func (st State) withSub(s Substitution) State {
	return State{sub: s, vc: st.vc}
}
