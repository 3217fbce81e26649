package kanren

// Substitution maps variables to terms. It is a persistent value: Extend
// returns a new substitution and leaves the receiver untouched, so sibling
// search branches can grow the same parent independently.
// The zero value is the empty substitution.
type Substitution struct {
	root *node
	size int
}

// Len returns the number of bound variables.
func (s Substitution) Len() int {
	return s.size
}

// Lookup returns the term v is directly bound to.
func (s Substitution) Lookup(v Var) (Term, bool) {
	return s.root.lookup(v)
}

// Extend binds v to t. Bindings are never replaced: if v is already bound
// the receiver is returned unchanged.
func (s Substitution) Extend(v Var, t Term) Substitution {
	root, inserted := s.root.insert(v, t)
	if !inserted {
		return s
	}
	return Substitution{root: root, size: s.size + 1}
}

// Each calls f for every binding in variable order.
func (s Substitution) Each(f func(Var, Term)) {
	s.root.each(f)
}

// Walk resolves t through the substitution, following chains of bound
// variables until it reaches a non-variable term or an unbound variable.
func (s Substitution) Walk(t Term) Term {
	for {
		v, ok := t.(Var)
		if !ok {
			return t
		}
		e, ok := s.root.lookup(v)
		if !ok {
			return t
		}
		t = e
	}
}

// WalkStar resolves t deeply, rebuilding pairs with every resolvable
// variable replaced. Unbound variables are left in place.
// Without an occurs check, a variable bound to a term containing itself
// makes this diverge.
func (s Substitution) WalkStar(t Term) Term {
	v := s.Walk(t)
	if p, ok := v.(Pair); ok {
		return Pair{Head: s.WalkStar(p.Head), Tail: s.WalkStar(p.Tail)}
	}
	return v
}

// Unify attempts to make u and v equal, returning the extended
// substitution. On failure it returns false and no partial bindings.
// There is no occurs check.
func (s Substitution) Unify(u, v Term) (Substitution, bool) {
	u0 := s.Walk(u)
	v0 := s.Walk(v)
	if uvar, ok := u0.(Var); ok {
		if vvar, ok := v0.(Var); ok && uvar == vvar {
			return s, true
		}
		return s.Extend(uvar, v0), true
	}
	if vvar, ok := v0.(Var); ok {
		return s.Extend(vvar, u0), true
	}
	upair, uok := u0.(Pair)
	vpair, vok := v0.(Pair)
	if uok && vok {
		s0, ok := s.Unify(upair.Head, vpair.Head)
		if !ok {
			return Substitution{}, false
		}
		return s0.Unify(upair.Tail, vpair.Tail)
	}
	if uok || vok || u0 != v0 {
		return Substitution{}, false
	}
	return s, true
}
