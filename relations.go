package kanren

// Relation is a goal constructor over some argument terms.
type Relation func(args ...Term) Goal

// Table returns a relation that holds for exactly the given rows. Applied
// to arguments it succeeds once per row that unifies with them, in row
// order.
func Table(rows ...[]Term) Relation {
	return func(args ...Term) Goal {
		goals := make([]Goal, len(rows))
		tuple := List(args...)
		for i, row := range rows {
			goals[i] = Equal(tuple, List(row...))
		}
		return Any(goals...)
	}
}

// Conso holds if l is the pair (a . d).
func Conso(a, d, l Term) Goal {
	return Equal(Cons(a, d), l)
}

// Nullo holds if l is the empty list.
func Nullo(l Term) Goal {
	return Equal(EmptyList, l)
}

// Appendo holds if out is l followed by r.
func Appendo(l, r, out Term) Goal {
	return Suspend(func() Goal {
		return Fresh3(func(a, d, res Term) Goal {
			return Cond(
				[]Goal{Nullo(l), Equal(r, out)},
				[]Goal{Conso(a, d, l), Conso(a, res, out), Appendo(d, r, res)},
			)
		})
	})
}

// Membero holds if x is an element of l.
func Membero(x, l Term) Goal {
	return Fresh2(func(head, tail Term) Goal {
		return Cond(
			[]Goal{Conso(head, tail, l), Equal(head, x)},
			[]Goal{Conso(head, tail, l), Suspend(func() Goal { return Membero(x, tail) })},
		)
	})
}

// NotEmpty holds if l is a pair.
func NotEmpty(l Term) Goal {
	return Fresh2(func(head, tail Term) Goal {
		return Conso(head, tail, l)
	})
}

// AtLeastTwo holds if l starts with two elements.
func AtLeastTwo(l Term) Goal {
	return Fresh3(func(a, b, rest Term) Goal {
		return Equal(ImproperList(rest, a, b), l)
	})
}
