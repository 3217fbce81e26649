// after Appendix B of http://webyrd.net/quines/quines.pdf

package kanren

import "fmt"

// Numbers are little-endian lists of bits, with no trailing zeros:
// 0 is (), 6 is (0 1 1). Every non-negative integer has exactly one
// representation.

const (
	n0 = Int(0)
	n1 = Int(1)
)

var p1 = List(n1)

// BuildNum returns the bit list of n. Negative numbers panic.
func BuildNum(n int) Term {
	if n < 0 {
		panic("only non-negative integers supported by BuildNum")
	}
	if n == 0 {
		return EmptyList
	}
	if n%2 == 0 {
		// n is even
		return Pair{Head: n0, Tail: BuildNum(n / 2)}
	}
	// n is odd
	return Pair{Head: n1, Tail: BuildNum((n - 1) / 2)}
}

// ParseNum converts a fully reified bit list back to an int.
func ParseNum(t Term) (int, error) {
	n := 0
	i := 1
	for t != EmptyList {
		p, ok := t.(Pair)
		if !ok {
			return 0, fmt.Errorf("not a valid oleg numeral: expected list, got %v", t)
		}
		x, ok := p.Head.(Int)
		if !ok || (x != n0 && x != n1) {
			return 0, fmt.Errorf("not a valid oleg numeral: expected bit, got %v", p.Head)
		}
		n += int(x) * i
		i += i
		t = p.Tail
	}
	return n, nil
}

func Zeroo(n Term) Goal {
	return Equal(EmptyList, n)
}

// Poso holds for every number but zero.
func Poso(n Term) Goal {
	return Fresh2(func(a, d Term) Goal {
		return Equal(Pair{a, d}, n)
	})
}

// Gt1o holds for numbers greater than one.
func Gt1o(n Term) Goal {
	return Fresh3(func(a, ad, dd Term) Goal {
		return Equal(Pair{a, Pair{ad, dd}}, n)
	})
}

// FullAddero holds if b + x + y = r + 2*c, for bits b, x, y, r and c.
func FullAddero(b, x, y, r, c Term) Goal {
	return Cond(
		[]Goal{Equal(n0, b), Equal(n0, x), Equal(n0, y), Equal(n0, r), Equal(n0, c)},
		[]Goal{Equal(n1, b), Equal(n0, x), Equal(n0, y), Equal(n1, r), Equal(n0, c)},
		[]Goal{Equal(n0, b), Equal(n1, x), Equal(n0, y), Equal(n1, r), Equal(n0, c)},
		[]Goal{Equal(n1, b), Equal(n1, x), Equal(n0, y), Equal(n0, r), Equal(n1, c)},
		[]Goal{Equal(n0, b), Equal(n0, x), Equal(n1, y), Equal(n1, r), Equal(n0, c)},
		[]Goal{Equal(n1, b), Equal(n0, x), Equal(n1, y), Equal(n0, r), Equal(n1, c)},
		[]Goal{Equal(n0, b), Equal(n1, x), Equal(n1, y), Equal(n0, r), Equal(n1, c)},
		[]Goal{Equal(n1, b), Equal(n1, x), Equal(n1, y), Equal(n1, r), Equal(n1, c)},
	)
}

// Addero holds if d + n + m = r, where d is a carry bit.
func Addero(d, n, m, r Term) Goal {
	return Suspend(func() Goal {
		return Cond(
			[]Goal{Equal(n0, d), Equal(EmptyList, m), Equal(n, r)},
			[]Goal{Equal(n0, d), Equal(EmptyList, n), Equal(m, r), Poso(m)},
			[]Goal{Equal(n1, d), Equal(EmptyList, m), Addero(n0, n, p1, r)},
			[]Goal{Equal(n1, d), Equal(EmptyList, n), Poso(m), Addero(n0, p1, m, r)},
			[]Goal{Equal(p1, n), Equal(p1, m), Fresh2(func(a, c Term) Goal {
				return Both(Equal(List(a, c), r), FullAddero(d, n1, n1, a, c))
			})},
			[]Goal{Equal(p1, n), genAddero(d, n, m, r)},
			[]Goal{Equal(p1, m), Gt1o(n), Gt1o(r), Addero(d, p1, n, r)},
			[]Goal{Gt1o(n), genAddero(d, n, m, r)},
		)
	})
}

func genAddero(d, n, m, r Term) Goal {
	return Fresh(7, func(v []Term) Goal {
		a, b, c, e, x, y, z := v[0], v[1], v[2], v[3], v[4], v[5], v[6]
		return All(
			Equal(Pair{a, x}, n),
			Equal(Pair{b, y}, m), Poso(y),
			Equal(Pair{c, z}, r), Poso(z),
			FullAddero(d, a, b, c, e),
			Addero(e, x, y, z),
		)
	})
}

// Pluso holds if n + m = k.
func Pluso(n, m, k Term) Goal {
	return Addero(n0, n, m, k)
}

// Minuso holds if n - m = k.
func Minuso(n, m, k Term) Goal {
	return Pluso(m, k, n)
}
