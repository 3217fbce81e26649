package kanren

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is anything that can be unified: an atom, a logic variable or a pair.
// Lack of union types makes us close the set with an unexported method.
type Term interface {
	fmt.Stringer
	term()
}

// Int is an integer atom.
type Int int

// Str is a string atom.
type Str string

// Bool is a boolean atom.
type Bool bool

// Var is a logic variable, identified by its index alone.
type Var int

type special uint8

// EmptyList terminates every proper list. It is an atom, not a pair.
const EmptyList special = 0

// Pair is the only structured term. Lists are right-nested chains of pairs
// ending in EmptyList.
type Pair struct {
	Head Term
	Tail Term
}

func (Int) term()     {}
func (Str) term()     {}
func (Bool) term()    {}
func (Var) term()     {}
func (special) term() {}
func (Pair) term()    {}

// Atom converts a Go scalar into an atom. Terms are returned as is.
// Anything else is a programming error and panics.
func Atom(v any) Term {
	switch x := v.(type) {
	case Term:
		return x
	case int:
		return Int(x)
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case uint:
		return Int(x)
	case uint8:
		return Int(x)
	case uint16:
		return Int(x)
	case uint32:
		return Int(x)
	case string:
		return Str(x)
	case bool:
		return Bool(x)
	}
	panic(fmt.Sprintf("kanren: cannot use %T as an atom", v))
}

// Cons builds a pair.
func Cons(head, tail Term) Term {
	return Pair{Head: head, Tail: tail}
}

// List builds a proper list of the given terms.
func List(ts ...Term) Term {
	return ImproperList(EmptyList, ts...)
}

// ImproperList builds a list of ts whose last tail is tail instead of
// EmptyList: ImproperList(x, a, b) is (a b . x).
func ImproperList(tail Term, ts ...Term) Term {
	out := tail
	for i := len(ts) - 1; i >= 0; i-- {
		out = Pair{Head: ts[i], Tail: out}
	}
	return out
}

// IsVar reports whether t is a logic variable.
func IsVar(t Term) bool {
	_, ok := t.(Var)
	return ok
}

// IsPair reports whether t is a pair.
func IsPair(t Term) bool {
	_, ok := t.(Pair)
	return ok
}

// Head returns the head of a pair, and EmptyList for every other term so
// that walking a list never panics.
func Head(t Term) Term {
	if p, ok := t.(Pair); ok {
		return p.Head
	}
	return EmptyList
}

// Tail returns the tail of a pair, and EmptyList for every other term.
func Tail(t Term) Term {
	if p, ok := t.(Pair); ok {
		return p.Tail
	}
	return EmptyList
}

// Slice returns the elements of a proper list. It reports false if t is not
// a chain of pairs ending in EmptyList.
func Slice(t Term) ([]Term, bool) {
	var out []Term
	for {
		switch x := t.(type) {
		case Pair:
			out = append(out, x.Head)
			t = x.Tail
		case special:
			if x == EmptyList {
				return out, true
			}
			return nil, false
		default:
			return nil, false
		}
	}
}

// printing

func (n Int) String() string {
	return strconv.Itoa(int(n))
}

func (s Str) String() string {
	return string(s)
}

func (b Bool) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

func (v Var) String() string {
	return fmt.Sprintf("#%d", int(v))
}

func (s special) String() string {
	switch s {
	case EmptyList:
		return "()"
	default:
		panic("unknown special")
	}
}

func (p Pair) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(p.Head.String())
	var t Term = p.Tail
	for {
		switch x := t.(type) {
		case Pair:
			sb.WriteByte(' ')
			sb.WriteString(x.Head.String())
			t = x.Tail
			continue
		case special:
			if x == EmptyList {
				sb.WriteByte(')')
				return sb.String()
			}
		}
		sb.WriteString(" . ")
		sb.WriteString(t.String())
		sb.WriteByte(')')
		return sb.String()
	}
}
