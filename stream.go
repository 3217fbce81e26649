package kanren

import "context"

// Stream is a lazy, possibly infinite sequence of states. It is one of
// MZero, a realized *Cell, or a Suspension that computes the rest of the
// stream when called.
type Stream interface {
	stream()
}

type mzero struct{}

// MZero is the empty stream.
var MZero Stream = mzero{}

// Cell is a realized result followed by the rest of the stream.
type Cell struct {
	Head State
	Tail Stream
}

// Suspension is deferred work: an immature stream. Forcing it is one step
// of the trampoline.
type Suspension func() Stream

func (mzero) stream()      {}
func (*Cell) stream()      {}
func (Suspension) stream() {}

// Unit is the stream of exactly one state.
func Unit(st State) Stream {
	return &Cell{Head: st, Tail: MZero}
}

// Append merges two streams. When s1 is suspended the operands swap, so
// two infinite streams take turns instead of s1 starving s2.
func Append(s1, s2 Stream) Stream {
	switch s := s1.(type) {
	case Suspension:
		return Suspension(func() Stream { return Append(s2, s()) })
	case *Cell:
		return &Cell{Head: s.Head, Tail: Append(s.Tail, s2)}
	}
	return s2
}

// Mappend applies g to every state of s and merges the resulting streams.
func Mappend(g Goal, s Stream) Stream {
	switch s := s.(type) {
	case Suspension:
		return Suspension(func() Stream { return Mappend(g, s()) })
	case *Cell:
		return Append(g.Apply(s.Head), Mappend(g, s.Tail))
	}
	return MZero
}

// Pull forces suspensions until s is either empty or a realized cell.
// It never forces past the first cell.
func Pull(s Stream) Stream {
	for {
		f, ok := s.(Suspension)
		if !ok {
			return s
		}
		s = f()
	}
}

// Take returns up to n states from s. If n <= 0 nothing is forced.
func Take(n int, s Stream) []State {
	states := []State{}
	for ; n > 0; n-- {
		c, ok := Pull(s).(*Cell)
		if !ok {
			break
		}
		states = append(states, c.Head)
		s = c.Tail
	}
	return states
}

// TakeAll drains s. It only returns if s is finite.
func TakeAll(s Stream) []State {
	states := []State{}
	for {
		c, ok := Pull(s).(*Cell)
		if !ok {
			return states
		}
		states = append(states, c.Head)
		s = c.Tail
	}
}

// TakeContext is Take with cancellation: ctx is checked before every
// trampoline step. On cancellation it returns the states found so far
// together with ctx.Err().
func TakeContext(ctx context.Context, n int, s Stream) ([]State, error) {
	states := []State{}
	for ; n > 0; n-- {
		for {
			f, ok := s.(Suspension)
			if !ok {
				break
			}
			if err := ctx.Err(); err != nil {
				return states, err
			}
			s = f()
		}
		c, ok := s.(*Cell)
		if !ok {
			break
		}
		states = append(states, c.Head)
		s = c.Tail
	}
	return states, nil
}
