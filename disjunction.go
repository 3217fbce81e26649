package kanren

// Interleave is an n-ary disjunction that visits its branches round robin.
// Every round takes one step from each live branch: a realized state is
// emitted, a suspension is forced once, an exhausted branch is dropped.
// Unlike a fold of Either, no branch gets more turns than another, and an
// unproductive branch never blocks the others.
func Interleave(goals ...Goal) Goal {
	return GoalFunc(func(st State) Stream {
		streams := make([]Stream, 0, len(goals))
		for _, g := range goals {
			streams = append(streams, g.Apply(st))
		}
		return roundRobin(streams)
	})
}

func roundRobin(streams []Stream) Stream {
	if len(streams) == 0 {
		return MZero
	}
	return Suspension(func() Stream {
		buffer := []State{}
		active := make([]Stream, 0, len(streams))
		for _, s := range streams {
			switch x := s.(type) {
			case Suspension:
				active = append(active, x())
			case *Cell:
				buffer = append(buffer, x.Head)
				active = append(active, x.Tail)
			}
		}
		out := roundRobin(active)
		for i := len(buffer) - 1; i >= 0; i-- {
			out = &Cell{Head: buffer[i], Tail: out}
		}
		return out
	})
}
