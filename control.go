package kanren

// Ifte runs g1 on the results of g0 if g0 has any, and g2 on the original
// state otherwise. It commits to the first branch as soon as g0 yields a
// single state, which makes it impure: reordering goals around it can
// change the answers.
func Ifte(g0, g1, g2 Goal) Goal {
	return GoalFunc(func(st State) Stream {
		var loop func(Stream) Stream
		loop = func(s Stream) Stream {
			switch x := s.(type) {
			case Suspension:
				return Suspension(func() Stream { return loop(x()) })
			case *Cell:
				return Mappend(g1, x)
			}
			return g2.Apply(st)
		}
		return loop(g0.Apply(st))
	})
}

// Once keeps only the first result of g.
// Ifte(Once(g0), g1, g2) behaves like Prolog's cut.
func Once(g Goal) Goal {
	return GoalFunc(func(st State) Stream {
		var loop func(Stream) Stream
		loop = func(s Stream) Stream {
			switch x := s.(type) {
			case Suspension:
				return Suspension(func() Stream { return loop(x()) })
			case *Cell:
				return Unit(x.Head)
			}
			return MZero
		}
		return loop(g.Apply(st))
	})
}
