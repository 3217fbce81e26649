package kanren

// BothSC is a short-circuiting conjunction. Both cannot finish when g1
// loops forever without results, even if g2 fails outright. BothSC
// evaluates Both(g1, g2) and, alongside it, g2 on its own: if g2 alone
// runs out before the conjunction finds a result, no result could ever
// satisfy g2 and the goal fails. Once either side produces a state the
// probe is dropped and the conjunction continues as normal.
// This does more work than Both, and relies on goals being monotone:
// extending the bindings of a state never turns a failing goal into a
// succeeding one. That holds for everything in this package except Ifte
// and Once.
func BothSC(g1, g2 Goal) Goal {
	return GoalFunc(func(st State) Stream {
		return shortCircuit(Both(g1, g2).Apply(st), g2.Apply(st))
	})
}

func shortCircuit(str, probe Stream) Stream {
	switch str.(type) {
	case *Cell, mzero:
		return str
	}
	switch probe.(type) {
	case mzero:
		return MZero
	case *Cell:
		return str
	}
	conj, alone := str.(Suspension), probe.(Suspension)
	return Suspension(func() Stream {
		return shortCircuit(conj(), alone())
	})
}
