package main

import (
	"sort"

	"github.com/deosjr/kanren"
)

// scenario is a named demonstration query. parent is the family relation
// loaded from the facts file.
type scenario struct {
	name  string
	short string
	query func(parent kanren.Relation) kanren.Query
}

func fives(x kanren.Term) kanren.Goal {
	return kanren.Either(kanren.Equal(x, kanren.Int(5)), kanren.Suspend(func() kanren.Goal { return fives(x) }))
}

func sixes(x kanren.Term) kanren.Goal {
	return kanren.Either(kanren.Equal(x, kanren.Int(6)), kanren.Suspend(func() kanren.Goal { return sixes(x) }))
}

func nevero() kanren.Goal {
	return kanren.Suspend(func() kanren.Goal { return nevero() })
}

var scenarios = map[string]scenario{}

func register(s scenario) {
	scenarios[s.name] = s
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	register(scenario{
		name:  "either",
		short: "q == 23 or q == 24",
		query: func(kanren.Relation) kanren.Query {
			return func(q kanren.Term) kanren.Goal {
				return kanren.Either(kanren.Equal(q, kanren.Int(23)), kanren.Equal(q, kanren.Int(24)))
			}
		},
	})
	register(scenario{
		name:  "both-fail",
		short: "q == 23 and q == 24",
		query: func(kanren.Relation) kanren.Query {
			return func(q kanren.Term) kanren.Goal {
				return kanren.Both(kanren.Equal(q, kanren.Int(23)), kanren.Equal(q, kanren.Int(24)))
			}
		},
	})
	register(scenario{
		name:  "both-same",
		short: "q == 23 and q == 23",
		query: func(kanren.Relation) kanren.Query {
			return func(q kanren.Term) kanren.Goal {
				return kanren.Both(kanren.Equal(q, kanren.Int(23)), kanren.Equal(q, kanren.Int(23)))
			}
		},
	})
	register(scenario{
		name:  "fives-sixes",
		short: "fives(q) or sixes(q), interleaved",
		query: func(kanren.Relation) kanren.Query {
			return func(q kanren.Term) kanren.Goal {
				return kanren.Either(fives(q), sixes(q))
			}
		},
	})
	register(scenario{
		name:  "concat",
		short: "every (x y) with x ++ y == (1 2 3 4)",
		query: func(kanren.Relation) kanren.Query {
			return func(q kanren.Term) kanren.Goal {
				return kanren.Fresh2(func(x, y kanren.Term) kanren.Goal {
					one, two, three, four := kanren.Int(1), kanren.Int(2), kanren.Int(3), kanren.Int(4)
					return kanren.Both(
						kanren.Equal(q, kanren.List(x, y)),
						kanren.Appendo(x, y, kanren.List(one, two, three, four)),
					)
				})
			}
		},
	})
	register(scenario{
		name:  "parents-of-bart",
		short: "parent(q, Bart)",
		query: func(parent kanren.Relation) kanren.Query {
			return func(q kanren.Term) kanren.Goal {
				return parent(q, kanren.Str("Bart"))
			}
		},
	})
	register(scenario{
		name:  "children-of-homer",
		short: "parent(Homer, q)",
		query: func(parent kanren.Relation) kanren.Query {
			return func(q kanren.Term) kanren.Goal {
				return parent(kanren.Str("Homer"), q)
			}
		},
	})
	register(scenario{
		name:  "grandparents",
		short: "(x y) with parent(x, p) and parent(p, y)",
		query: func(parent kanren.Relation) kanren.Query {
			return func(q kanren.Term) kanren.Goal {
				return kanren.Fresh3(func(p, x, y kanren.Term) kanren.Goal {
					return kanren.All(
						kanren.Equal(q, kanren.List(x, y)),
						parent(x, p),
						parent(p, y),
					)
				})
			}
		},
	})
	register(scenario{
		name:  "terminates",
		short: "#t == #f and never",
		query: func(kanren.Relation) kanren.Query {
			return func(kanren.Term) kanren.Goal {
				return kanren.Both(kanren.Equal(kanren.Bool(true), kanren.Bool(false)), nevero())
			}
		},
	})
	register(scenario{
		name:  "boom",
		short: "never and #t == #f, does not terminate",
		query: func(kanren.Relation) kanren.Query {
			return func(kanren.Term) kanren.Goal {
				return kanren.Both(nevero(), kanren.Equal(kanren.Bool(true), kanren.Bool(false)))
			}
		},
	})
	register(scenario{
		name:  "boom-sc",
		short: "boom with a short-circuiting conjunction",
		query: func(kanren.Relation) kanren.Query {
			return func(kanren.Term) kanren.Goal {
				return kanren.BothSC(nevero(), kanren.Equal(kanren.Bool(true), kanren.Bool(false)))
			}
		},
	})
}
