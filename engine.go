package main

// derivation pairs a candidate theorem with the antecedents that
// produced it. Axioms have no antecedents.
type derivation[T any] struct {
	theorem T
	from    []T
}

func derive[T any](t T, from ...T) derivation[T] {
	return derivation[T]{theorem: t, from: from}
}

// engine drains the system's live iteration, applying the rules to each
// visited theorem and feeding every candidate back into the system.
type engine[T any] struct {
	sys     *system[T]
	rules   func(t T, sys *system[T]) []derivation[T]
	step    func()              // run after each visited theorem
	halted  func() bool         // checked after each visited theorem
	derived func(derivation[T]) // fired once per newly added theorem
}

func (e *engine[T]) submit(d derivation[T]) {
	if !e.sys.add(d.theorem) {
		return
	}
	if e.derived != nil {
		e.derived(d)
	}
}

func (e *engine[T]) run() {
	for t := range e.sys.all() {
		for _, d := range e.rules(t, e.sys) {
			e.submit(d)
		}
		// step runs before the halt check, so the final visited
		// theorem still gets its axiom draw
		if e.step != nil {
			e.step()
		}
		if e.halted != nil && e.halted() {
			return
		}
	}
}
