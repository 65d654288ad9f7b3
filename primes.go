package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"
)

// Recursive enumeration of the primes, GEB chapter 3.

// lack of union types makes us invent things like this
type theorem interface {
	display() string
}

// prm asserts that x is prime.
type prm struct{ x *big.Int }

// dnd asserts that x does not divide y.
type dnd struct{ x, y *big.Int }

// df asserts that x is divisor-free over 2..y.
type df struct{ x, y *big.Int }

func (t prm) display() string { return "P(" + t.x.String() + ")" }
func (t dnd) display() string { return "DND(" + t.x.String() + "," + t.y.String() + ")" }
func (t df) display() string  { return "DF(" + t.x.String() + "," + t.y.String() + ")" }

func (t prm) String() string { return t.display() }
func (t dnd) String() string { return t.display() }
func (t df) String() string  { return t.display() }

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// primesRules dispatches on the variant of the visited theorem.
func primesRules(t theorem, sys *system[theorem]) []derivation[theorem] {
	var ds []derivation[theorem]
	switch s := t.(type) {
	case dnd:
		// x DND y --> x DND x+y
		ds = append(ds, derive[theorem](dnd{s.x, new(big.Int).Add(s.x, s.y)}, t))

		// 2 DND z --> z DF 2
		if s.x.Cmp(two) == 0 {
			ds = append(ds, derive[theorem](df{s.y, two}, t))
		}

		// z DF x-1 and x DND z --> z DF x-1, re-announced with a second
		// justification; the system keeps the first derivation.
		if u := (df{s.y, new(big.Int).Sub(s.x, one)}); sys.contains(u) {
			ds = append(ds, derive[theorem](u, u, t))
		}
	case df:
		// z DF y and y+1 DND z --> z DF y+1
		if u := (dnd{new(big.Int).Add(s.y, one), s.x}); sys.contains(u) {
			ds = append(ds, derive[theorem](df{s.x, new(big.Int).Add(s.y, one)}, t, u))
		}

		// x DF x-1 --> P(x)
		if s.x.Cmp(new(big.Int).Add(s.y, one)) == 0 {
			ds = append(ds, derive[theorem](prm{s.x}, t))
		}
	}
	return ds
}

// axiomSchema enumerates the axioms DND(x, y) for x = 2, 3, 4, ... and,
// within each x, y = 1 .. x-1.
type axiomSchema struct {
	x, y *big.Int
}

func newAxiomSchema() *axiomSchema {
	return &axiomSchema{x: big.NewInt(2), y: big.NewInt(1)}
}

// next returns the next axiom and advances the cursor.
func (a *axiomSchema) next() theorem {
	t := dnd{new(big.Int).Set(a.x), new(big.Int).Set(a.y)}
	a.y.Add(a.y, one)
	if a.y.Cmp(a.x) == 0 {
		a.x.Add(a.x, one)
		a.y.SetInt64(1)
	}
	return t
}

// newPrimes builds the prime enumerator. Each newly derived P(x) is
// written to w as one line. The engine halts after count primes; with
// count 0 it runs until externally interrupted.
func newPrimes(count int, w io.Writer, trace *slog.Logger) *engine[theorem] {
	sys := newSystem(func(t theorem) string { return t.display() })

	found := 0
	e := &engine[theorem]{
		sys:   sys,
		rules: primesRules,
	}
	e.derived = func(d derivation[theorem]) {
		if p, ok := d.theorem.(prm); ok {
			fmt.Fprintln(w, p.display())
			found++
		}
		trace.Debug("derived", "theorem", d.theorem, "from", d.from)
	}
	if count > 0 {
		e.halted = func() bool { return found >= count }
	}

	// after each visited theorem, draw one fresh axiom so derivations
	// needing larger x stay reachable
	asc := newAxiomSchema()
	e.step = func() { e.submit(derive(asc.next())) }

	// Axiom
	e.submit(derive[theorem](prm{big.NewInt(2)}))
	return e
}
