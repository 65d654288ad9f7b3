package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// The MU-puzzle, GEB chapter 1.

const (
	muAxiom = "MI"
	muGoal  = "MUIIU"
)

// muRules applies production rules I-IV to the symbol string s.
func muRules(s string, _ *system[string]) []derivation[string] {
	var ds []derivation[string]

	// Rule I: xI -> xIU
	if strings.HasSuffix(s, "I") {
		ds = append(ds, derive(s+"U", s))
	}

	// Rule II: Mx -> Mxx
	if strings.HasPrefix(s, "M") {
		x := s[1:]
		ds = append(ds, derive("M"+x+x, s))
	}

	// Rule III: xIIIy -> xUy
	for _, i := range occurrences(s, "III") {
		ds = append(ds, derive(s[:i]+"U"+s[i+3:], s))
	}

	// Rule IV: xUUy -> xy
	for _, i := range occurrences(s, "UU") {
		ds = append(ds, derive(s[:i]+s[i+2:], s))
	}
	return ds
}

// occurrences returns the start index of every leftmost non-overlapping
// match of sub in s.
func occurrences(s, sub string) []int {
	var idxs []int
	for i := 0; i+len(sub) <= len(s); {
		j := strings.Index(s[i:], sub)
		if j < 0 {
			break
		}
		idxs = append(idxs, i+j)
		i += j + len(sub)
	}
	return idxs
}

// newMUPuzzle builds an engine deriving from axiom MI until goal has
// been derived. Every first derivation is written to w as "s -> t".
func newMUPuzzle(goal string, w io.Writer, trace *slog.Logger) *engine[string] {
	sys := newSystem(func(s string) string { return s })
	sys.add(muAxiom)

	e := &engine[string]{
		sys:    sys,
		rules:  muRules,
		halted: func() bool { return sys.contains(goal) },
	}
	e.derived = func(d derivation[string]) {
		fmt.Fprintf(w, "%s -> %s\n", d.from[0], d.theorem)
		trace.Debug("derived", "theorem", d.theorem, "from", d.from)
	}
	return e
}
