package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// growRules derives s+"a" (twice, to exercise de-duplication) until the
// string reaches length 3.
func growRules(s string, _ *system[string]) []derivation[string] {
	if len(s) >= 3 {
		return nil
	}
	return []derivation[string]{derive(s+"a", s), derive(s+"a", s)}
}

// TestEngineDerivedFiresOncePerTheorem verifies the derived hook fires
// exactly once per newly added theorem and never for a re-add.
func TestEngineDerivedFiresOncePerTheorem(t *testing.T) {
	sys := newStringSystem()
	counts := map[string]int{}
	e := &engine[string]{
		sys:     sys,
		rules:   growRules,
		derived: func(d derivation[string]) { counts[d.theorem]++ },
	}
	e.submit(derive("a"))
	e.run()

	require.Equal(t, map[string]int{"a": 1, "aa": 1, "aaa": 1}, counts)
	assert.Equal(t, 3, sys.size())
}

// TestEngineHalt verifies the halt predicate is checked after each
// visited theorem and stops the drive immediately.
func TestEngineHalt(t *testing.T) {
	sys := newStringSystem()
	visited := 0
	e := &engine[string]{
		sys:    sys,
		rules:  growRules,
		halted: func() bool { return sys.contains("aa") },
	}
	e.rules = func(s string, sys *system[string]) []derivation[string] {
		visited++
		return growRules(s, sys)
	}
	e.submit(derive("a"))
	e.run()

	assert.Equal(t, 1, visited, "halt right after the theorem deriving the goal")
	assert.True(t, sys.contains("aa"))
	assert.False(t, sys.contains("aaa"))
}

// TestEngineStep verifies the step hook runs once per visited theorem,
// after the rules, and that its submissions are visited in turn.
func TestEngineStep(t *testing.T) {
	sys := newStringSystem()
	axioms := []string{"x", "y", "z"}
	e := &engine[string]{
		sys:   sys,
		rules: func(string, *system[string]) []derivation[string] { return nil },
	}
	e.step = func() {
		if len(axioms) > 0 {
			e.submit(derive(axioms[0]))
			axioms = axioms[1:]
		}
	}
	e.submit(derive("seed"))
	e.run()

	var got []string
	for s := range sys.all() {
		got = append(got, s)
	}
	assert.Equal(t, []string{"seed", "x", "y", "z"}, got)
}
