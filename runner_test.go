package testkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunnerStartsAtRoot(t *testing.T) {
	r := NewRunner()
	assert.Same(t, r.Root(), r.Current())
	assert.Equal(t, NotRun, r.Root().Check())
	assert.Equal(t, Options{DetailDepth: -1}, r.Options())
}

func TestSectionAttachesDeclarationsToItsGroup(t *testing.T) {
	r := NewRunner()
	var inside *Group
	r.Section("outer", func() {
		inside = r.Current()
		r.Check("in section", true)
	})

	assert.Equal(t, "outer", inside.Name())
	assert.Same(t, r.Root(), r.Current(), "section should be closed after the body returns")
	assert.Equal(t, Passed, r.Root().Check())
}

func TestSectionClosesOnPanic(t *testing.T) {
	r := NewRunner()
	boom := errors.New("boom")

	require.PanicsWithError(t, boom.Error(), func() {
		r.Section("doomed", func() {
			panic(boom)
		})
	})
	assert.Same(t, r.Root(), r.Current(), "panicking out of a section must still close it")
}

func TestEndWithNoOpenSectionPanics(t *testing.T) {
	r := NewRunner()
	assert.Panics(t, func() { r.End() })

	r.Begin("s")
	r.End()
	assert.Panics(t, func() { r.End() })
}

func TestRequireFailureBlocksRestOfSection(t *testing.T) {
	r := NewRunner()
	evaluated := false
	r.Section("g", func() {
		r.Check("before", true)
		r.Require("must hold", false)
		r.DeclareCheck("after", Here(), func() bool {
			evaluated = true
			return true
		})
	})

	assert.False(t, evaluated, "conditions after a failed requirement must not be evaluated")
	assert.Equal(t, Failed, r.Root().Check())
}

func TestRequireFailureBlocksNestedSections(t *testing.T) {
	r := NewRunner()
	evaluated := false
	r.Section("outer", func() {
		r.Require("gate", false)
		r.Section("inner", func() {
			r.Section("deeper", func() {
				r.DeclareCheck("skipped", Here(), func() bool {
					evaluated = true
					return true
				})
			})
		})
	})

	assert.False(t, evaluated)
}

func TestAssertionsBeforeFailureKeepTheirOutcome(t *testing.T) {
	r := NewRunner()
	var earlier Outcome
	r.Section("g", func() {
		earlier = r.DeclareCheck("early", Here(), func() bool { return true })
		r.Require("gate", false)
	})

	assert.Equal(t, Passed, earlier)
}

func TestCheckFailureDoesNotBlockSiblings(t *testing.T) {
	r := NewRunner()
	evaluated := false
	r.Section("g", func() {
		r.Check("soft failure", false)
		r.DeclareCheck("still evaluated", Here(), func() bool {
			evaluated = true
			return true
		})
		r.Require("still required", true)
	})

	assert.True(t, evaluated, "a failed check must not suppress later assertions")
	assert.Equal(t, Failed, r.Root().Check())
}

func TestSiblingSectionIsNotBlockedByNeighborFailure(t *testing.T) {
	r := NewRunner()
	evaluated := false
	r.Section("a", func() {
		r.Require("gate", false)
	})
	r.Section("b", func() {
		r.DeclareCheck("independent", Here(), func() bool {
			evaluated = true
			return true
		})
	})

	assert.True(t, evaluated, "blocking must not leak into sibling sections")
}

func TestEmptySectionBesidePassingCheckRollsUpPassed(t *testing.T) {
	r := NewRunner()
	r.Section("setup", func() {})
	r.Check("sanity", true)

	var outcome Outcome
	require.NotPanics(t, func() { outcome = r.Root().Check() })
	assert.Equal(t, Passed, outcome)

	report := plainReport(t, r)
	assert.Contains(t, report, "setup")
	assert.Contains(t, report, "✓ sanity")
}

func TestRequireReturnsConditionResult(t *testing.T) {
	r := NewRunner()
	assert.True(t, r.Require("ok", true))
	assert.False(t, r.Check("not ok", false))
	assert.False(t, r.Require("gate", false))
	assert.False(t, r.Check("blocked", true), "a blocked check reports not-passed")
}

func TestEmptyLabelsGetDefaults(t *testing.T) {
	r := NewRunner()
	r.DeclareCheck("", testSource, func() bool { return true })
	r.DeclareRequire("", testSource, func() bool { return true })

	report := plainReport(t, r)
	assert.Contains(t, report, "unnamed check")
	assert.Contains(t, report, "unnamed requirement")
}

func TestResetClearsEverything(t *testing.T) {
	r := NewRunner()
	r.SetOptions(Options{DetailDepth: 2})
	r.Begin("left open")
	r.Require("gate", false)

	r.Reset()

	assert.Same(t, r.Root(), r.Current(), "reset must restore the stack to just the root")
	assert.False(t, r.Root().Blocked())
	assert.Equal(t, NotRun, r.Root().Check())
	assert.Equal(t, Options{DetailDepth: 2}, r.Options(), "reset does not touch options")

	// a fresh run after reset shows no residue from the old one
	r.Section("fresh", func() {
		r.Check("clean slate", true)
	})
	report := plainReport(t, r)
	assert.Contains(t, report, "clean slate")
	assert.NotContains(t, report, "gate")

	r.Reset()
	r.Reset() // idempotent
	assert.Equal(t, NotRun, r.Root().Check())
}

func TestDefaultRunnerIsSwappable(t *testing.T) {
	isolated := NewRunner()
	prev := SetDefault(isolated)
	defer SetDefault(prev)

	require.Same(t, isolated, Default())

	Section("s", func() {
		Check("via package function", true)
		Require("also via package function", true)
	})
	SetOptions(Options{DetailDepth: -1})

	assert.Equal(t, Passed, isolated.Root().Check())
	Reset()
	assert.Equal(t, NotRun, isolated.Root().Check())
}

func TestHereCapturesThisFile(t *testing.T) {
	src := Here()
	assert.Equal(t, "runner_test.go", src.File)
	assert.Greater(t, src.Line, 0)
}
