package testkit

import "fmt"

// node is the closed set of things that can appear in the result tree: an
// *Assertion or a *Group, nothing else. Keeping the method unexported keeps
// the set closed to this package.
type node interface {
	check() Outcome
}

// Assertion is a single recorded check or requirement. It is immutable once
// created: the outcome is fixed at construction and never changes.
type Assertion struct {
	label   string
	source  Source
	outcome Outcome
}

// NewAssertion creates an assertion record for a condition that was never
// evaluated. Its outcome is NotRun.
func NewAssertion(label string, source Source) *Assertion {
	return &Assertion{label: label, source: source}
}

// NewAssertionResult creates an assertion record for an evaluated condition.
func NewAssertionResult(label string, source Source, passed bool) *Assertion {
	a := NewAssertion(label, source)
	if passed {
		a.outcome = Passed
	} else {
		a.outcome = Failed
	}
	return a
}

func (a *Assertion) Label() string    { return a.label }
func (a *Assertion) Source() Source   { return a.source }
func (a *Assertion) Outcome() Outcome { return a.outcome }

func (a *Assertion) check() Outcome { return a.outcome }

// Group is a named container of assertions and nested groups. Children keep
// their insertion order; that order is the order used for reporting.
type Group struct {
	name     string
	children []node
	blocked  bool
}

// NewGroup creates an empty, unattached group. Groups that belong to a tree
// are normally created through AddGroup or Runner.Begin instead.
func NewGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) Name() string { return g.name }

// Blocked reports whether a requirement has failed in this group, directly
// or in a parent before this group was created.
func (g *Group) Blocked() bool { return g.blocked }

// MarkBlocked puts the group in the blocked state. Blocking is sticky: it is
// never undone for the life of the group, and it does not alter children
// that were added before the call.
func (g *Group) MarkBlocked() { g.blocked = true }

// AddGroup creates a group as the last child of g and returns it. A child
// created under a blocked group starts out blocked itself.
func (g *Group) AddGroup(name string) *Group {
	child := NewGroup(name)
	child.blocked = g.blocked
	g.children = append(g.children, child)
	return child
}

// AddAssertion appends an assertion record as the last child of g. The
// record must already carry its final outcome; a blocked group only ever
// receives NotRun records, which is enforced by the declaration layer.
func (g *Group) AddAssertion(a *Assertion) *Assertion {
	g.children = append(g.children, a)
	return a
}

// Check rolls up the group's outcome from its children. The result is
// computed fresh on every call and never cached.
//
// A group with any failed descendant is Failed. A group with no descendant
// assertions at all is NotRun, and child groups in that state are neutral:
// an empty section contributes nothing to its parent's rollup, so a passing
// sibling still rolls up as Passed. Of the children that do carry
// assertions, the group is Passed when all of them passed and NotRun when
// none of them ran. A not-run assertion record beside a passed sibling with
// no failure anywhere cannot be produced by the declaration protocol,
// because a not-run record only ever appears after a failure in an
// enclosing group; if the tree was assembled by hand into that state, Check
// panics rather than report something misleading.
func (g *Group) Check() Outcome {
	counted := 0
	allPassed := true
	allNotRun := true
	for _, child := range g.children {
		if sub, ok := child.(*Group); ok && !sub.hasAssertions() {
			continue
		}
		counted++
		switch child.check() {
		case Failed:
			return Failed
		case Passed:
			allNotRun = false
		case NotRun:
			allPassed = false
		}
	}

	if counted == 0 {
		return NotRun
	}
	if allPassed {
		return Passed
	}
	if allNotRun {
		return NotRun
	}
	panic(fmt.Sprintf(
		"testkit: group %q mixes passed and not-run children with no failure; the result tree is inconsistent",
		g.name))
}

// hasAssertions reports whether any assertion record exists anywhere under
// the group.
func (g *Group) hasAssertions() bool {
	for _, child := range g.children {
		switch child := child.(type) {
		case *Assertion:
			return true
		case *Group:
			if child.hasAssertions() {
				return true
			}
		}
	}
	return false
}

func (g *Group) check() Outcome { return g.Check() }
