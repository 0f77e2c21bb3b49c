package testkit

// Options configures report generation for a Runner.
type Options struct {
	// DetailDepth is how deep the report keeps expanding passing sections.
	// A section at depth >= DetailDepth is collapsed to a summary line
	// unless it contains a failure. -1 (the default) expands everything.
	DetailDepth int
}

// A Runner holds all state for one test run: the root group that owns the
// whole result tree, the stack of currently open sections, and the report
// options. A Runner is single-threaded; concurrent runs each need their own.
type Runner struct {
	root  *Group
	stack []*Group
	opts  Options
}

// NewRunner creates a Runner with an empty root and unlimited detail depth.
func NewRunner() *Runner {
	r := &Runner{
		root: NewGroup(""),
		opts: Options{DetailDepth: -1},
	}
	r.stack = append(r.stack, r.root)
	return r
}

// Root returns the root group that owns the result tree. The root exists for
// the life of the Runner; Reset clears it but never replaces it.
func (r *Runner) Root() *Group { return r.root }

// Current returns the innermost open section, which new declarations attach
// to. Before any Begin, and after every section has ended, this is the root.
func (r *Runner) Current() *Group { return r.stack[len(r.stack)-1] }

// SetOptions replaces the report options. It takes effect on the next
// GenerateReport call.
func (r *Runner) SetOptions(opts Options) { r.opts = opts }

// Options returns the current report options.
func (r *Runner) Options() Options { return r.opts }

// Begin opens a section: a group is added under the current section,
// inheriting its blocked state, and becomes current. Every Begin must be
// matched by exactly one End; prefer Section, which pairs them on all
// control paths.
func (r *Runner) Begin(name string) *Group {
	g := r.Current().AddGroup(name)
	r.stack = append(r.stack, g)
	return g
}

// End closes the innermost open section. Calling End with no open section
// panics: the root is not a section and can never be closed.
func (r *Runner) End() {
	if len(r.stack) <= 1 {
		panic("testkit: End called with no open section; the root scope cannot be closed")
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// Section runs body inside a named section. The section is closed when body
// returns, including when it panics, so an early exit can never leave the
// scope stack misaligned.
func (r *Runner) Section(name string, body func()) {
	r.Begin(name)
	defer r.End()
	body()
}

// DeclareCheck records a soft assertion in the current section. The
// condition is evaluated only if the section is not blocked; a blocked
// section records the assertion as NotRun without calling condition at all,
// so side effects in the condition do not happen. A failed check does not
// block its section. The recorded outcome is returned.
func (r *Runner) DeclareCheck(label string, source Source, condition func() bool) Outcome {
	label = orDefault(label, "unnamed check")
	top := r.Current()
	if top.Blocked() {
		return top.AddAssertion(NewAssertion(label, source)).Outcome()
	}
	return top.AddAssertion(NewAssertionResult(label, source, condition())).Outcome()
}

// DeclareRequire records a hard assertion in the current section. It follows
// the same blocked-skip rule as DeclareCheck, but a condition that evaluates
// false blocks the section: every assertion declared after it in this
// section, and in any section opened under it, is recorded as NotRun.
func (r *Runner) DeclareRequire(label string, source Source, condition func() bool) Outcome {
	label = orDefault(label, "unnamed requirement")
	top := r.Current()
	if top.Blocked() {
		return top.AddAssertion(NewAssertion(label, source)).Outcome()
	}
	ok := condition()
	if !ok {
		top.MarkBlocked()
	}
	return top.AddAssertion(NewAssertionResult(label, source, ok)).Outcome()
}

// Check records a soft assertion with an already-evaluated condition,
// capturing the caller as its source. It returns true if the assertion
// passed. Note that ok was necessarily evaluated by the caller even in a
// blocked section; use DeclareCheck when the condition has side effects.
func (r *Runner) Check(label string, ok bool) bool {
	return r.DeclareCheck(label, Caller(1), func() bool { return ok }) == Passed
}

// Require records a hard assertion with an already-evaluated condition,
// capturing the caller as its source. It returns true if the assertion
// passed, letting callers guard follow-up code directly.
func (r *Runner) Require(label string, ok bool) bool {
	return r.DeclareRequire(label, Caller(1), func() bool { return ok }) == Passed
}

// Reset clears all recorded state: the root's children and blocked flag, and
// any sections left open. The Runner is then equivalent to a new one with
// the same options. Safe to call between independent runs; idempotent.
func (r *Runner) Reset() {
	r.root.children = nil
	r.root.blocked = false
	r.stack = r.stack[:0]
	r.stack = append(r.stack, r.root)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
