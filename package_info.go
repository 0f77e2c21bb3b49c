// Package testkit implements the core bookkeeping for a lightweight unit
// testing framework.
//
// The general model is:
//
// 1. Test code declares named sections and, inside them, soft assertions
// ("checks") and hard assertions ("requirements"). Declarations are recorded
// as an ordered tree of groups and assertion records.
//
// 2. A failed requirement blocks the rest of its enclosing section: every
// assertion declared after it is recorded without evaluating its condition,
// so that logic which depended on the requirement is never executed. Blocked
// assertions still appear in the report, marked as not having run.
//
// 3. A group's outcome is never stored; it is rolled up on demand from its
// children. After the test body has run, GenerateReport walks the tree and
// produces a colored, indented report for the terminal, collapsing passing
// sections below a configurable detail depth while always expanding any
// section that contains a failure.
//
// The tree, scope stack and options for one run are bundled in a Runner. A
// package-level default Runner backs the convenience functions for the
// common single-run case; tests that need isolation create their own.
package testkit
