// Package suiterun runs named suites of testkit test cases.
//
// Each case executes against its own fresh testkit.Runner, so state never
// leaks between cases. The case's rolled-up outcome and rendered report are
// collected into Results; progress is reported through a TestLogger, with
// console and null implementations provided. Cases are addressed as
// "suite/case" paths, which regex filters can select or exclude.
package suiterun
