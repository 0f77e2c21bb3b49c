package main

import (
	"sort"
	"strings"

	"github.com/hibzzgames/testkit"
	"github.com/hibzzgames/testkit/suiterun"
)

// demoSuites exercises the framework against real (if small) logic, so the
// binary doubles as a smoke test and a demonstration of what reports look
// like. When withFailures is set, a showcase suite with deliberate failures
// is included to demonstrate failure expansion and blocked assertions.
func demoSuites(withFailures bool) []suiterun.Suite {
	suites := []suiterun.Suite{
		{
			Name: "arithmetic",
			Cases: []suiterun.Case{
				{Name: "integer division", Run: integerDivisionCase},
				{Name: "sorting", Run: sortingCase},
			},
		},
		{
			Name: "strings",
			Cases: []suiterun.Case{
				{Name: "splitting", Run: splittingCase},
			},
		},
	}
	if withFailures {
		suites = append(suites, suiterun.Suite{
			Name: "showcase",
			Cases: []suiterun.Case{
				{Name: "blocked requirements", Run: blockedShowcaseCase},
			},
		})
	}
	return suites
}

func integerDivisionCase(r *testkit.Runner) {
	dividend, divisor := 17, 5
	r.Section("preconditions", func() {
		r.Require("divisor is not zero", divisor != 0)
	})
	r.Section("results", func() {
		r.Check("quotient is 3", dividend/divisor == 3)
		r.Check("remainder is 2", dividend%divisor == 2)
	})
}

func sortingCase(r *testkit.Runner) {
	values := []int{3, 1, 2}
	sort.Ints(values)
	r.Require("length is preserved", len(values) == 3)
	r.Check("values are ascending", sort.IntsAreSorted(values))
	r.Check("smallest value first", values[0] == 1)
}

func splittingCase(r *testkit.Runner) {
	fields := strings.Fields("  alpha beta  gamma ")
	r.Require("three fields found", len(fields) == 3)
	r.Check("no surrounding spaces", fields[0] == "alpha" && fields[2] == "gamma")
}

func blockedShowcaseCase(r *testkit.Runner) {
	var values []int
	r.Section("requirements gate later checks", func() {
		r.Require("values are available", len(values) > 0)
		// never evaluated: the failed requirement above blocks the section
		r.DeclareCheck("first value is positive", testkit.Here(), func() bool {
			return values[0] > 0
		})
		r.Section("nested checks", func() {
			r.DeclareCheck("values are sorted", testkit.Here(), func() bool {
				return sort.IntsAreSorted(values)
			})
		})
	})
	r.Section("independent section", func() {
		r.Check("unrelated work still runs", strings.ToUpper("ok") == "OK")
	})
}
