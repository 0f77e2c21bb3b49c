package suiterun

import (
	"fmt"
	"io"
	"strings"

	"github.com/hibzzgames/testkit"
)

// CaseID identifies a test case as a path of names, conventionally
// suite name followed by case name.
type CaseID struct {
	Path []string
}

func (id CaseID) String() string {
	return strings.Join(id.Path, "/")
}

// CaseResult is the recorded outcome of one executed case.
type CaseResult struct {
	ID      CaseID
	Outcome testkit.Outcome
	Report  string
	// Err is set only for framework-level problems, such as a panic in the
	// case body. Assertion failures are not errors; they show up in Outcome
	// and Report.
	Err error
}

// Failed reports whether the case counts as a failure: either its rollup is
// Failed or the case body broke out of the framework entirely.
func (r CaseResult) Failed() bool {
	return r.Err != nil || r.Outcome == testkit.Failed
}

// Results aggregates an entire run. Failures holds the subset of Cases that
// failed, in execution order.
type Results struct {
	Cases    []CaseResult
	Failures []CaseResult
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// PrintResults writes a human-readable summary of the run.
func PrintResults(w io.Writer, results Results) {
	if results.OK() {
		fmt.Fprintf(w, "All %d test cases passed\n", len(results.Cases))
		return
	}
	fmt.Fprintf(w, "%d of %d test cases failed:\n", len(results.Failures), len(results.Cases))
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  %s\n", f.ID)
	}
}
