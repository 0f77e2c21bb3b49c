package suiterun

import (
	"fmt"
	"runtime/debug"

	"github.com/hibzzgames/testkit"
)

// Case is one test body. It receives a fresh Runner to declare sections and
// assertions on; the case's result is whatever the Runner's root rolls up to
// after the body returns.
type Case struct {
	Name string
	Run  func(*testkit.Runner)
}

// Suite is a named, ordered collection of cases.
type Suite struct {
	Name  string
	Cases []Case
}

// Config controls a run.
type Config struct {
	// Filter decides which cases run; nil runs everything.
	Filter Filter
	// Logger receives progress events; nil discards them.
	Logger TestLogger
	// Options is applied to every case's Runner before it executes.
	Options testkit.Options
}

// NewConfig returns a Config that runs everything silently with unlimited
// report detail.
func NewConfig() Config {
	return Config{Options: testkit.Options{DetailDepth: -1}}
}

// Run executes every non-filtered case of the given suites in order and
// returns the aggregated results. Cases are fully isolated from each other:
// each gets its own Runner, and a panic in one case is recorded against that
// case without stopping the run.
func Run(cfg Config, suites ...Suite) Results {
	logger := cfg.Logger
	if logger == nil {
		logger = NullLogger{}
	}

	var results Results
	for _, suite := range suites {
		for _, c := range suite.Cases {
			id := CaseID{Path: []string{suite.Name, c.Name}}
			if cfg.Filter != nil && !cfg.Filter(id) {
				logger.CaseSkipped(id, "excluded by filter parameters")
				continue
			}
			logger.CaseStarted(id)
			result := runCase(id, c, cfg.Options)
			results.Cases = append(results.Cases, result)
			if result.Failed() {
				results.Failures = append(results.Failures, result)
			}
			logger.CaseFinished(result)
		}
	}
	return results
}

func runCase(id CaseID, c Case, opts testkit.Options) CaseResult {
	runner := testkit.NewRunner()
	runner.SetOptions(opts)

	result := CaseResult{ID: id}
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("unexpected panic in test case: %+v\n%s", r, string(debug.Stack()))
			}
		}()
		c.Run(runner)
	}()

	result.Outcome = runner.Root().Check()
	result.Report = runner.GenerateReport()
	return result
}
