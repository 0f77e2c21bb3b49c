package testkit

// Outcome is the tri-state result of an assertion or a group rollup.
type Outcome int

const (
	// NotRun means the assertion never evaluated its condition, or that a
	// group contains nothing that ran.
	NotRun Outcome = iota
	Failed
	Passed
)

func (o Outcome) String() string {
	switch o {
	case NotRun:
		return "not run"
	case Failed:
		return "failed"
	case Passed:
		return "passed"
	default:
		return "unknown"
	}
}
