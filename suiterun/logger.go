package suiterun

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// TestLogger receives progress events during a run.
type TestLogger interface {
	CaseStarted(id CaseID)
	CaseFinished(result CaseResult)
	CaseSkipped(id CaseID, reason string)
}

type NullLogger struct{}

func (n NullLogger) CaseStarted(CaseID)         {}
func (n NullLogger) CaseFinished(CaseResult)    {}
func (n NullLogger) CaseSkipped(CaseID, string) {}

// ConsoleLogger prints progress to a terminal. Reports are shown for failed
// cases; ReportOnSuccess shows them for passing cases too.
type ConsoleLogger struct {
	Out             io.Writer
	ReportOnSuccess bool
}

func (c *ConsoleLogger) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *ConsoleLogger) CaseStarted(id CaseID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleLogger) CaseFinished(result CaseResult) {
	if result.Err != nil {
		for _, line := range strings.Split(result.Err.Error(), "\n") {
			fmt.Fprintf(c.out(), "  %s\n", line)
		}
	}
	if result.Failed() || c.ReportOnSuccess {
		writeIndented(c.out(), result.Report, "  ")
	}
	if result.Failed() {
		fmt.Fprintf(c.out(), "  FAILED: %s\n", result.ID)
	}
}

func (c *ConsoleLogger) CaseSkipped(id CaseID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out(), "  SKIPPED: %s\n", id)
	} else {
		fmt.Fprintf(c.out(), "  SKIPPED: %s (%s)\n", id, reason)
	}
}

func writeIndented(w io.Writer, text, prefix string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "%s%s\n", prefix, line)
	}
}
