package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/fatih/color"

	"github.com/hibzzgames/testkit"
	"github.com/hibzzgames/testkit/suiterun"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	fileCfg, err := loadFileConfig(params.configPath, params.explicit["config"])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := params.applyFile(fileCfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if params.noColor {
		color.NoColor = true
	}

	if desc := params.filters.Describe(); desc != "" {
		fmt.Println(desc)
		fmt.Println()
	}

	fmt.Println("Running test suites")

	cfg := suiterun.NewConfig()
	cfg.Filter = params.filters.AsFilter
	cfg.Logger = &suiterun.ConsoleLogger{ReportOnSuccess: params.reportAll}
	cfg.Options = testkit.Options{DetailDepth: params.detailDepth}

	results := suiterun.Run(cfg, demoSuites(params.withFailures)...)

	fmt.Println()
	suiterun.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed cases:")
		fmt.Printf("  %s\n", rerunCommand(os.Args[0], params, results))
		os.Exit(1)
	}
}

// rerunCommand builds a copy-pasteable command line that reruns exactly the
// failed cases.
func rerunCommand(program string, params commandParams, results suiterun.Results) string {
	var b commandBuilder
	b.add(program)
	if params.withFailures {
		b.add("-with-failures")
	}
	if params.noColor {
		b.add("-no-color")
	}
	for _, f := range results.Failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.ID.String())+"$")
	}
	return b.String()
}
