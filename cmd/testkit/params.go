package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/hibzzgames/testkit/suiterun"
)

type commandParams struct {
	configPath   string
	detailDepth  int
	noColor      bool
	reportAll    bool
	withFailures bool
	filters      suiterun.RegexFilters

	explicit map[string]bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.configPath, "config", defaultConfigPath, "path to an optional YAML config file")
	fs.IntVar(&c.detailDepth, "depth", -1, "how deep to keep expanding passing sections in reports (-1 = unlimited)")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&c.reportAll, "report-all", false, "print reports for passing cases too")
	fs.BoolVar(&c.withFailures, "with-failures", false, "include the failure showcase suite")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select cases to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select cases not to run")

	if err := fs.Parse(args[1:]); err != nil {
		// flag already reported the problem and printed usage
		return false
	}

	c.explicit = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { c.explicit[f.Name] = true })
	return true
}

// applyFile fills in values from a config file for any flag the user did not
// set explicitly. Filter patterns from the file combine with those from the
// command line.
func (c *commandParams) applyFile(cfg fileConfig) error {
	if cfg.DetailDepth != nil && !c.explicit["depth"] {
		c.detailDepth = *cfg.DetailDepth
	}
	if cfg.NoColor != nil && !c.explicit["no-color"] {
		c.noColor = *cfg.NoColor
	}
	if cfg.ReportAll != nil && !c.explicit["report-all"] {
		c.reportAll = *cfg.ReportAll
	}
	for _, p := range cfg.Run {
		if err := c.filters.MustMatch.Set(p); err != nil {
			return fmt.Errorf("config %q: %w", c.configPath, err)
		}
	}
	for _, p := range cfg.Skip {
		if err := c.filters.MustNotMatch.Set(p); err != nil {
			return fmt.Errorf("config %q: %w", c.configPath, err)
		}
	}
	return nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
