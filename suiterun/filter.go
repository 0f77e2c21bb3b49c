package suiterun

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific case or
// not.
type Filter func(CaseID) bool

// RegexFilters selects cases by matching their "suite/case" path against two
// pattern lists: a case runs if it matches at least one MustMatch pattern
// (or none are defined) and matches no MustNotMatch pattern.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id CaseID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

// Describe summarizes the filtering that will be applied, for display before
// a run; it returns "" when no filtering is configured.
func (r RegexFilters) Describe() string {
	if !r.MustMatch.IsDefined() && !r.MustNotMatch.IsDefined() {
		return ""
	}
	var lines []string
	lines = append(lines, "Some cases will be skipped based on the filter criteria for this run:")
	if r.MustMatch.IsDefined() {
		lines = append(lines, fmt.Sprintf("  skip any not matching %s", r.MustMatch))
	}
	if r.MustNotMatch.IsDefined() {
		lines = append(lines, fmt.Sprintf("  skip any matching %s", r.MustNotMatch))
	}
	return strings.Join(lines, "\n")
}

// RegexList accumulates compiled patterns. It implements flag.Value, so a
// repeatable command line flag can feed it directly.
type RegexList struct {
	patterns []*regexp.Regexp
}

// String renders the patterns as a quoted "or" list for display in filter
// descriptions and flag usage text.
func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set compiles value and appends it to the list, satisfying flag.Value.
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

// IsDefined reports whether any pattern has been added.
func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

// AnyMatch reports whether s matches at least one pattern in the list.
func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
