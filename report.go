package testkit

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	glyphPassed = "✓"
	glyphFailed = "✘"
	glyphNotRun = "○"
)

// rootDepth is the sentinel depth for the root: its own line is suppressed
// and its children render with no indentation.
const rootDepth = -1

// Styling honors color.NoColor, so reports are plain text when the output is
// not a terminal or -no-color is in effect.
var (
	passedStyle = fg256(42)
	failedStyle = fg256(196)
	notRunStyle = fg256(246)
	passedTag   = fg256(28).Add(color.Italic)
	failedTag   = fg256(160).Add(color.Italic)
)

// fg256 builds a 256-color foreground style (SGR 38;5;n).
func fg256(n int) *color.Color {
	return color.New(color.Attribute(38), color.Attribute(5), color.Attribute(n))
}

// GenerateReport renders the whole result tree as an indented, colored,
// newline-delimited string for the terminal. The root itself contributes no
// line unless the run recorded nothing at all.
func (r *Runner) GenerateReport() string {
	rep := reporter{detailDepth: r.opts.DetailDepth}
	return strings.TrimLeft(rep.render(r.root, rootDepth), "\n")
}

type reporter struct {
	detailDepth int
}

func (rep reporter) render(n node, depth int) string {
	switch n := n.(type) {
	case *Assertion:
		return rep.renderAssertion(n, depth)
	case *Group:
		return rep.renderGroup(n, depth)
	default:
		// node is closed over exactly the two cases above
		panic(fmt.Sprintf("testkit: malformed node of type %T in result tree", n))
	}
}

func (rep reporter) renderAssertion(a *Assertion, depth int) string {
	if depth < 0 {
		return ""
	}
	var style *color.Color
	var glyph string
	switch a.outcome {
	case Passed:
		style, glyph = passedStyle, glyphPassed
	case NotRun:
		style, glyph = notRunStyle, glyphNotRun
	default:
		style, glyph = failedStyle, glyphFailed
	}

	line := glyph + " " + a.label
	if a.outcome == Failed {
		line += fmt.Sprintf(" ( at file: %s, line: %d )", a.source.File, a.source.Line)
	}
	return indent(depth) + style.Sprint(line)
}

func (rep reporter) renderGroup(g *Group, depth int) string {
	outcome := g.Check()

	// A group in which nothing ran is a single dimmed line, never expanded.
	if outcome == NotRun {
		return indent(depth) + notRunStyle.Sprint(g.name)
	}

	out := indent(depth) + g.name + ":"
	if outcome == Passed {
		out += passedTag.Sprint(" [all tests passed]")
	} else {
		out += failedTag.Sprint(" [some tests failed]")
	}
	if depth < 0 {
		// the root's own line is dropped; only its children are rendered
		out = ""
	}

	if !rep.expands(depth, outcome) {
		return out
	}
	for _, child := range g.children {
		switch child := child.(type) {
		case *Group:
			// pad nested groups with a blank line on both sides
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			out += "\n" + rep.render(child, depth+1) + "\n"
		case *Assertion:
			out += "\n" + rep.render(child, depth+1)
		default:
			panic(fmt.Sprintf("testkit: malformed node of type %T in result tree", child))
		}
	}
	return out
}

// expands decides whether a group's children are rendered. Passing and
// not-run groups stop at the detail depth cutoff; a failed group always
// expands so the failure stays locatable no matter how deep it is.
func (rep reporter) expands(depth int, outcome Outcome) bool {
	if outcome == Failed {
		return true
	}
	return rep.detailDepth < 0 || depth < rep.detailDepth
}

func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("  ", depth)
}
