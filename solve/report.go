package solve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seglogic/seglogic/seg"
)

const ruleWidth = 60

func rule(c string) string {
	return strings.Repeat(c, ruleWidth)
}

func (s *Solver) impossibleReport(points []int) string {
	return fmt.Sprintf(
		"ERROR: the formula cannot be made identically true.\n"+
			"At points %s it is false for either membership of (x ∈ %s).",
		seg.FormatPoints(points), s.target)
}

// report renders the deterministic solve report: formula, target, goal,
// known segments in name order, the point classification groups in
// run-length notation, and the result.
func (s *Solver) report(mustIn, mustOut, canEither []int, length int, best *seg.Segment, findMax bool) string {
	goal := "MINIMUM"
	if findMax {
		goal = "MAXIMUM"
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line(rule("═"))
	line("  SOLUTION")
	line(rule("═"))
	line("")
	line("  Formula: %s", s.formula)
	line("  Target set: %s", s.target)
	line("  Goal: %s length", goal)
	line("")
	line(rule("─"))
	line("  Known segments:")
	line(rule("─"))
	names := make([]string, 0, len(s.segs))
	for name := range s.segs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		line("    %s = %s", name, s.segs[name])
	}
	line("")
	line(rule("─"))
	line("  Point analysis:")
	line(rule("─"))
	line("")
	if len(mustIn) > 0 {
		line("  Points that MUST be in %s:", s.target)
		line("    %s", seg.FormatPoints(mustIn))
		line("")
	}
	if len(mustOut) > 0 {
		line("  Points that MUST NOT be in %s:", s.target)
		line("    %s", seg.FormatPoints(mustOut))
		line("")
	}
	if len(canEither) > 0 && findMax {
		line("  Points that MAY be in %s:", s.target)
		line("    %s", seg.FormatPoints(canEither))
		line("")
	}
	line(rule("─"))
	line("  RESULT:")
	line(rule("─"))
	line("")
	switch {
	case length < 0:
		line("  No segment satisfies the requirements.")
	case best != nil:
		line("  Optimal segment %s = %s", s.target, best)
		line("  Length = %d", length)
	default:
		line("  Length = %d", length)
	}
	line("")
	b.WriteString(rule("═"))
	return b.String()
}
