// Package seglogic solves segment-synthesis problems over propositional
// set-membership formulas: given a formula over named sets with one unknown
// (target) set, it finds the shortest or longest integer segment the target
// can be so that the formula holds at every integer of the analysis range.
//
// The subpackages expose the pipeline stages — token, parse, ast, seg,
// solve, problem — and Solve is the one-call surface over them.
package seglogic

import (
	"github.com/seglogic/seglogic/seg"
	"github.com/seglogic/seglogic/solve"
)

// Solve parses formula and synthesizes the optimal segment for target.
// Use [solve.New] directly to retain the solver across calls.
func Solve(formula string, segments map[string]seg.Segment, target string, findMax bool) (solve.Result, error) {
	s, err := solve.New(formula, segments, target)
	if err != nil {
		return solve.Result{}, err
	}
	return s.Solve(findMax)
}
