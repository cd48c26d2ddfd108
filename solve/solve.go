// Package solve synthesizes an optimal segment for one unknown set of a
// propositional membership formula.
//
// Given a formula over named sets, segments for every set but one, and the
// name of the remaining (target) set, a [Solver] classifies each integer of
// a bounded universe by how the target must relate to it, rejects formulas
// no assignment can satisfy, and returns the shortest or longest target
// segment under which the formula holds at every point of the universe.
package solve

import (
	"fmt"
	"strings"

	"github.com/seglogic/seglogic/ast"
	"github.com/seglogic/seglogic/parse"
	"github.com/seglogic/seglogic/seg"
)

// universeMargin extends the analysis range beyond the outermost known
// endpoints. The fixed margin of 10 reproduces the original tool's
// behavior; it is a heuristic, not a proven bound.
const universeMargin = 10

// farOffset displaces the target's hypothetical "x is not a member"
// segment well outside any universe the margin can produce.
const farOffset = 1_000_000

// Solver answers min/max segment-synthesis queries for one (formula,
// segments, target) triple. It is immutable after New and safe to share.
type Solver struct {
	formula string
	target  string
	segs    map[string]seg.Segment
	tree    ast.Node
}

// Result is the outcome of one solve. Length -1 means no target segment
// makes the formula hold everywhere; Length 0 with a nil Segment means the
// formula holds with no constraint on the target.
type Result struct {
	Length  int
	Segment *seg.Segment
	Report  string
}

// New parses formula and validates it against segments and target: the
// target must occur in the formula, and every other referenced set must
// have a segment. Set names are case-insensitive. The target's own entry
// in segments, if present, is dropped — the target is the unknown.
func New(formula string, segments map[string]seg.Segment, target string) (*Solver, error) {
	tree, err := parse.Parse(formula)
	if err != nil {
		return nil, err
	}
	target = strings.ToUpper(target)
	segs := make(map[string]seg.Segment, len(segments))
	for name, s := range segments {
		name = strings.ToUpper(name)
		if name == target {
			continue
		}
		segs[name] = s
	}
	names := ast.Names(tree)
	if _, ok := names[target]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotInFormula, target)
	}
	for name := range names {
		if name == target {
			continue
		}
		if _, ok := segs[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUndefinedSet, name)
		}
	}
	return &Solver{formula: formula, target: target, segs: segs, tree: tree}, nil
}

func (s *Solver) Formula() string { return s.formula }

func (s *Solver) Target() string { return s.target }

// Universe is the analysis range: the outermost known endpoints extended
// by universeMargin on each side. ok is false when no segments are known.
func (s *Solver) Universe() (seg.Segment, bool) {
	first := true
	var lo, hi int
	for _, sg := range s.segs {
		if first {
			lo, hi = sg.Left, sg.Right
			first = false
			continue
		}
		lo = min(lo, sg.Left)
		hi = max(hi, sg.Right)
	}
	if first {
		return seg.Segment{}, false
	}
	return seg.New(lo-universeMargin, hi+universeMargin), true
}

func (s *Solver) evalWithTarget(x int, inTarget bool) (bool, error) {
	hyp := seg.New(x, x)
	if !inTarget {
		hyp = seg.New(x+farOffset, x+farOffset+1)
	}
	segs := make(map[string]seg.Segment, len(s.segs)+1)
	for name, sg := range s.segs {
		segs[name] = sg
	}
	segs[s.target] = hyp
	return s.tree.Eval(x, segs)
}

// AnalyzePoint classifies x by evaluating the formula twice: once with the
// target hypothetically containing x and once with it excluding x. It is a
// pure function of (x, segments).
func (s *Solver) AnalyzePoint(x int) (Requirement, error) {
	ifIn, err := s.evalWithTarget(x, true)
	if err != nil {
		return 0, err
	}
	ifOut, err := s.evalWithTarget(x, false)
	if err != nil {
		return 0, err
	}
	switch {
	case ifIn && ifOut:
		return CanBeEither, nil
	case ifIn:
		return MustBeIn, nil
	case ifOut:
		return MustBeOut, nil
	}
	return Impossible, nil
}

// Solve finds the optimal target segment: the longest when findMax is
// true, the shortest otherwise. Unsatisfiability is not an error; it comes
// back as Length -1 with the failing points named in the report.
func (s *Solver) Solve(findMax bool) (Result, error) {
	uni, ok := s.Universe()
	if !ok {
		return Result{Report: "no known segments to analyze"}, nil
	}

	var mustIn, mustOut, canEither, impossible []int
	for x := uni.Left; x <= uni.Right; x++ {
		req, err := s.AnalyzePoint(x)
		if err != nil {
			return Result{}, err
		}
		switch req {
		case MustBeIn:
			mustIn = append(mustIn, x)
		case MustBeOut:
			mustOut = append(mustOut, x)
		case CanBeEither:
			canEither = append(canEither, x)
		case Impossible:
			impossible = append(impossible, x)
		}
	}

	if len(impossible) > 0 {
		return Result{Length: -1, Report: s.impossibleReport(impossible)}, nil
	}

	var (
		length int
		best   *seg.Segment
	)
	if findMax {
		length, best = maxSegment(mustIn, mustOut, canEither, uni)
	} else {
		length, best = minSegment(mustIn, mustOut)
	}
	return Result{
		Length:  length,
		Segment: best,
		Report:  s.report(mustIn, mustOut, canEither, length, best, findMax),
	}, nil
}

// maxSegment partitions the universe at the forced-out points: each gap
// strictly between consecutive barriers (universe edges act as virtual
// barriers) is admissible in full, and the leftmost longest gap wins.
func maxSegment(mustIn, mustOut, canEither []int, uni seg.Segment) (int, *seg.Segment) {
	if len(mustIn) == 0 && len(canEither) == 0 {
		return 0, nil
	}
	// mustOut is ascending: points are collected in scan order.
	barriers := make([]int, 0, len(mustOut)+2)
	barriers = append(barriers, uni.Left-1)
	barriers = append(barriers, mustOut...)
	barriers = append(barriers, uni.Right+1)

	bestLen := -1
	var best *seg.Segment
	for i := 0; i+1 < len(barriers); i++ {
		left, right := barriers[i]+1, barriers[i+1]-1
		if left > right {
			continue
		}
		if n := right - left; n > bestLen {
			bestLen = n
			sg := seg.New(left, right)
			best = &sg
		}
	}
	if best == nil {
		return 0, nil
	}
	return bestLen, best
}

// minSegment must cover every forced-in point, so its span is fixed; a
// forced-out point inside that span means the requirements conflict.
func minSegment(mustIn, mustOut []int) (int, *seg.Segment) {
	if len(mustIn) == 0 {
		return 0, nil
	}
	sg := seg.New(mustIn[0], mustIn[len(mustIn)-1])
	for _, p := range mustOut {
		if sg.Contains(p) {
			return -1, nil
		}
	}
	return sg.Len(), &sg
}
