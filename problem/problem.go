// Package problem reads solver problem definitions from YAML documents.
//
// A problem names a formula, the target set to synthesize, the goal mode,
// and a segment per known set:
//
//	formula: "((x ∈ P) ≡ (x ∈ Q)) → ¬(x ∈ A)"
//	target: A
//	mode: max
//	segments:
//	  P: [5, 30]
//	  Q: [14, 23]
package problem

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/seglogic/seglogic/seg"
	"github.com/seglogic/seglogic/solve"
)

var (
	ErrNoFormula  = errors.New("problem has no formula")
	ErrNoTarget   = errors.New("problem has no target")
	ErrBadMode    = errors.New("bad mode")
	ErrBadSegment = errors.New("bad segment")
)

type Problem struct {
	Formula string `yaml:"formula"`
	Target  string `yaml:"target"`
	// Mode is "max" or "min"; empty means max.
	Mode     string           `yaml:"mode"`
	Segments map[string][]int `yaml:"segments"`
}

// Decode parses and validates one YAML problem document.
func Decode(data []byte) (*Problem, error) {
	p := &Problem{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads and decodes the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (p *Problem) validate() error {
	if strings.TrimSpace(p.Formula) == "" {
		return ErrNoFormula
	}
	if strings.TrimSpace(p.Target) == "" {
		return ErrNoTarget
	}
	switch p.Mode {
	case "", "max", "min":
	default:
		return fmt.Errorf("%w: %q (want max or min)", ErrBadMode, p.Mode)
	}
	for name, ends := range p.Segments {
		if len(ends) != 2 {
			return fmt.Errorf("%w: %s needs two endpoints, got %d", ErrBadSegment, name, len(ends))
		}
	}
	return nil
}

// FindMax reports whether the problem asks for the longest segment.
func (p *Problem) FindMax() bool {
	return p.Mode != "min"
}

// SegmentMap normalizes the raw endpoint pairs into segments keyed by
// upper-cased set name. Endpoint order does not matter.
func (p *Problem) SegmentMap() map[string]seg.Segment {
	m := make(map[string]seg.Segment, len(p.Segments))
	for name, ends := range p.Segments {
		m[strings.ToUpper(name)] = seg.New(ends[0], ends[1])
	}
	return m
}

// Solver constructs the solver the problem describes.
func (p *Problem) Solver() (*solve.Solver, error) {
	return solve.New(p.Formula, p.SegmentMap(), p.Target)
}
