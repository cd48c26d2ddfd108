// Package ast defines the expression tree for set-membership formulas.
//
// A tree has three node kinds: a membership leaf (x ∈ NAME), unary
// negation, and a binary operator over two subtrees. Trees are immutable
// once built and own their children exclusively.
package ast

import (
	"fmt"

	"github.com/seglogic/seglogic/seg"
)

// Op is a binary operator kind.
type Op int

const (
	And Op = iota
	Or
	Implies
	Equiv
	Xor
)

func (o Op) String() string {
	switch o {
	case And:
		return "∧"
	case Or:
		return "∨"
	case Implies:
		return "→"
	case Equiv:
		return "≡"
	case Xor:
		return "⊕"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

type Node interface {
	// Eval reports whether the formula holds at point x with every set's
	// membership decided by segs. A set name with no entry in segs is an
	// [ErrUndefinedSet] error.
	Eval(x int, segs map[string]seg.Segment) (bool, error)

	// SetNames adds every set name referenced in the subtree to names.
	SetNames(names map[string]struct{})

	fmt.Stringer
}

// Names collects the set names referenced anywhere in the tree.
func Names(n Node) map[string]struct{} {
	names := map[string]struct{}{}
	n.SetNames(names)
	return names
}

// Membership is the leaf x ∈ Set.
type Membership struct {
	Set string
}

func (m *Membership) Eval(x int, segs map[string]seg.Segment) (bool, error) {
	s, ok := segs[m.Set]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUndefinedSet, m.Set)
	}
	return s.Contains(x), nil
}

func (m *Membership) SetNames(names map[string]struct{}) {
	names[m.Set] = struct{}{}
}

func (m *Membership) String() string {
	return "(x ∈ " + m.Set + ")"
}

// Not negates its operand.
type Not struct {
	Operand Node
}

func (n *Not) Eval(x int, segs map[string]seg.Segment) (bool, error) {
	v, err := n.Operand.Eval(x, segs)
	if err != nil {
		return false, err
	}
	return !v, nil
}

func (n *Not) SetNames(names map[string]struct{}) {
	n.Operand.SetNames(names)
}

func (n *Not) String() string {
	return "¬" + n.Operand.String()
}

// Binary combines two subtrees with an operator.
type Binary struct {
	Left  Node
	Op    Op
	Right Node
}

func (b *Binary) Eval(x int, segs map[string]seg.Segment) (bool, error) {
	l, err := b.Left.Eval(x, segs)
	if err != nil {
		return false, err
	}
	r, err := b.Right.Eval(x, segs)
	if err != nil {
		return false, err
	}
	switch b.Op {
	case And:
		return l && r, nil
	case Or:
		return l || r, nil
	case Implies:
		return !l || r, nil
	case Equiv:
		return l == r, nil
	case Xor:
		return l != r, nil
	}
	return false, fmt.Errorf("unknown operator %d", int(b.Op))
}

func (b *Binary) SetNames(names map[string]struct{}) {
	b.Left.SetNames(names)
	b.Right.SetNames(names)
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}
