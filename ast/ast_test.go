package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seglogic/seglogic/seg"
)

// segsFor builds a segment map in which membership of x=0 in L and R
// matches the given truth values.
func segsFor(l, r bool) map[string]seg.Segment {
	segs := map[string]seg.Segment{}
	in, out := seg.New(0, 0), seg.New(1, 1)
	if l {
		segs["L"] = in
	} else {
		segs["L"] = out
	}
	if r {
		segs["R"] = in
	} else {
		segs["R"] = out
	}
	return segs
}

func TestBinaryTruthTables(t *testing.T) {
	tests := []struct {
		op   Op
		want [4]bool // rows (T,T), (T,F), (F,T), (F,F)
	}{
		{And, [4]bool{true, false, false, false}},
		{Or, [4]bool{true, true, true, false}},
		{Implies, [4]bool{true, false, true, true}},
		{Equiv, [4]bool{true, false, false, true}},
		{Xor, [4]bool{false, true, true, false}},
	}
	rows := [4][2]bool{{true, true}, {true, false}, {false, true}, {false, false}}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			n := &Binary{Left: &Membership{Set: "L"}, Op: tt.op, Right: &Membership{Set: "R"}}
			for i, row := range rows {
				got, err := n.Eval(0, segsFor(row[0], row[1]))
				require.NoError(t, err)
				assert.Equal(t, tt.want[i], got, "row %v", row)
			}
		})
	}
}

func TestNotEval(t *testing.T) {
	n := &Not{Operand: &Membership{Set: "L"}}
	for _, v := range []bool{true, false} {
		got, err := n.Eval(0, segsFor(v, false))
		require.NoError(t, err)
		assert.Equal(t, !v, got)
	}
}

func TestMembershipEval(t *testing.T) {
	m := &Membership{Set: "P"}
	segs := map[string]seg.Segment{"P": seg.New(5, 10)}
	for x, want := range map[int]bool{4: false, 5: true, 7: true, 10: true, 11: false} {
		got, err := m.Eval(x, segs)
		require.NoError(t, err)
		assert.Equal(t, want, got, "x=%d", x)
	}
}

func TestEvalUndefinedSet(t *testing.T) {
	n := &Binary{
		Left:  &Membership{Set: "P"},
		Op:    And,
		Right: &Membership{Set: "Z"},
	}
	_, err := n.Eval(0, map[string]seg.Segment{"P": seg.New(0, 1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndefinedSet))
	assert.Contains(t, err.Error(), "Z")
}

func TestNames(t *testing.T) {
	n := &Binary{
		Left: &Not{Operand: &Membership{Set: "A"}},
		Op:   Or,
		Right: &Binary{
			Left:  &Membership{Set: "B"},
			Op:    Implies,
			Right: &Membership{Set: "A"},
		},
	}
	names := Names(n)
	assert.Len(t, names, 2)
	assert.Contains(t, names, "A")
	assert.Contains(t, names, "B")
}

func TestString(t *testing.T) {
	n := &Binary{
		Left:  &Not{Operand: &Membership{Set: "P"}},
		Op:    Implies,
		Right: &Membership{Set: "Q"},
	}
	assert.Equal(t, "(¬(x ∈ P) → (x ∈ Q))", n.String())
}
