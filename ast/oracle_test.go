package ast_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/stretchr/testify/require"

	"github.com/seglogic/seglogic/ast"
	"github.com/seglogic/seglogic/parse"
	"github.com/seglogic/seglogic/seg"
)

// exprSource translates a tree into expr-lang syntax with one boolean
// variable per set name.
func exprSource(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Membership:
		return n.Set
	case *ast.Not:
		return "!(" + exprSource(n.Operand) + ")"
	case *ast.Binary:
		l, r := exprSource(n.Left), exprSource(n.Right)
		switch n.Op {
		case ast.And:
			return "(" + l + " && " + r + ")"
		case ast.Or:
			return "(" + l + " || " + r + ")"
		case ast.Implies:
			return "(!(" + l + ") || " + r + ")"
		case ast.Equiv:
			return "(" + l + " == " + r + ")"
		case ast.Xor:
			return "(" + l + " != " + r + ")"
		}
	}
	panic(fmt.Sprintf("unhandled node %T", n))
}

// TestEvalAgainstExpr cross-checks tree evaluation against expr-lang
// evaluating the translated boolean expression over every membership
// combination.
func TestEvalAgainstExpr(t *testing.T) {
	formulas := []string{
		"A ∧ B",
		"A ∨ B",
		"A → B",
		"A ≡ B",
		"A ⊕ B",
		"¬A",
		"¬(A ∧ B) ≡ (¬A ∨ ¬B)",
		"(A → B) → C",
		"A → B → C",
		"(A ≡ B) ⊕ (B ≡ C)",
		"¬¬A ∨ (B ∧ ¬C)",
		"((A ∨ B) ∧ (B ∨ C)) → (A ⊕ C)",
	}
	for _, formula := range formulas {
		t.Run(formula, func(t *testing.T) {
			tree, err := parse.Parse(formula)
			require.NoError(t, err)

			var names []string
			for name := range ast.Names(tree) {
				names = append(names, name)
			}
			sort.Strings(names)

			src := exprSource(tree)
			for combo := 0; combo < 1<<len(names); combo++ {
				env := map[string]any{}
				segs := map[string]seg.Segment{}
				for i, name := range names {
					member := combo&(1<<i) != 0
					env[name] = member
					if member {
						segs[name] = seg.New(0, 0)
					} else {
						segs[name] = seg.New(1, 1)
					}
				}

				got, err := tree.Eval(0, segs)
				require.NoError(t, err)

				program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
				require.NoError(t, err)
				want, err := expr.Run(program, env)
				require.NoError(t, err)

				require.Equal(t, want, got, "env %v, expr %s", env, src)
			}
		})
	}
}
