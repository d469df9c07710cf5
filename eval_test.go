package astexpr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalDoubleScenarios(t *testing.T) {
	tests := []struct {
		name string
		expr string
		vars []float64
		want float64
	}{
		{"quadratic_root", "(-$2 + sqrt(${2}^2 - 4*$1*$3)) / (2*$1)", []float64{1, 6, 5}, -1},
		{"nested_functions", "sqrt(ln(1))", nil, 0},
		{"logical_chain", "$1 >= $2 && $2 != 0", []float64{3, 1}, 1},
		{"logical_false", "$1 >= $2 && $2 != 0", []float64{3, 0}, 0},
		{"not_zero", "!0", nil, 1},
		{"not_nonzero", "!3.5", nil, 0},
		{"negation", "-2.5 * 4", nil, -10},
		{"double_negation", "--2.5", nil, 2.5},
		{"power", "2^10", nil, 1024},
		{"power_chain_left_assoc", "2^3^2", nil, 64},
		{"log10", "log(1000)", nil, 3},
		{"exponent_literal", "1.5e2 + .5", nil, 150.5},
		{"or_short_values", "0 || 2", nil, 1},
		{"comparison_precedence", "1 + 1 == 2", nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New()
			require.NoError(t, tree.Build(tt.expr, Double))
			got, err := tree.EvalDouble(tt.vars)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEvalLongScenarios(t *testing.T) {
	tests := []struct {
		name string
		expr string
		vars []int64
		want int64
	}{
		{"precedence", "2+3*4", nil, 14},
		{"paren_grouping", "(2+3)*4", nil, 20},
		{"left_assoc_minus", "1-2-3", nil, -4},
		{"division_truncates", "7/2", nil, 3},
		{"negative_division_truncates", "-7/2", nil, -3},
		{"power_truncates", "2^10", nil, 1024},
		{"sqrt_truncates", "sqrt(10)", nil, 3},
		{"ln_truncates", "ln(10)", nil, 2},
		{"variables", "$1*$2 + $3", []int64{2, 3, 4}, 10},
		{"logic", "1 && 2 || 0", nil, 1},
		{"equality", "2 == 2", nil, 1},
		{"inequality", "2 != 2", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New()
			require.NoError(t, tree.Build(tt.expr, Long))
			got, err := tree.EvalLong(tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalSpecialDoubles(t *testing.T) {
	tree := New()
	require.NoError(t, tree.Build("inf", Double))
	v, err := tree.EvalDouble(nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	tree = New()
	require.NoError(t, tree.Build("nan == nan", Double))
	v, err = tree.EvalDouble(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	tree = New()
	require.NoError(t, tree.Build("-inf", Double))
	v, err = tree.EvalDouble(nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
}

func TestEvalIdempotent(t *testing.T) {
	tree := New()
	require.NoError(t, tree.Build("sqrt($1^2 + $2^2) * ln($3)", Double))

	vars := []float64{3, 4, math.E}
	first, err := tree.EvalDouble(vars)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := tree.EvalDouble(vars)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(first), math.Float64bits(again))
	}
}

func TestParenWrappingIsBitIdentical(t *testing.T) {
	exprs := []string{
		"2*3 + 1/7",
		"sqrt(2) - ln(3)^2",
		"1e-3 * 4.25 + log(42)",
	}
	for _, expr := range exprs {
		plain := New()
		require.NoError(t, plain.Build(expr, Double))
		wrapped := New()
		require.NoError(t, wrapped.Build("("+expr+")", Double))

		a, err := plain.EvalDouble(nil)
		require.NoError(t, err)
		b, err := wrapped.EvalDouble(nil)
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(a), math.Float64bits(b), expr)
	}
}

func TestLeftAssociativeShape(t *testing.T) {
	// a op b op c parses as ((a op b) op c): the rightmost operator is the
	// root and its left child is the same operator.
	for _, expr := range []string{"1+2+3", "1*2*3", "1-2-3", "1&&2&&3", "1==2==3"} {
		tree := New()
		require.NoError(t, tree.Build(expr, Long))
		root := tree.root
		require.NotNil(t, root.left)
		assert.Equal(t, root.tok, root.left.tok, expr)
		assert.Equal(t, tokNum, root.right.tok, expr)
		assert.Equal(t, tokNum, root.left.left.tok, expr)
	}
}

func TestNoParensInFinishedTree(t *testing.T) {
	tree := New()
	require.NoError(t, tree.Build("((($1)) + (2 * (3 - $2)))", Double))

	count := 0
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		count++
		assert.NotEqual(t, tokParenLeft, n.tok)
		assert.NotEqual(t, tokParenRight, n.tok)
	}
	walk(tree.root)

	// $1, $2, 2, 3, +, *, -
	assert.Equal(t, 7, count)
}
