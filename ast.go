package astexpr

import (
	"fmt"
	"io"
	"strings"
)

// AST is a handle owning one parsed expression tree, the set of variable
// indices it references, and the first error recorded against it. A handle
// must not be used concurrently; separate handles are fully independent.
type AST struct {
	opt   Options  // Syntax marker characters
	dtype DataType // Arithmetic mode chosen at build time
	root  *node    // Root of the finished tree, nil before a build
	vars  varSet   // Distinct variable indices in ascending order
	err   *Error   // First recorded error, sticky until Destroy
	dead  bool     // Set by Destroy
}

// New creates an empty handle with default options.
func New() *AST {
	return NewWithOptions(nil)
}

// NewWithOptions creates an empty handle. A nil opt means defaults.
func NewWithOptions(opt *Options) *AST {
	return &AST{opt: opt.normalize()}
}

// Build parses the expression into a tree with the given arithmetic mode.
// A handle holds at most one tree; a second Build fails with CodeExist.
func (t *AST) Build(expr string, dtype DataType) error {
	if t == nil || t.dead {
		return &Error{Code: CodeInit}
	}
	if t.err != nil {
		return t.err
	}
	if t.root != nil {
		return t.fail(&Error{Code: CodeExist, Expr: expr})
	}
	if strings.TrimSpace(expr) == "" {
		return t.fail(&Error{Code: CodeString, Expr: expr})
	}

	// Zero-value handles get the default markers.
	t.opt = (&t.opt).normalize()

	t.dtype = dtype
	if err := t.buildTree(expr); err != nil {
		return t.fail(err)
	}

	return nil
}

// EvalLong evaluates a Long tree against the variable array. Element i of
// vars backs the expression reference with written index i+1.
func (t *AST) EvalLong(vars []int64) (int64, error) {
	if err := t.evalCheck(Long, vars == nil, len(vars)); err != nil {
		return 0, err
	}

	fail := false
	v := evalLong(t.root, vars, &fail)
	if fail {
		return 0, t.fail(&Error{Code: CodeEval})
	}

	return v, nil
}

// EvalDouble evaluates a Double tree against the variable array. Element i
// of vars backs the expression reference with written index i+1.
func (t *AST) EvalDouble(vars []float64) (float64, error) {
	if err := t.evalCheck(Double, vars == nil, len(vars)); err != nil {
		return 0, err
	}

	fail := false
	v := evalDouble(t.root, vars, &fail)
	if fail {
		return 0, t.fail(&Error{Code: CodeEval})
	}

	return v, nil
}

// evalCheck validates the handle state and the variable array shape before
// an evaluation.
func (t *AST) evalCheck(want DataType, nilVars bool, size int) error {
	if t == nil || t.dead {
		return &Error{Code: CodeInit}
	}
	if t.err != nil {
		return t.err
	}
	if t.root == nil {
		return t.fail(&Error{Code: CodeNoExpr})
	}
	if t.dtype != want {
		return t.fail(&Error{Code: CodeValue})
	}
	if nilVars && t.vars.count() > 0 {
		return t.fail(&Error{Code: CodeVar})
	}
	if t.vars.count() > 0 && int64(size) <= t.vars.max() {
		return t.fail(&Error{Code: CodeSize})
	}

	return nil
}

// DataType returns the arithmetic mode chosen at build time.
func (t *AST) DataType() DataType {
	return t.dtype
}

// NumVars returns the number of distinct variables the expression references.
func (t *AST) NumVars() int {
	if t == nil {
		return 0
	}

	return t.vars.count()
}

// Vars returns a copy of the distinct zero-based variable indices in
// ascending order.
func (t *AST) Vars() []int64 {
	if t == nil || t.vars.count() == 0 {
		return nil
	}

	out := make([]int64, len(t.vars.idx))
	copy(out, t.vars.idx)
	return out
}

// Err returns the first error recorded against the handle, or nil.
func (t *AST) Err() error {
	if t == nil || t.err == nil {
		return nil
	}

	return t.err
}

// Destroy releases the tree, the variable set and the error state. Any
// later operation on the handle fails with CodeInit.
func (t *AST) Destroy() {
	if t == nil {
		return
	}

	t.root = nil
	t.vars = varSet{}
	t.err = nil
	t.dead = true
}

// Perror writes a one-line description of the recorded error to w, prefixed
// by msg. Token errors are followed by the expression and a caret pointing
// at the offending character. Nothing is written when the handle is healthy.
func (t *AST) Perror(w io.Writer, msg string) {
	sep := " "
	if msg == "" {
		sep = ""
	}

	if t == nil || t.dead {
		fmt.Fprintf(w, "%s%sthe abstract syntax tree is not initialised.\n", msg, sep)
		return
	}
	if t.err == nil {
		return
	}

	fmt.Fprintf(w, "%s%s%s.\n", msg, sep, t.err.message())
	if t.err.Code == CodeToken && t.err.Expr != "" {
		fmt.Fprintln(w, t.err.Expr)
		fmt.Fprintf(w, "%s^\n", strings.Repeat(" ", t.err.Pos))
	}
}

// fail records the first error against the handle and returns the sticky one.
func (t *AST) fail(e *Error) error {
	if t.err == nil {
		t.err = e
	}

	return t.err
}
