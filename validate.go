package astexpr

import (
	"fmt"
	"sort"
)

// IssueLevel represents severity of a validation issue.
type IssueLevel string

const (
	// IssueError indicates a broken structural invariant.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a suspicious but survivable condition.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue found in a built tree.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Token path from the root
}

// Validate checks the structural invariants of a built tree: no leftover
// parenthesis or placeholder nodes, child counts matching token arity,
// consistent parent back-links, variable references recorded in the sorted
// index set. A successfully built expression yields no issues.
func (t *AST) Validate() []Issue {
	var out []Issue

	if t == nil || t.dead {
		return []Issue{{Level: IssueError, Code: "not_initialised", Message: "the handle is not initialised"}}
	}
	if t.root == nil {
		return []Issue{{Level: IssueError, Code: "no_expression", Message: "no expression has been built"}}
	}

	if t.root.parent != nil {
		out = append(out, Issue{Level: IssueError, Code: "bad_root", Message: "root has a parent link"})
	}

	for i := 1; i < len(t.vars.idx); i++ {
		if t.vars.idx[i-1] >= t.vars.idx[i] {
			out = append(out, Issue{Level: IssueError, Code: "unsorted_vars",
				Message: "variable index set is not strictly sorted"})
			break
		}
	}

	out = append(out, t.validateNode(t.root, "root", 0)...)
	return out
}

// validateNode checks one node and recurses into its children.
func (t *AST) validateNode(n *node, path string, depth int) []Issue {
	var out []Issue

	if depth >= maxDrawDepth {
		return []Issue{{Level: IssueWarning, Code: "deep_tree", Message: "tree deeper than the validation limit", Path: path}}
	}

	switch n.tok {
	case tokParenLeft, tokParenRight:
		out = append(out, Issue{Level: IssueError, Code: "paren_node",
			Message: "parenthesis node in a finished tree", Path: path})
	case tokUndef:
		out = append(out, Issue{Level: IssueError, Code: "undef_node",
			Message: "placeholder node in a finished tree", Path: path})
	case tokVar:
		idx := n.val.l
		pos := sort.Search(len(t.vars.idx), func(i int) bool { return t.vars.idx[i] >= idx })
		if pos >= len(t.vars.idx) || t.vars.idx[pos] != idx {
			out = append(out, Issue{Level: IssueError, Code: "unknown_var",
				Message: fmt.Sprintf("variable index %d missing from the index set", idx), Path: path})
		}
	}

	if n.argc() != tokAttr[n.tok].argc {
		out = append(out, Issue{Level: IssueError, Code: "bad_arity",
			Message: fmt.Sprintf("node has %d children, token takes %d", n.argc(), tokAttr[n.tok].argc), Path: path})
	}
	if n.left == nil && n.right != nil {
		out = append(out, Issue{Level: IssueError, Code: "bad_arity",
			Message: "node has a right child without a left child", Path: path})
	}

	out = append(out, t.validateChild(n, n.left, path+".left", depth)...)
	out = append(out, t.validateChild(n, n.right, path+".right", depth)...)
	return out
}

// validateChild checks the parent back-link and recurses.
func (t *AST) validateChild(n, c *node, path string, depth int) []Issue {
	if c == nil {
		return nil
	}

	var out []Issue
	if c.parent != n {
		out = append(out, Issue{Level: IssueError, Code: "bad_parent",
			Message: "child does not point back at its parent", Path: path})
	}

	return append(out, t.validateNode(c, path, depth+1)...)
}
