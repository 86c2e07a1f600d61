package translate

import "github.com/Heliodex/lingodec/ast"

// stack holds the expressions pushed so far in the current statement.
type stack []ast.Node

func (s *stack) push(n ast.Node) {
	*s = append(*s, n)
}

// pop never fails: an empty stack means the bytecode uses a value we never
// saw pushed, which renders as ERROR.
func (s *stack) pop() ast.Node {
	if len(*s) == 0 {
		Log.Debug("expression stack underflow")
		return ast.NewErrorNode()
	}

	last := len(*s) - 1
	n := (*s)[last]
	*s = (*s)[:last]
	return n
}

// popN pops n nodes, returned in the order they were pushed.
func (s *stack) popN(n int) []ast.Node {
	nodes := make([]ast.Node, n)
	for i := n - 1; i >= 0; i-- {
		nodes[i] = s.pop()
	}
	return nodes
}
