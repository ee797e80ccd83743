package tree

import "errors"

// ErrEmptyTree is returned if a walk is started at a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Action is a function type to operate on tree nodes during a walk.
// depth is 0 for the start node.
type Action[T comparable] func(n *Node[T], depth int) error

// TopDown traverses a tree starting at (and including) node, depth first.
// Parents are always processed before their children, and children in
// order.
//
// If the action returns an error for a node, descending the branch below
// this node is aborted; the walk continues with the node's siblings.
// TopDown returns all errors joined.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	var errs []error
	walk(node, 0, action, &errs)
	return errors.Join(errs...)
}

func walk[T comparable](node *Node[T], depth int, action Action[T], errs *[]error) {
	if err := action(node, depth); err != nil {
		tracer().Debugf("action for node %v returned error, not descending: %v", node, err)
		*errs = append(*errs, err)
		return
	}
	for _, ch := range node.Children() {
		walk(ch, depth+1, action, errs)
	}
}
