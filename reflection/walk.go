package reflection

// Visit tells Walk how to proceed after a node was visited
type Visit int

const (
	// Continue descends into the node's children
	Continue Visit = iota
	// SkipChildren proceeds with the next sibling
	SkipChildren
	// Stop ends the traversal
	Stop
)

// Walk visits nodes depth-first in order, it returns false if the traversal was stopped
func Walk(nodes []*Node, visit func(node *Node) Visit) bool {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		switch visit(node) {
		case Stop:
			return false
		case SkipChildren:
			continue
		}
		if !Walk(node.Children, visit) {
			return false
		}
	}
	return true
}
