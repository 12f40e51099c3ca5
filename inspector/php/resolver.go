package php

import "github.com/marijnvanwezel/reflection-file/reflection"

// ResolveNames annotates every named declaration with its fully qualified name.
// A namespace applies to the statements of its block, or, written with a
// semicolon, to every statement up to the next namespace statement.
func ResolveNames(tree *reflection.Tree) {
	if tree == nil {
		return
	}
	var namespace reflection.Name
	reflection.Walk(tree.Statements, func(node *reflection.Node) reflection.Visit {
		switch node.Type {
		case reflection.NamespaceNode:
			namespace = reflection.ParseName(node.Name)
			return reflection.Continue
		case reflection.DeclarationNode:
			node.Resolved = nil
			if node.Name != "" {
				node.Resolved = reflection.Concat(namespace, node.Name)
			}
		}
		return reflection.SkipChildren
	})
}
