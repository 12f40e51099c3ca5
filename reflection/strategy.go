package reflection

import (
	"fmt"
	"strings"
)

// Strategy computes the fully qualified name of a declaration node
type Strategy interface {
	// Resolve returns the name of the declaration, false when it cannot be named
	Resolve(node *Node, scope *Scope) (Name, bool)
}

// Lexical combines the tracked namespace prefix with the written identifier
type Lexical struct{}

func (Lexical) Resolve(node *Node, scope *Scope) (Name, bool) {
	if node.Name == "" {
		return nil, false
	}
	return Concat(scope.Current(), node.Name), true
}

// Resolved trusts the name annotated by an upstream resolution pass
type Resolved struct{}

func (Resolved) Resolve(node *Node, _ *Scope) (Name, bool) {
	if len(node.Resolved) == 0 {
		return nil, false
	}
	return node.Resolved, true
}

// StrategyByName returns a strategy for "lexical" (default when empty) or "resolved"
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lexical":
		return Lexical{}, nil
	case "resolved":
		return Resolved{}, nil
	default:
		return nil, fmt.Errorf("unsupported strategy: %s", name)
	}
}
