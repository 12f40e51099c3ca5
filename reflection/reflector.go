package reflection

import "errors"

// ErrNoTree is returned when there is no syntax tree to reflect, typically because parsing failed
var ErrNoTree = errors.New("no syntax tree to reflect")

// Reflector collects the top-level declarations of a syntax tree
type Reflector struct {
	strategy Strategy
}

// New creates a Reflector, the lexical strategy is used unless configured otherwise
func New(options ...Option) *Reflector {
	ret := &Reflector{strategy: Lexical{}}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Strategy returns the naming strategy in use
func (r *Reflector) Strategy() Strategy {
	return r.strategy
}

// Reflect walks the tree once and returns the declared names of every kind
func (r *Reflector) Reflect(tree *Tree) (*Result, error) {
	if tree == nil {
		return nil, ErrNoTree
	}
	scope := NewScope()
	names := &collector{}
	Walk(tree.Statements, func(node *Node) Visit {
		switch node.Type {
		case NamespaceNode:
			scope.Enter(ParseName(node.Name))
			return Continue
		case DeclarationNode:
			if !node.Kind.valid() {
				return SkipChildren
			}
			if name, ok := r.strategy.Resolve(node, scope); ok {
				names.add(node.Kind, name)
			}
		}
		// declaration bodies and other statements never hold top-level declarations
		return SkipChildren
	})
	return names.result(), nil
}

// Reflect reflects the tree with the lexical strategy
func Reflect(tree *Tree) (*Result, error) {
	return New().Reflect(tree)
}
