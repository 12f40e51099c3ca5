package reflection

// NodeType discriminates syntax tree statements
type NodeType int

const (
	// OtherNode is any statement that is neither a namespace nor a declaration
	OtherNode NodeType = iota
	// NamespaceNode is a namespace statement, either braced or terminated by a semicolon
	NamespaceNode
	// DeclarationNode is a class-like, function or constant declaration
	DeclarationNode
)

// Position locates a node in the source, line and column are 1-based
type Position struct {
	Offset int
	Line   int
	Column int
}

// Node represents a statement of the syntax tree produced by a parser
type Node struct {
	Type NodeType
	Kind Kind // Declaration kind, DeclarationNode only
	// Name holds the written local identifier of a declaration, or the declared
	// name of a namespace; empty for anonymous declarations and global blocks
	Name     string
	Resolved Name // Fully qualified name annotated by an upstream resolution pass
	Braced   bool // Namespace written as a block
	Children []*Node
	Position Position
}

// Tree represents the top-level statements of a parsed source
type Tree struct {
	Statements []*Node
}

// NewNamespace creates a namespace node, an empty name denotes the global namespace
func NewNamespace(name string, braced bool, children ...*Node) *Node {
	return &Node{Type: NamespaceNode, Name: name, Braced: braced, Children: children}
}

// NewDeclaration creates a declaration node
func NewDeclaration(kind Kind, name string, children ...*Node) *Node {
	return &Node{Type: DeclarationNode, Kind: kind, Name: name, Children: children}
}

// NewOther creates a node ignored for declaration purposes
func NewOther(children ...*Node) *Node {
	return &Node{Type: OtherNode, Children: children}
}

// IsAnonymous reports whether a declaration has no written name
func (n *Node) IsAnonymous() bool {
	return n.Type == DeclarationNode && n.Name == ""
}
