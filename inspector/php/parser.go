package php

import (
	"context"
	"fmt"
	"strings"

	"github.com/marijnvanwezel/reflection-file/reflection"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"
)

const maxDiagnostics = 10

// declarationKinds maps tree-sitter declaration nodes to the kind used when the keyword token cannot be read
var declarationKinds = map[string]reflection.Kind{
	"class_declaration":     reflection.Class,
	"trait_declaration":     reflection.Trait,
	"interface_declaration": reflection.Interface,
	"enum_declaration":      reflection.Enum,
	"function_definition":   reflection.Function,
	"const_declaration":     reflection.Constant,
}

// Parser converts PHP source into a tree of top-level statements.
// A Parser is not safe for concurrent use.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a parser for the PHP grammar
func NewParser() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(php.GetLanguage())
	return &Parser{parser: parser}
}

// Parse parses src, a source rejected by the grammar yields a *reflection.ParseError
func (p *Parser) Parse(ctx context.Context, src []byte) (*reflection.Tree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, &reflection.ParseError{Err: fmt.Errorf("failed to parse source: %w", err)}
	}
	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return nil, &reflection.ParseError{Diagnostics: collectDiagnostics(rootNode, src)}
	}
	b := &builder{src: src}
	return &reflection.Tree{Statements: b.statements(rootNode)}, nil
}

// builder converts tree-sitter nodes into reflection nodes
type builder struct {
	src []byte
}

// statements converts the named children of a program or compound statement
func (b *builder) statements(parent *sitter.Node) []*reflection.Node {
	var result []*reflection.Node
	for j := uint32(0); j < parent.NamedChildCount(); j++ {
		childNode := parent.NamedChild(int(j))
		switch childNode.Type() {
		case "namespace_definition":
			result = append(result, b.namespace(childNode))
		case "const_declaration":
			result = append(result, b.constants(childNode)...)
		case "class_declaration", "interface_declaration", "trait_declaration", "enum_declaration", "function_definition":
			result = append(result, b.declaration(childNode))
		default:
			other := reflection.NewOther()
			other.Position = position(childNode)
			result = append(result, other)
		}
	}
	return result
}

func (b *builder) namespace(node *sitter.Node) *reflection.Node {
	name := ""
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(b.src)
	}
	bodyNode := node.ChildByFieldName("body")
	ret := reflection.NewNamespace(name, bodyNode != nil)
	ret.Position = position(node)
	if bodyNode != nil {
		ret.Children = b.statements(bodyNode)
	}
	return ret
}

func (b *builder) declaration(node *sitter.Node) *reflection.Node {
	name := ""
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		name = nameNode.Content(b.src)
	}
	ret := reflection.NewDeclaration(b.kind(node), name)
	ret.Position = position(node)
	return ret
}

// constants returns one node per element of a const statement
func (b *builder) constants(node *sitter.Node) []*reflection.Node {
	kind := b.kind(node)
	var result []*reflection.Node
	for j := uint32(0); j < node.NamedChildCount(); j++ {
		element := node.NamedChild(int(j))
		if element.Type() != "const_element" {
			continue
		}
		name := ""
		for k := uint32(0); k < element.NamedChildCount(); k++ {
			if candidate := element.NamedChild(int(k)); candidate.Type() == "name" {
				name = candidate.Content(b.src)
				break
			}
		}
		constant := reflection.NewDeclaration(kind, name)
		constant.Position = position(element)
		result = append(result, constant)
	}
	return result
}

// kind reads the introducing keyword as written, falling back to the node type
func (b *builder) kind(node *sitter.Node) reflection.Kind {
	for j := 0; j < int(node.ChildCount()); j++ {
		child := node.Child(j)
		if child == nil || child.IsNamed() {
			continue
		}
		if kind, ok := reflection.KindFromKeyword(child.Content(b.src)); ok {
			return kind
		}
	}
	return declarationKinds[node.Type()]
}

func position(node *sitter.Node) reflection.Position {
	point := node.StartPoint()
	return reflection.Position{
		Offset: int(node.StartByte()),
		Line:   int(point.Row) + 1,
		Column: int(point.Column) + 1,
	}
}

// collectDiagnostics reports error and missing nodes in source order
func collectDiagnostics(node *sitter.Node, src []byte) []reflection.Diagnostic {
	var result []reflection.Diagnostic
	var visit func(node *sitter.Node)
	visit = func(node *sitter.Node) {
		if len(result) >= maxDiagnostics {
			return
		}
		switch {
		case node.IsMissing():
			result = append(result, diagnostic(node, fmt.Sprintf("missing %q", node.Type())))
			return
		case node.Type() == "ERROR":
			result = append(result, diagnostic(node, fmt.Sprintf("unexpected %q", snippet(node.Content(src)))))
			return
		}
		for j := 0; j < int(node.ChildCount()); j++ {
			if child := node.Child(j); child != nil && child.HasError() {
				visit(child)
			}
		}
	}
	visit(node)
	if len(result) == 0 {
		result = append(result, diagnostic(node, "syntax error"))
	}
	return result
}

func diagnostic(node *sitter.Node, message string) reflection.Diagnostic {
	pos := position(node)
	return reflection.Diagnostic{Line: pos.Line, Column: pos.Column, Message: message}
}

func snippet(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > 32 {
		return text[:32] + "..."
	}
	return text
}
