package php_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/marijnvanwezel/reflection-file/inspector/graph"
	"github.com/marijnvanwezel/reflection-file/inspector/php"
	"github.com/marijnvanwezel/reflection-file/reflection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type declarationCase struct {
	source string
	expect []string
}

// classLikeCases expands the shared scenarios for a class-like keyword
func classLikeCases(keyword, upper string) []declarationCase {
	return []declarationCase{
		{source: "", expect: []string{}},
		{source: keyword + " Foobar {}", expect: []string{}},
		{source: "<?php " + keyword + " Foobar {}", expect: []string{"Foobar"}},
		{source: "<?php namespace Foo; " + keyword + " Bar {}", expect: []string{`Foo\Bar`}},
		{source: "<?php namespace { " + keyword + " Bar {} }", expect: []string{"Bar"}},
		{source: "<?php namespace Foo { " + keyword + " Bar {} }", expect: []string{`Foo\Bar`}},
		{source: "<?php namespace Foo { " + keyword + " Bar {} } namespace Bar { " + keyword + " Foo {} }", expect: []string{`Foo\Bar`, `Bar\Foo`}},
		{source: "<?php namespace Foo; " + keyword + " Bar {} namespace Bar; " + keyword + " Foo {}", expect: []string{`Foo\Bar`, `Bar\Foo`}},
		{source: "<?php namespace Foo { " + keyword + " Bar {} } namespace { " + keyword + " Bar {} }", expect: []string{`Foo\Bar`, "Bar"}},
		{source: "<?php namespace Bar { " + upper + " Bar {} }", expect: []string{`Bar\Bar`}},
		{source: "<?php namespace { " + keyword + " Bar {} } namespace Bar { " + keyword + " Bar {} } namespace Foo { " + keyword + " Bar {} }", expect: []string{"Bar", `Bar\Bar`, `Foo\Bar`}},
		{source: "<?php namespace Foo { " + keyword + " Bar {} } namespace Foo { " + keyword + " Bar {} }", expect: []string{`Foo\Bar`, `Foo\Bar`}},
		{source: "<?php namespace {}", expect: []string{}},
	}
}

func TestInspector_Reflect(t *testing.T) {
	var testCases = []struct {
		description string
		kind        reflection.Kind
		cases       []declarationCase
	}{
		{
			description: "classes",
			kind:        reflection.Class,
			cases: append(classLikeCases("class", "CLASS"),
				declarationCase{source: "<?php namespace Bar { trait Bar {} class Bar {} }", expect: []string{`Bar\Bar`}},
				declarationCase{source: "<?php namespace Bar { trait Foo {} class Bar {} }", expect: []string{`Bar\Bar`}},
				declarationCase{source: "<?php abstract class Base {} final class Leaf extends Base {}", expect: []string{"Base", "Leaf"}},
				declarationCase{source: "<?php $object = new class {}; class Named {}", expect: []string{"Named"}},
				declarationCase{source: "<?php class Outer { public function make() { return new class {}; } }", expect: []string{"Outer"}},
				declarationCase{source: "<?php if (true) { class Conditional {} }", expect: []string{}},
				declarationCase{source: "<html><?php class Inline {} ?></html><?php class Second {}", expect: []string{"Inline", "Second"}},
			),
		},
		{
			description: "traits",
			kind:        reflection.Trait,
			cases: append(classLikeCases("trait", "TRAIT"),
				declarationCase{source: "<?php namespace Bar { trait Bar {} class Bar {} }", expect: []string{`Bar\Bar`}},
				declarationCase{source: "<?php namespace Bar { trait Bar {} class Foo {} }", expect: []string{`Bar\Bar`}},
			),
		},
		{
			description: "interfaces",
			kind:        reflection.Interface,
			cases: append(classLikeCases("interface", "INTERFACE"),
				declarationCase{source: "<?php namespace Bar { interface Bar {} class Bar {} }", expect: []string{`Bar\Bar`}},
			),
		},
		{
			description: "enums",
			kind:        reflection.Enum,
			cases: append(classLikeCases("enum", "ENUM"),
				declarationCase{source: "<?php namespace Bar { enum Bar {} class Foo {} }", expect: []string{`Bar\Bar`}},
				declarationCase{source: "<?php enum Suit: string { case Hearts = 'H'; }", expect: []string{"Suit"}},
			),
		},
		{
			description: "functions",
			kind:        reflection.Function,
			cases: []declarationCase{
				{source: "", expect: []string{}},
				{source: "function foobar {}", expect: []string{}},
				{source: "<?php function foobar() {}", expect: []string{"foobar"}},
				{source: "<?php function foobar   () {}", expect: []string{"foobar"}},
				{source: "<?php namespace Foo; function bar() {}", expect: []string{`Foo\bar`}},
				{source: "<?php namespace { function bar() {} }", expect: []string{"bar"}},
				{source: "<?php namespace Foo { function bar() {} }", expect: []string{`Foo\bar`}},
				{source: "<?php namespace Foo { function bar() {} } namespace Bar { function foo() {} }", expect: []string{`Foo\bar`, `Bar\foo`}},
				{source: "<?php namespace Foo; function bar() {} namespace Bar; function foo() {}", expect: []string{`Foo\bar`, `Bar\foo`}},
				{source: "<?php namespace Foo { function bar() {} } namespace { function bar() {} }", expect: []string{`Foo\bar`, "bar"}},
				{source: "<?php namespace Bar { FUNCTION bar() {} }", expect: []string{`Bar\bar`}},
				{source: "<?php namespace Bar { function bar() {} class bar {} }", expect: []string{`Bar\bar`}},
				{source: "<?php namespace { function bar() {} } namespace Bar { function bar() {} } namespace Foo { function bar() {} }", expect: []string{"bar", `Bar\bar`, `Foo\bar`}},
				{source: "<?php function outer() { function inner() {} }", expect: []string{"outer"}},
				{source: "<?php $closure = function () {}; class Holder { function method() {} }", expect: []string{}},
				{source: "<?php namespace {}", expect: []string{}},
			},
		},
		{
			description: "constants",
			kind:        reflection.Constant,
			cases: []declarationCase{
				{source: "", expect: []string{}},
				{source: `const foobar = "Hello"`, expect: []string{}},
				{source: `<?php const foobar = "hello";`, expect: []string{"foobar"}},
				{source: `<?php namespace Foo; const bar = "hello";`, expect: []string{`Foo\bar`}},
				{source: `<?php namespace { const bar = "hello"; }`, expect: []string{"bar"}},
				{source: `<?php namespace Foo { const bar = "hello"; }`, expect: []string{`Foo\bar`}},
				{source: `<?php namespace Foo { const bar = "hello"; } namespace Bar { const foo = "hello"; }`, expect: []string{`Foo\bar`, `Bar\foo`}},
				{source: `<?php namespace Foo; const bar = "hello"; namespace Bar; const foo = "hello";`, expect: []string{`Foo\bar`, `Bar\foo`}},
				{source: `<?php namespace Foo { const bar = "hello"; } namespace { const bar = "hello"; }`, expect: []string{`Foo\bar`, "bar"}},
				{source: `<?php namespace Bar { CONST bar = "hello"; }`, expect: []string{`Bar\bar`}},
				{source: `<?php namespace Bar { const bar = "hello"; class bar {} }`, expect: []string{`Bar\bar`}},
				{source: `<?php namespace { const bar = "hello"; } namespace Bar { const bar = "hello"; } namespace Foo { const bar = "hello"; }`, expect: []string{"bar", `Bar\bar`, `Foo\bar`}},
				{source: `<?php const FIRST = 1, SECOND = 2;`, expect: []string{"FIRST", "SECOND"}},
				{source: `<?php class Config { const LEVEL = 1; }`, expect: []string{}},
				{source: `<?php namespace {}`, expect: []string{}},
			},
		},
	}

	strategies := map[string]graph.Config{
		"lexical":  {Strategy: "lexical"},
		"resolved": {Strategy: "resolved"},
	}
	for strategyName, config := range strategies {
		config := config
		inspector, err := php.NewInspector(&config)
		require.NoError(t, err)
		for _, testCase := range testCases {
			for _, item := range testCase.cases {
				t.Run(strategyName+"/"+testCase.description+"/"+item.source, func(t *testing.T) {
					result, err := inspector.Reflect([]byte(item.source))
					require.NoError(t, err)
					assert.Equal(t, item.expect, result.Names(testCase.kind))
				})
			}
		}
	}
}

func TestParser_Parse(t *testing.T) {
	parser := php.NewParser()

	tree, err := parser.Parse(context.Background(), []byte("<?php namespace Foo;\nCLASS Bar {}\nconst A = 1, B = 2;\necho 'x';"))
	require.NoError(t, err)
	require.Len(t, tree.Statements, 6)

	namespace := tree.Statements[1]
	assert.Equal(t, reflection.NamespaceNode, namespace.Type)
	assert.Equal(t, "Foo", namespace.Name)
	assert.False(t, namespace.Braced)

	class := tree.Statements[2]
	assert.Equal(t, reflection.DeclarationNode, class.Type)
	assert.Equal(t, reflection.Class, class.Kind)
	assert.Equal(t, "Bar", class.Name)
	assert.Equal(t, 2, class.Position.Line)
	assert.Equal(t, 1, class.Position.Column)

	assert.Equal(t, reflection.Constant, tree.Statements[3].Kind)
	assert.Equal(t, "A", tree.Statements[3].Name)
	assert.Equal(t, "B", tree.Statements[4].Name)

	tree, err = parser.Parse(context.Background(), []byte("<?php namespace { function foo() {} }"))
	require.NoError(t, err)
	block := tree.Statements[1]
	assert.True(t, block.Braced)
	assert.Equal(t, "", block.Name)
	require.Len(t, block.Children, 1)
	assert.Equal(t, reflection.Function, block.Children[0].Kind)
}

func TestParser_ParseError(t *testing.T) {
	var testCases = []string{
		"<?php class Foo {",
		"<?php namespace Foo { class Bar {} ",
		"<?php function () {",
		"<?php bogus_content",
	}
	for _, source := range testCases {
		t.Run(source, func(t *testing.T) {
			_, err := php.NewParser().Parse(context.Background(), []byte(source))
			require.Error(t, err)
			var parseErr *reflection.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.NotEmpty(t, parseErr.Diagnostics)
			assert.ErrorIs(t, err, reflection.ErrParse)
		})
	}
}

func TestNewInspector_Strategy(t *testing.T) {
	var testCases = []struct {
		description string
		strategy    string
		expectErr   bool
	}{
		{description: "default", strategy: ""},
		{description: "lexical", strategy: "lexical"},
		{description: "resolved", strategy: "Resolved"},
		{description: "misspelled", strategy: "resovled", expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			inspector, err := php.NewInspector(&graph.Config{Strategy: testCase.strategy})
			if testCase.expectErr {
				assert.Error(t, err)
				assert.Nil(t, inspector)
				return
			}
			require.NoError(t, err)
			result, err := inspector.Reflect([]byte(`<?php namespace Foo; class Bar {}`))
			require.NoError(t, err)
			assert.Equal(t, []string{`Foo\Bar`}, result.ClassNames())
		})
	}
}

func TestReflect_ResolvedPointer(t *testing.T) {
	reflector := reflection.New(reflection.WithStrategy(&reflection.Resolved{}))
	result, err := php.Reflect(context.Background(), php.NewParser(), reflector, []byte(`<?php namespace Foo; class Bar {}`))
	require.NoError(t, err)
	assert.Equal(t, []string{`Foo\Bar`}, result.ClassNames())
}

func TestResolveNames(t *testing.T) {
	tree, err := php.NewParser().Parse(context.Background(), []byte(`<?php namespace A\B; class C {} namespace D; function e() {}`))
	require.NoError(t, err)
	php.ResolveNames(tree)

	var resolved []string
	reflection.Walk(tree.Statements, func(node *reflection.Node) reflection.Visit {
		if node.Type == reflection.DeclarationNode {
			resolved = append(resolved, node.Resolved.String())
		}
		return reflection.Continue
	})
	assert.Equal(t, []string{`A\B\C`, `D\e`}, resolved)
}

func TestInspector_InspectFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "Broken.php")
	require.NoError(t, os.WriteFile(filePath, []byte("<?php class {"), 0644))

	inspector, err := php.NewInspector(nil)
	require.NoError(t, err)
	_, err = inspector.InspectFile(filePath)
	var parseErr *reflection.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, filePath, parseErr.Path)

	_, err = inspector.InspectFile(filepath.Join(dir, "Absent.php"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestInspector_InspectProject(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"composer.json":          `{"name": "acme/blog"}`,
		"src/Post.php":           `<?php namespace Acme\Blog; class Post {} function slug() {}`,
		"src/Model/Comment.php":  `<?php namespace Acme\Blog\Model; interface Comment {} const MAX = 10;`,
		"tests/PostTest.php":     `<?php namespace Acme\Blog\Tests; class PostTest {}`,
		"vendor/lib/Library.php": `<?php class Library {}`,
		"src/Model/README.md":    `not php`,
		"templates/layout.phtml": `<html><?php function render() {} ?></html>`,
	}
	for name, content := range files {
		location := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0644))
	}

	config := graph.DefaultConfig()
	config.SkipTests = true
	inspector, err := php.NewInspector(config)
	require.NoError(t, err)
	project, err := inspector.InspectProject(filepath.Join(root, "src", "Post.php"))
	require.NoError(t, err)
	assert.Equal(t, "acme/blog", project.Name)
	assert.Equal(t, "php", project.Type)

	var paths []string
	for _, file := range project.Files() {
		paths = append(paths, file.Path)
	}
	assert.ElementsMatch(t, []string{"src/Post.php", "src/Model/Comment.php", "templates/layout.phtml"}, paths)

	pkg := project.GetPackage("src")
	require.NotNil(t, pkg)
	post := pkg.LookupFile("Post.php")
	require.NotNil(t, post)
	assert.Equal(t, []string{`Acme\Blog\Post`}, post.TypesOf(reflection.Class))
	assert.True(t, post.HasFunction(`Acme\Blog\slug`))

	_, err = inspector.InspectPackage(filepath.Join(root, "src", "Model", "..", ".."))
	assert.Error(t, err, "root holds no PHP files")
}
