package graph_test

import (
	"encoding/json"
	"testing"

	"github.com/marijnvanwezel/reflection-file/inspector/graph"
	"github.com/marijnvanwezel/reflection-file/reflection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewFile(t *testing.T) {
	tree := &reflection.Tree{Statements: []*reflection.Node{
		reflection.NewDeclaration(reflection.Function, "bootstrap"),
		reflection.NewNamespace(`App\Model`, true,
			reflection.NewDeclaration(reflection.Class, "User"),
			reflection.NewDeclaration(reflection.Interface, "Identifiable"),
			reflection.NewDeclaration(reflection.Constant, "VERSION"),
		),
		reflection.NewNamespace(`App\Support`, true,
			reflection.NewDeclaration(reflection.Trait, "Loggable"),
			reflection.NewDeclaration(reflection.Enum, "Level"),
			reflection.NewDeclaration(reflection.Function, "helper"),
		),
	}}
	result, err := reflection.Reflect(tree)
	require.NoError(t, err)
	source := []byte("<?php // fixture")
	file, err := graph.NewFile("/src/app/model.php", source, result)
	require.NoError(t, err)

	expectYaml := `
name: model.php
path: /src/app/model.php
namespaces:
  - App\Model
  - App\Support
types:
  - name: App\Model\User
    kind: Class
    namespace: App\Model
  - name: App\Support\Loggable
    kind: Trait
    namespace: App\Support
  - name: App\Model\Identifiable
    kind: Interface
    namespace: App\Model
  - name: App\Support\Level
    kind: Enum
    namespace: App\Support
functions:
  - name: bootstrap
  - name: App\Support\helper
    namespace: App\Support
constants:
  - name: App\Model\VERSION
    namespace: App\Model
`
	expect := &graph.File{}
	require.NoError(t, yaml.Unmarshal([]byte(expectYaml), expect))
	expect.Hash, err = graph.Hash(source)
	require.NoError(t, err)

	if !assert.EqualValues(t, expect, file) {
		data, _ := yaml.Marshal(file)
		t.Log("ACTUAL:", string(data))
	}
	assert.Equal(t, []string{`App\Model\User`}, file.TypesOf(reflection.Class))
	assert.NotNil(t, file.LookupType(`App\Support\Level`))
	assert.Nil(t, file.LookupType(`Level`))
	assert.True(t, file.HasFunction("bootstrap"))
	assert.False(t, file.HasFunction("helper"))
	assert.NotNil(t, file.LookupConstant(`App\Model\VERSION`))
}

func TestEmitter(t *testing.T) {
	file := &graph.File{
		Name:      "index.php",
		Path:      "index.php",
		Functions: []*graph.Function{{Name: "main"}},
	}

	emitter, err := graph.NewEmitter("json")
	require.NoError(t, err)
	data, err := file.Content(emitter)
	require.NoError(t, err)
	decoded := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "index.php", decoded["name"])

	emitter, err = graph.NewEmitter("")
	require.NoError(t, err)
	data, err = emitter.Emit(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- name: main")

	_, err = graph.NewEmitter("xml")
	assert.Error(t, err)
}

func TestHash(t *testing.T) {
	first, err := graph.Hash([]byte("<?php class A {}"))
	require.NoError(t, err)
	second, err := graph.Hash([]byte("<?php class A {}"))
	require.NoError(t, err)
	other, err := graph.Hash([]byte("<?php class B {}"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestProject_Init(t *testing.T) {
	project := &graph.Project{Name: "acme/app", RootPath: "/work/app"}
	pkg := &graph.Package{Name: "Model", Path: "/work/app/src/Model"}
	pkg.AddFile(&graph.File{Name: "User.php", Path: "/work/app/src/Model/User.php"})
	project.AddPackage(pkg)
	project.Init()

	assert.Equal(t, "src/Model", pkg.Path)
	assert.Equal(t, "src/Model/User.php", pkg.FileSet[0].Path)
	assert.Same(t, pkg, project.GetPackage("src/Model"))
	assert.Len(t, project.Files(), 1)
	assert.NotNil(t, pkg.LookupFile("User.php"))
}
