package graph

import (
	"path/filepath"

	"github.com/marijnvanwezel/reflection-file/reflection"
)

// File represents a source file with the declarations it makes
type File struct {
	Name       string      `yaml:"name" json:"name"`                                 // File name
	Path       string      `yaml:"path" json:"path"`                                 // File path
	Hash       uint64      `yaml:"hash" json:"hash"`                                 // Fingerprint of the source
	Namespaces []string    `yaml:"namespaces,omitempty" json:"namespaces,omitempty"` // Namespaces holding declarations
	Types      []*Type     `yaml:"types,omitempty" json:"types,omitempty"`           // Classes, traits, interfaces and enums
	Functions  []*Function `yaml:"functions,omitempty" json:"functions,omitempty"`   // Functions declared in this file
	Constants  []*Constant `yaml:"constants,omitempty" json:"constants,omitempty"`   // Constants declared in this file

	functionMap map[string]int
	constantMap map[string]int
	typeMap     map[string]int
}

// Type represents a declared class-like type
type Type struct {
	Name      string `yaml:"name" json:"name"` // Fully qualified name
	Kind      string `yaml:"kind" json:"kind"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
}

// Function represents a declared function
type Function struct {
	Name      string `yaml:"name" json:"name"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
}

// Constant represents a declared constant
type Constant struct {
	Name      string `yaml:"name" json:"name"`
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
}

// NewFile creates a file from the declarations reflected from its source
func NewFile(path string, source []byte, result *reflection.Result) (*File, error) {
	hash, err := Hash(source)
	if err != nil {
		return nil, err
	}
	ret := &File{
		Name: filepath.Base(path),
		Path: path,
		Hash: hash,
	}
	namespaces := map[string]bool{}
	addNamespace := func(name reflection.Name) string {
		namespace := name.Namespace().String()
		if namespace != "" && !namespaces[namespace] {
			namespaces[namespace] = true
			ret.Namespaces = append(ret.Namespaces, namespace)
		}
		return namespace
	}
	for _, kind := range reflection.Kinds() {
		for _, fqn := range result.Names(kind) {
			name := reflection.ParseName(fqn)
			namespace := addNamespace(name)
			switch {
			case kind.IsClassLike():
				ret.Types = append(ret.Types, &Type{Name: fqn, Kind: kind.String(), Namespace: namespace})
			case kind == reflection.Function:
				ret.Functions = append(ret.Functions, &Function{Name: fqn, Namespace: namespace})
			case kind == reflection.Constant:
				ret.Constants = append(ret.Constants, &Constant{Name: fqn, Namespace: namespace})
			}
		}
	}
	return ret, nil
}

// TypesOf returns the names of types of the given kind
func (f *File) TypesOf(kind reflection.Kind) []string {
	var result []string
	for _, typ := range f.Types {
		if typ.Kind == kind.String() {
			result = append(result, typ.Name)
		}
	}
	return result
}

// LookupType retrieves a type by fully qualified name
func (f *File) LookupType(name string) *Type {
	if len(f.typeMap) == 0 {
		f.indexTypes()
	}
	if idx, ok := f.typeMap[name]; ok && idx < len(f.Types) {
		return f.Types[idx]
	}
	return nil
}

// LookupFunction retrieves a function by fully qualified name
func (f *File) LookupFunction(name string) *Function {
	if len(f.functionMap) == 0 {
		f.indexFunctions()
	}
	if idx, ok := f.functionMap[name]; ok && idx < len(f.Functions) {
		return f.Functions[idx]
	}
	return nil
}

// HasFunction checks if a function with the given name is declared in the file
func (f *File) HasFunction(name string) bool {
	return f.LookupFunction(name) != nil
}

// LookupConstant retrieves a constant by fully qualified name
func (f *File) LookupConstant(name string) *Constant {
	if len(f.constantMap) == 0 {
		f.constantMap = make(map[string]int)
		for i, constant := range f.Constants {
			if _, ok := f.constantMap[constant.Name]; !ok {
				f.constantMap[constant.Name] = i
			}
		}
	}
	if idx, ok := f.constantMap[name]; ok && idx < len(f.Constants) {
		return f.Constants[idx]
	}
	return nil
}

func (f *File) indexFunctions() {
	f.functionMap = make(map[string]int)
	for i, function := range f.Functions {
		if function == nil {
			continue
		}
		if _, ok := f.functionMap[function.Name]; !ok {
			f.functionMap[function.Name] = i
		}
	}
}

func (f *File) indexTypes() {
	f.typeMap = make(map[string]int)
	for i, typ := range f.Types {
		if typ == nil {
			continue
		}
		if _, ok := f.typeMap[typ.Name]; !ok {
			f.typeMap[typ.Name] = i
		}
	}
}

// Content renders the file with the given emitter
func (f *File) Content(emitter Emitter) ([]byte, error) {
	return emitter.Emit(f)
}
