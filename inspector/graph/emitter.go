package graph

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Emitter renders a file report
type Emitter interface {
	Emit(file *File) ([]byte, error)
}

// YAMLEmitter renders files as YAML documents
type YAMLEmitter struct{}

func (YAMLEmitter) Emit(file *File) ([]byte, error) {
	return yaml.Marshal(file)
}

// JSONEmitter renders files as indented JSON
type JSONEmitter struct {
	Indent string
}

func (e JSONEmitter) Emit(file *File) ([]byte, error) {
	if e.Indent == "" {
		return json.Marshal(file)
	}
	return json.MarshalIndent(file, "", e.Indent)
}

// NewEmitter returns an emitter for "yaml" (default when empty) or "json"
func NewEmitter(format string) (Emitter, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		return YAMLEmitter{}, nil
	case "json":
		return JSONEmitter{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
