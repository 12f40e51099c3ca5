// Package reflectfile reports the names declared by a PHP file without executing it.
//
// Only names declared by the file itself are reported, names the file merely
// references are not. Names are fully qualified with the namespace separator,
// names in the global namespace carry no prefix.
package reflectfile

import (
	"errors"
	"io"
	"os"
	"path"

	"github.com/marijnvanwezel/reflection-file/inspector/graph"
	"github.com/marijnvanwezel/reflection-file/inspector/php"
	"github.com/marijnvanwezel/reflection-file/reflection"
	"github.com/viant/afs/storage"
)

// File reports information about a file. The source is captured once when the
// file is opened and its declarations never change afterwards.
type File struct {
	path         string
	name         string
	source       []byte
	hash         uint64
	declarations *reflection.Result
}

// Open reads and reflects the file at location, a local path or an afs URL
func Open(location string, opts ...Option) (*File, error) {
	o := newOptions(opts)
	exists, err := o.fs.Exists(o.ctx, location)
	if err != nil {
		return nil, &FileAccessError{Path: location, Reason: reasonUnreadable, Err: err}
	}
	if !exists {
		return nil, &FileAccessError{Path: location, Reason: reasonMissing, Err: os.ErrNotExist}
	}
	object, err := o.fs.Object(o.ctx, location)
	if err != nil {
		return nil, &FileAccessError{Path: location, Reason: reasonUnreadable, Err: err}
	}
	return openObject(o, location, object)
}

// OpenObject reads and reflects a file already listed through afs
func OpenObject(object storage.Object, opts ...Option) (*File, error) {
	if object == nil {
		return nil, &FileAccessError{Reason: reasonMissing, Err: os.ErrNotExist}
	}
	return openObject(newOptions(opts), object.URL(), object)
}

func openObject(o *options, location string, object storage.Object) (*File, error) {
	if object.IsDir() {
		return nil, &FileAccessError{Path: location, Reason: reasonNotFile}
	}
	source, err := o.fs.Download(o.ctx, object)
	if err != nil {
		return nil, &FileAccessError{Path: location, Reason: reasonUnreadable, Err: err}
	}
	name := object.Name()
	if name == "" {
		name = path.Base(location)
	}
	return newFile(o, location, name, source)
}

// FromReader reads source from reader until EOF and reflects it
func FromReader(name string, reader io.Reader, opts ...Option) (*File, error) {
	source, err := io.ReadAll(reader)
	if err != nil {
		return nil, &FileAccessError{Path: name, Reason: reasonUnreadable, Err: err}
	}
	return FromSource(name, source, opts...)
}

// FromSource reflects source that was already read, name is reported as both file and path name
func FromSource(name string, source []byte, opts ...Option) (*File, error) {
	return newFile(newOptions(opts), name, path.Base(name), source)
}

func newFile(o *options, location, name string, source []byte) (*File, error) {
	declarations, err := php.Reflect(o.ctx, php.NewParser(), reflection.New(reflection.WithStrategy(o.strategy)), source)
	if err != nil {
		var parseErr *reflection.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = location
		}
		return nil, err
	}
	hash, err := graph.Hash(source)
	if err != nil {
		return nil, err
	}
	return &File{
		path:         location,
		name:         name,
		source:       source,
		hash:         hash,
		declarations: declarations,
	}, nil
}

// FileName returns the name of the file without directories
func (f *File) FileName() string {
	return f.name
}

// PathName returns the location the file was opened with
func (f *File) PathName() string {
	return f.path
}

// Source returns the source of the file verbatim
func (f *File) Source() string {
	return string(f.source)
}

// Hash returns the highwayhash fingerprint of the source
func (f *File) Hash() uint64 {
	return f.hash
}

// Declarations returns all declared names
func (f *File) Declarations() *reflection.Result {
	return f.declarations
}

// ClassNames returns the fully qualified names of declared classes
func (f *File) ClassNames() []string {
	return f.declarations.ClassNames()
}

// TraitNames returns the fully qualified names of declared traits
func (f *File) TraitNames() []string {
	return f.declarations.TraitNames()
}

// InterfaceNames returns the fully qualified names of declared interfaces
func (f *File) InterfaceNames() []string {
	return f.declarations.InterfaceNames()
}

// EnumNames returns the fully qualified names of declared enums
func (f *File) EnumNames() []string {
	return f.declarations.EnumNames()
}

// FunctionNames returns the fully qualified names of declared functions
func (f *File) FunctionNames() []string {
	return f.declarations.FunctionNames()
}

// ConstantNames returns the fully qualified names of declared constants
func (f *File) ConstantNames() []string {
	return f.declarations.ConstantNames()
}

// Report returns the declarations as a report model
func (f *File) Report() (*graph.File, error) {
	report, err := graph.NewFile(f.path, f.source, f.declarations)
	if err != nil {
		return nil, err
	}
	report.Name = f.name
	return report, nil
}

// String returns the source of the file
func (f *File) String() string {
	return f.Source()
}
