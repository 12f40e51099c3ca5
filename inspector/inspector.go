package inspector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/marijnvanwezel/reflection-file/inspector/graph"
	"github.com/marijnvanwezel/reflection-file/inspector/php"
	"github.com/marijnvanwezel/reflection-file/inspector/repository"
)

// Inspector provides an interface for inspecting source code
type Inspector interface {
	// InspectSource parses source code from a byte slice and extracts declared names
	InspectSource(src []byte) (*graph.File, error)

	// InspectFile parses a source file and extracts declared names
	InspectFile(filename string) (*graph.File, error)

	// InspectPackage inspects a package directory and extracts all declared names
	InspectPackage(packagePath string) (*graph.Package, error)

	// InspectProject inspects a project directory and extracts all declared names
	InspectProject(location string) (*graph.Project, error)
}

// Factory creates appropriate inspectors based on file extension
type Factory struct {
	config *graph.Config
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(config *graph.Config) *Factory {
	if config == nil {
		config = graph.DefaultConfig()
	}
	return &Factory{
		config: config,
	}
}

func (f *Factory) supports(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	extensions := f.config.Extensions
	if len(extensions) == 0 {
		extensions = graph.DefaultConfig().Extensions
	}
	for _, candidate := range extensions {
		if strings.EqualFold(candidate, ext) {
			return true
		}
	}
	return false
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	if !f.supports(filename) {
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
	inspector, err := php.NewInspector(f.config)
	if err != nil {
		return nil, err
	}
	return inspector, nil
}

// InspectFile is a convenience method that gets the appropriate inspector and inspects the file
func (f *Factory) InspectFile(filename string) (*graph.File, error) {
	inspector, err := f.GetInspector(filename)
	if err != nil {
		return nil, err
	}
	return inspector.InspectFile(filename)
}

// InspectPackage is a convenience method that gets the appropriate inspector for a package
func (f *Factory) InspectPackage(packagePath string) (*graph.Package, error) {
	entries, err := filepath.Glob(filepath.Join(packagePath, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory: %w", err)
	}
	for _, entry := range entries {
		if f.supports(entry) {
			inspector, err := php.NewInspector(f.config)
			if err != nil {
				return nil, err
			}
			return inspector.InspectPackage(packagePath)
		}
	}
	return nil, fmt.Errorf("unable to determine language for package: %s", packagePath)
}

// InspectProject is a convenience method that gets the appropriate inspector for a project
func (f *Factory) InspectProject(project *repository.Project) (*graph.Project, error) {
	switch project.Type {
	case repository.TypePHP, repository.TypeGit, repository.TypeUnknown:
		inspector, err := php.NewInspector(f.config)
		if err != nil {
			return nil, err
		}
		return inspector.InspectProject(project.RootPath)
	}
	return nil, fmt.Errorf("unsupported project type: %s", project.Type)
}
