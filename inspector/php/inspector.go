package php

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marijnvanwezel/reflection-file/inspector/graph"
	"github.com/marijnvanwezel/reflection-file/inspector/repository"
	"github.com/marijnvanwezel/reflection-file/reflection"
)

const defaultFilename = "source.php"

// Inspector provides functionality to inspect PHP code and extract declared names
type Inspector struct {
	config    *graph.Config
	parser    *Parser
	reflector *reflection.Reflector
}

// NewInspector creates a new PHP Inspector with the provided configuration, an unknown strategy is an error
func NewInspector(config *graph.Config) (*Inspector, error) {
	if config == nil {
		config = graph.DefaultConfig()
	}
	if len(config.Extensions) == 0 {
		adjusted := *config
		adjusted.Extensions = graph.DefaultConfig().Extensions
		config = &adjusted
	}
	strategy, err := reflection.StrategyByName(config.Strategy)
	if err != nil {
		return nil, fmt.Errorf("invalid inspector config: %w", err)
	}
	return &Inspector{
		config:    config,
		parser:    NewParser(),
		reflector: reflection.New(reflection.WithStrategy(strategy)),
	}, nil
}

// Reflect parses src and returns its top-level declarations
func (i *Inspector) Reflect(src []byte) (*reflection.Result, error) {
	return Reflect(context.Background(), i.parser, i.reflector, src)
}

// Reflect parses src with parser and collects declarations with reflector
func Reflect(ctx context.Context, parser *Parser, reflector *reflection.Reflector, src []byte) (*reflection.Result, error) {
	tree, err := parser.Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	// strategies that do not read Node.Resolved ignore the annotation
	ResolveNames(tree)
	return reflector.Reflect(tree)
}

// InspectSource parses PHP source code from a byte slice and extracts declarations
func (i *Inspector) InspectSource(src []byte) (*graph.File, error) {
	return i.inspect(defaultFilename, src)
}

// InspectFile parses a PHP source file and extracts declarations
func (i *Inspector) InspectFile(filename string) (*graph.File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.inspect(filename, src)
}

func (i *Inspector) inspect(filename string, src []byte) (*graph.File, error) {
	result, err := i.Reflect(src)
	if err != nil {
		var parseErr *reflection.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = filename
		}
		return nil, err
	}
	return graph.NewFile(filename, src, result)
}

// InspectPackage inspects the PHP files of a directory, subdirectories are not visited
func (i *Inspector) InspectPackage(packagePath string) (*graph.Package, error) {
	absPath, err := filepath.Abs(packagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	entries, err := os.ReadDir(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory: %w", err)
	}

	pkg := &graph.Package{
		Name: filepath.Base(absPath),
		Path: absPath,
	}
	for _, entry := range entries {
		if entry.IsDir() || !i.IsSource(entry.Name()) {
			continue
		}
		filePath := filepath.Join(absPath, entry.Name())
		file, err := i.InspectFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("error processing %s: %w", filePath, err)
		}
		pkg.AddFile(file)
	}

	if len(pkg.FileSet) == 0 {
		return nil, fmt.Errorf("no PHP files found in package: %s", packagePath)
	}
	return pkg, nil
}

// InspectPackages inspects every directory below rootPath holding PHP files
func (i *Inspector) InspectPackages(rootPath string) ([]*graph.Package, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	var packages []*graph.Package
	err = filepath.Walk(absPath, func(aPath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() {
			return nil
		}
		if aPath != absPath && skipDirectory(fileInfo.Name()) {
			return filepath.SkipDir
		}
		var exclusion []string
		if i.config.SkipTests {
			exclusion = testSuffixes
		}
		hasSources, err := repository.HasFileWithSuffixes(aPath, i.config.Extensions, exclusion)
		if err != nil {
			return err
		}
		if hasSources {
			pkg, err := i.InspectPackage(aPath)
			if err != nil {
				return fmt.Errorf("error inspecting package in %s: %w", aPath, err)
			}
			packages = append(packages, pkg)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking package directories: %w", err)
	}
	return packages, nil
}

// InspectProject inspects the project containing location
func (i *Inspector) InspectProject(location string) (*graph.Project, error) {
	info, err := repository.New().DetectProject(location)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project for %s: %w", location, err)
	}
	project := &graph.Project{
		Name:     info.Name,
		Type:     info.Type,
		RootPath: info.RootPath,
	}
	if i.config.RecursivePackages {
		packages, err := i.InspectPackages(info.RootPath)
		if err != nil {
			return nil, err
		}
		for _, pkg := range packages {
			project.AddPackage(pkg)
		}
	} else {
		pkg, err := i.InspectPackage(info.RootPath)
		if err != nil {
			return nil, err
		}
		project.AddPackage(pkg)
	}
	project.Init()
	return project, nil
}

// IsSource reports whether the file name has a configured extension and is not an excluded test
func (i *Inspector) IsSource(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	matched := false
	for _, candidate := range i.config.Extensions {
		if strings.EqualFold(candidate, ext) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	if i.config.SkipTests {
		for _, suffix := range testSuffixes {
			if strings.HasSuffix(name, suffix) {
				return false
			}
		}
	}
	return true
}

var testSuffixes = []string{"Test.php", "TestCase.php"}

func skipDirectory(name string) bool {
	switch name {
	case "vendor", "node_modules", ".git", "cache":
		return true
	}
	return false
}
