package graph

import (
	"path/filepath"
)

// Project represents a code project with multiple packages
type Project struct {
	Name     string     `yaml:"name" json:"name"`
	Type     string     `yaml:"type" json:"type"`
	RootPath string     `yaml:"rootPath" json:"rootPath"`
	Packages []*Package `yaml:"packages" json:"packages"`

	packageMap map[string]int //position
}

// AddPackage adds a package to the project
func (p *Project) AddPackage(pkg *Package) {
	if p.packageMap == nil {
		p.packageMap = make(map[string]int)
	}
	p.Packages = append(p.Packages, pkg)
	p.packageMap[pkg.Path] = len(p.Packages) - 1
}

// GetPackage retrieves a package by path
func (p *Project) GetPackage(path string) *Package {
	if idx, ok := p.packageMap[path]; ok && idx < len(p.Packages) {
		return p.Packages[idx]
	}
	return nil
}

// Files returns all files of all packages
func (p *Project) Files() []*File {
	var result []*File
	for _, pkg := range p.Packages {
		result = append(result, pkg.FileSet...)
	}
	return result
}

// Init makes package and file paths relative to the project root
func (p *Project) Init() {
	if p.RootPath == "" {
		return
	}
	p.packageMap = make(map[string]int)
	for i, pkg := range p.Packages {
		if relPath, err := filepath.Rel(p.RootPath, pkg.Path); err == nil {
			pkg.Path = filepath.ToSlash(relPath)
		}
		p.packageMap[pkg.Path] = i
		for _, file := range pkg.FileSet {
			if file.Path == "" {
				continue
			}
			if relPath, err := filepath.Rel(p.RootPath, file.Path); err == nil {
				file.Name = filepath.Base(file.Path)
				file.Path = filepath.ToSlash(relPath)
			}
		}
	}
}
