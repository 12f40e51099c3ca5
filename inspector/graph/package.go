package graph

// Package represents a directory of source files
type Package struct {
	Name    string  `yaml:"name" json:"name"`
	Path    string  `yaml:"path" json:"path"`
	FileSet []*File `yaml:"files" json:"files"`

	fileMap map[string]int
}

// AddFile adds a file to the package
func (p *Package) AddFile(file *File) {
	p.FileSet = append(p.FileSet, file)
	if p.fileMap == nil {
		p.fileMap = make(map[string]int)
	}
	p.fileMap[file.Name] = len(p.FileSet) - 1
}

// LookupFile retrieves a file by name
func (p *Package) LookupFile(name string) *File {
	if idx, ok := p.fileMap[name]; ok && idx < len(p.FileSet) {
		return p.FileSet[idx]
	}
	return nil
}

// LookupType finds the file declaring the given type
func (p *Package) LookupType(name string) (*File, *Type) {
	for _, file := range p.FileSet {
		if typ := file.LookupType(name); typ != nil {
			return file, typ
		}
	}
	return nil, nil
}
