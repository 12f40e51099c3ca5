package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/viant/afs"
)

const (
	composerFile = "composer.json"
	gitDir       = ".git"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		markers: []string{
			composerFile, // PHP projects
			gitDir,       // Generic VCS marker
		},
		fs: afs.New(),
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	// If it's a file, start from its parent directory
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, marker := d.findProjectRoot(startDir)
	info := &Project{
		Type:     TypeUnknown,
		RootPath: startDir,
		Name:     filepath.Base(startDir),
	}
	if rootPath != "" {
		info.RootPath = rootPath
		info.Type = determineProjectType(marker)
		info.Name = d.extractProjectName(rootPath, marker)
	}

	relPath, err := filepath.Rel(info.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	info.RelativePath = filepath.ToSlash(relPath)
	return info, nil
}

// findProjectRoot searches up from the start directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, marker
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// extractProjectName reads the composer package name, falling back to the directory name
func (d *Detector) extractProjectName(rootPath string, marker string) string {
	if marker == composerFile {
		if name := d.extractComposerName(filepath.Join(rootPath, composerFile)); name != "" {
			return name
		}
	}
	return filepath.Base(rootPath)
}

func (d *Detector) extractComposerName(composerPath string) string {
	content, err := d.fs.DownloadWithURL(context.Background(), composerPath)
	if err != nil || len(content) == 0 {
		return ""
	}
	manifest := struct {
		Name string `json:"name"`
	}{}
	if err = json.Unmarshal(content, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case composerFile:
		return TypePHP
	case gitDir:
		return TypeGit
	default:
		return TypeUnknown
	}
}
