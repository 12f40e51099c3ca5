package repository

// Project represents information about a detected project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // Type of project (php, git or unknown)
	Name         string // Name of the project (extracted from composer.json)
	RelativePath string // Path from project root to the specified file
}

// Project types reported by the Detector
const (
	TypePHP     = "php"
	TypeGit     = "git"
	TypeUnknown = "unknown"
)
