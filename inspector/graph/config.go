package graph

// Config controls which files are inspected and how declarations are named
type Config struct {
	SkipTests         bool     `yaml:"skipTests"`
	RecursivePackages bool     `yaml:"recursivePackages"`
	Strategy          string   `yaml:"strategy"` // lexical or resolved
	Extensions        []string `yaml:"extensions"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		SkipTests:         false,
		RecursivePackages: true,
		Strategy:          "lexical",
		Extensions:        []string{".php", ".phtml", ".inc"},
	}
}
