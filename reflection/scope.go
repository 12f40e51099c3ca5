package reflection

// Scope tracks the namespace in effect while top-level statements are visited.
// Namespaces cannot nest, so a single current prefix is kept instead of a stack:
// entering a namespace replaces the prefix until the next namespace statement.
type Scope struct {
	current Name
}

// NewScope creates a scope positioned at the global namespace
func NewScope() *Scope {
	return &Scope{}
}

// Current returns the namespace prefix in effect
func (s *Scope) Current() Name {
	return s.current
}

// Enter replaces the current prefix, nil enters the global namespace
func (s *Scope) Enter(namespace Name) {
	s.current = namespace
}
