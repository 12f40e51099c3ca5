package reflection

import "strings"

// Separator separates namespace segments in a fully qualified name
const Separator = `\`

// Name represents a namespace prefix or a fully qualified name as ordered segments.
// An empty Name denotes the global namespace.
type Name []string

// ParseName splits a written name on the namespace separator, a leading separator is ignored
func ParseName(text string) Name {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, Separator)
	if text == "" {
		return nil
	}
	parts := strings.Split(text, Separator)
	result := make(Name, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// Concat returns prefix followed by local, neither argument is modified
func Concat(prefix Name, local string) Name {
	result := make(Name, 0, len(prefix)+1)
	result = append(result, prefix...)
	return append(result, local)
}

// IsGlobal reports whether the name denotes the global namespace
func (n Name) IsGlobal() bool {
	return len(n) == 0
}

// Local returns the last segment
func (n Name) Local() string {
	if len(n) == 0 {
		return ""
	}
	return n[len(n)-1]
}

// Namespace returns all segments but the last one
func (n Name) Namespace() Name {
	if len(n) < 2 {
		return nil
	}
	return n[:len(n)-1]
}

// Equal compares segments case-sensitively
func (n Name) Equal(other Name) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if n[i] != other[i] {
			return false
		}
	}
	return true
}

func (n Name) String() string {
	return strings.Join(n, Separator)
}
