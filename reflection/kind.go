package reflection

import "strings"

// Kind represents a category of top-level declaration
type Kind int

const (
	Class Kind = iota
	Trait
	Interface
	Enum
	Function
	Constant
)

var kindKeywords = [...]string{
	Class:     "class",
	Trait:     "trait",
	Interface: "interface",
	Enum:      "enum",
	Function:  "function",
	Constant:  "const",
}

var kindNames = [...]string{
	Class:     "Class",
	Trait:     "Trait",
	Interface: "Interface",
	Enum:      "Enum",
	Function:  "Function",
	Constant:  "Constant",
}

// Kinds returns all declaration kinds in canonical order
func Kinds() []Kind {
	return []Kind{Class, Trait, Interface, Enum, Function, Constant}
}

// KindFromKeyword returns the kind introduced by the given keyword, letter case is ignored
func KindFromKeyword(keyword string) (Kind, bool) {
	keyword = strings.TrimSpace(keyword)
	for kind, candidate := range kindKeywords {
		if strings.EqualFold(candidate, keyword) {
			return Kind(kind), true
		}
	}
	return 0, false
}

// Keyword returns the lower case keyword introducing the kind
func (k Kind) Keyword() string {
	if !k.valid() {
		return ""
	}
	return kindKeywords[k]
}

// IsClassLike reports whether the kind declares a class-like type
func (k Kind) IsClassLike() bool {
	return k == Class || k == Trait || k == Interface || k == Enum
}

func (k Kind) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= Class && k <= Constant
}
