package reflection

// Result holds the fully qualified names declared by one source, per kind in
// order of appearance. A Result is never modified once returned.
type Result struct {
	names [len(kindKeywords)][]string
}

// ClassNames returns the declared class names
func (r *Result) ClassNames() []string { return r.Names(Class) }

// TraitNames returns the declared trait names
func (r *Result) TraitNames() []string { return r.Names(Trait) }

// InterfaceNames returns the declared interface names
func (r *Result) InterfaceNames() []string { return r.Names(Interface) }

// EnumNames returns the declared enum names
func (r *Result) EnumNames() []string { return r.Names(Enum) }

// FunctionNames returns the declared function names
func (r *Result) FunctionNames() []string { return r.Names(Function) }

// ConstantNames returns the declared constant names
func (r *Result) ConstantNames() []string { return r.Names(Constant) }

// Names returns a copy of the names declared for the given kind
func (r *Result) Names(kind Kind) []string {
	if r == nil || !kind.valid() {
		return []string{}
	}
	result := make([]string, len(r.names[kind]))
	copy(result, r.names[kind])
	return result
}

// Len returns the number of names across all kinds
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, names := range r.names {
		count += len(names)
	}
	return count
}

// IsEmpty reports whether no declaration was found
func (r *Result) IsEmpty() bool {
	return r.Len() == 0
}

// collector accumulates names before they are frozen into a Result
type collector struct {
	names [len(kindKeywords)][]string
}

func (c *collector) add(kind Kind, name Name) {
	c.names[kind] = append(c.names[kind], name.String())
}

func (c *collector) result() *Result {
	ret := &Result{}
	for kind, names := range c.names {
		ret.names[kind] = append(make([]string, 0, len(names)), names...)
	}
	return ret
}
