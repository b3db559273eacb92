package importmodel

import "sort"

// Set is a collection of unique import strings.
type Set map[string]struct{}

// NewSet creates a Set holding the given imports.
func NewSet(imports ...string) Set {
	set := make(Set, len(imports))
	set.Add(imports...)

	return set
}

// Add inserts imports into the set. Duplicates are ignored.
func (s Set) Add(imports ...string) {
	for _, imp := range imports {
		s[imp] = struct{}{}
	}
}

// Len returns the number of unique imports.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the imports in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for imp := range s {
		out = append(out, imp)
	}

	sort.Strings(out)

	return out
}
