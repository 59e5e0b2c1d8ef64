package mapping

import (
	"slices"
)

// AllowedPropertySet is the deduplicated set of property paths a consumer
// may receive. It has no mutators and is safe to share between goroutines.
type AllowedPropertySet struct {
	paths []PropertyPath
}

// NewAllowedPropertySet builds a set from the given paths, dropping duplicates.
func NewAllowedPropertySet(paths ...PropertyPath) AllowedPropertySet {
	sorted := slices.Clone(paths)
	slices.SortFunc(sorted, PropertyPath.Compare)

	return AllowedPropertySet{paths: slices.Compact(sorted)}
}

// Len returns the number of distinct paths.
func (s AllowedPropertySet) Len() int {
	return len(s.paths)
}

// IsEmpty returns true if no path is allowed.
func (s AllowedPropertySet) IsEmpty() bool {
	return len(s.paths) == 0
}

// Contains returns true if p is a member of the set.
func (s AllowedPropertySet) Contains(p PropertyPath) bool {
	_, found := slices.BinarySearchFunc(s.paths, p, PropertyPath.Compare)
	return found
}

// Paths returns the members in a stable order. The returned slice is a copy.
func (s AllowedPropertySet) Paths() []PropertyPath {
	return slices.Clone(s.paths)
}

// Names returns the distinct property names referenced by the set, sorted.
func (s AllowedPropertySet) Names() []string {
	names := make([]string, 0, len(s.paths))
	for _, p := range s.paths {
		names = append(names, p.Name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// Strings returns the canonical path strings of all members.
func (s AllowedPropertySet) Strings() []string {
	out := make([]string, 0, len(s.paths))
	for _, p := range s.paths {
		out = append(out, p.String())
	}

	return out
}
