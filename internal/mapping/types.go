package mapping

import (
	"cmp"
	"strings"
)

//go:generate go tool stringer -type=PathKind -trimprefix=Path -output=pathkind_string.go

// PathKind tells the projector how a property path addresses a record property.
type PathKind int

const (
	_ PathKind = iota // zero value is never produced by Resolve

	PathScalar
	PathNestedKey
	PathWholeCollection

	// PathKindTotal is a constant that represents the total number of kinds defined
	PathKindTotal = int(iota)
)

// Sentinel marks a field code that has no corresponding record property.
const Sentinel = "NOTFOUND"

// collectionMarker is the suffix that selects a whole collection-valued property.
const collectionMarker = "[]"

// FieldCode identifies one column of the legacy fixed-field format.
// Codes are compared after NormalizeCode.
type FieldCode string

// NormalizeCode trims surrounding whitespace and upper-cases a field code.
func NormalizeCode(code string) FieldCode {
	return FieldCode(strings.ToUpper(strings.TrimSpace(code)))
}

// PropertyPath is a resolved property path.
//
// Name is the record property name. Key is only set for PathNestedKey and
// holds the sub-key of the string map property.
type PropertyPath struct {
	Kind PathKind
	Name string
	Key  string
}

// Scalar returns a scalar property path.
func Scalar(name string) PropertyPath {
	return PropertyPath{Kind: PathScalar, Name: name}
}

// NestedKey returns a path selecting one key of a string map property.
func NestedKey(name, key string) PropertyPath {
	return PropertyPath{Kind: PathNestedKey, Name: name, Key: key}
}

// WholeCollection returns a path selecting an entire collection-valued property.
func WholeCollection(name string) PropertyPath {
	return PropertyPath{Kind: PathWholeCollection, Name: name}
}

// String renders the path in the form accepted by Resolve.
func (p PropertyPath) String() string {
	switch p.Kind {
	case PathNestedKey:
		return p.Name + "." + p.Key
	case PathWholeCollection:
		return p.Name + collectionMarker
	default:
		return p.Name
	}
}

// Compare orders paths by their string form, then by kind.
func (p PropertyPath) Compare(other PropertyPath) int {
	return cmp.Or(
		cmp.Compare(p.String(), other.String()),
		cmp.Compare(p.Kind, other.Kind),
	)
}

// MappingTable maps a field code to the property paths it populates.
type MappingTable map[FieldCode]StringOrArray

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
// Used for mapping table values where a code maps to one or many paths.
type StringOrArray []string
