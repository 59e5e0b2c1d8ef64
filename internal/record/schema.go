package record

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

//go:generate go tool stringer -type=Shape -trimprefix=Shape -output=shape_string.go

// Shape is the kind of value a record property holds.
type Shape int

const (
	_ Shape = iota // zero value marks an unset Property

	ShapeScalar
	ShapeStringMap
	ShapeTuples

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// IsCollection returns true for shapes that can be copied as a whole collection.
func (s Shape) IsCollection() bool {
	switch s {
	case ShapeStringMap, ShapeTuples:
		return true
	default:
		return false
	}
}

// Property is a named, typed accessor into a record of type R.
// The zero Property is invalid; build one with Scalar, StringMap or Tuples.
type Property[R any] struct {
	name  string
	shape Shape

	getScalar func(*R) string
	setScalar func(*R, string)

	getMap func(*R) map[string]string
	setMap func(*R, map[string]string)

	size      func(*R) int
	cloneInto func(dst, src *R)
}

// Scalar declares a string-valued property.
func Scalar[R any](name string, get func(*R) string, set func(*R, string)) Property[R] {
	return Property[R]{
		name:      name,
		shape:     ShapeScalar,
		getScalar: get,
		setScalar: set,
	}
}

// StringMap declares a property holding a map of string to string.
func StringMap[R any](name string, get func(*R) map[string]string, set func(*R, map[string]string)) Property[R] {
	return Property[R]{
		name:   name,
		shape:  ShapeStringMap,
		getMap: get,
		setMap: set,
		size: func(r *R) int {
			return len(get(r))
		},
		cloneInto: func(dst, src *R) {
			set(dst, maps.Clone(get(src)))
		},
	}
}

// Tuples declares a property holding a slice of structured tuples.
// T must be a value type: copies are made with slices.Clone.
func Tuples[R, T any](name string, get func(*R) []T, set func(*R, []T)) Property[R] {
	return Property[R]{
		name:  name,
		shape: ShapeTuples,
		size: func(r *R) int {
			return len(get(r))
		},
		cloneInto: func(dst, src *R) {
			set(dst, slices.Clone(get(src)))
		},
	}
}

// Name returns the property name used by mapping paths.
func (p Property[R]) Name() string {
	return p.name
}

// Shape returns the shape of the property value.
func (p Property[R]) Shape() Shape {
	return p.shape
}

// Scalar reads a scalar property. ok is false for other shapes.
func (p Property[R]) Scalar(r *R) (value string, ok bool) {
	if p.shape != ShapeScalar {
		return "", false
	}

	return p.getScalar(r), true
}

// SetScalar writes a scalar property. It returns false for other shapes.
func (p Property[R]) SetScalar(r *R, value string) bool {
	if p.shape != ShapeScalar {
		return false
	}

	p.setScalar(r, value)

	return true
}

// Lookup reads one key of a string map property.
// found is false when the map is nil, lacks key, or p is not a string map.
func (p Property[R]) Lookup(r *R, key string) (value string, found bool) {
	if p.shape != ShapeStringMap {
		return "", false
	}

	value, found = p.getMap(r)[key]

	return value, found
}

// MergeKey sets one key of a string map property on r, copy-on-write:
// the current map is cloned, updated and installed, so no map value is
// ever shared with another record.
func (p Property[R]) MergeKey(r *R, key, value string) bool {
	if p.shape != ShapeStringMap {
		return false
	}

	next := maps.Clone(p.getMap(r))
	if next == nil {
		next = make(map[string]string, 1)
	}

	next[key] = value
	p.setMap(r, next)

	return true
}

// Len returns the number of entries of a collection property, 0 otherwise.
func (p Property[R]) Len(r *R) int {
	if !p.shape.IsCollection() {
		return 0
	}

	return p.size(r)
}

// CopyCollection replaces dst's collection with a structural copy of src's.
// It returns false for scalar properties.
func (p Property[R]) CopyCollection(dst, src *R) bool {
	if !p.shape.IsCollection() {
		return false
	}

	p.cloneInto(dst, src)

	return true
}

// Schema is the registry of named properties of record type R.
// It is built once and read-only afterwards.
type Schema[R any] struct {
	props map[string]Property[R]
	names []string
}

// ErrDuplicateProperty is returned by NewSchema for a repeated property name.
var ErrDuplicateProperty = errors.New("duplicate property")

// NewSchema builds a schema from property declarations.
func NewSchema[R any](props ...Property[R]) (*Schema[R], error) {
	s := &Schema[R]{props: make(map[string]Property[R], len(props))}

	for i, p := range props {
		if p.name == "" || p.shape == 0 {
			return nil, fmt.Errorf("property %d: invalid declaration", i)
		}

		if _, ok := s.props[p.name]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateProperty, p.name)
		}

		s.props[p.name] = p
		s.names = append(s.names, p.name)
	}

	slices.Sort(s.names)

	return s, nil
}

// MustSchema is NewSchema that panics on an invalid declaration.
func MustSchema[R any](props ...Property[R]) *Schema[R] {
	s, err := NewSchema(props...)
	if err != nil {
		panic(fmt.Sprintf("record: %v", err))
	}

	return s
}

// Property looks up a property by name. Names are case-sensitive.
func (s *Schema[R]) Property(name string) (Property[R], bool) {
	p, ok := s.props[name]
	return p, ok
}

// Names returns the declared property names, sorted.
func (s *Schema[R]) Names() []string {
	return slices.Clone(s.names)
}

// New returns a zero-valued record.
func (s *Schema[R]) New() *R {
	return new(R)
}
