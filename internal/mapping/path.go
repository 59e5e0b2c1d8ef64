package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPath is returned by ValidatePath for an empty path string.
var ErrEmptyPath = errors.New("empty path")

// Resolve parses a property path string into a PropertyPath.
// Supports: "Name", "Name.Key", "Name[]".
//
// A path containing a dot is always a nested key, split on the first dot;
// any further dots belong to the key. Resolve never fails: callers reject
// empty strings with ValidatePath first.
func Resolve(path string) PropertyPath {
	if name, key, ok := strings.Cut(path, "."); ok {
		return NestedKey(name, key)
	}

	if name, ok := strings.CutSuffix(path, collectionMarker); ok {
		return WholeCollection(name)
	}

	return Scalar(path)
}

// ValidatePath reports whether a path string can be resolved.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}

	return nil
}

// ResolvePaths resolves every non-sentinel path of a mapping entry.
func ResolvePaths(paths StringOrArray) ([]PropertyPath, error) {
	result := make([]PropertyPath, 0, len(paths))

	for _, p := range paths {
		if p == Sentinel {
			continue
		}

		if err := ValidatePath(p); err != nil {
			return nil, err
		}

		result = append(result, Resolve(p))
	}

	return result, nil
}

// MustResolveAll resolves a fixed list of paths, panicking on an invalid one.
// Intended for tests and static tables.
func MustResolveAll(paths ...string) []PropertyPath {
	result, err := ResolvePaths(paths)
	if err != nil {
		panic(fmt.Sprintf("mapping: %v", err))
	}

	return result
}
