// Package projection copies the permitted parts of a record into a fresh one.
package projection

import (
	"fmt"
	"strings"

	"vrfilter/internal/diagnostic"
	"vrfilter/internal/mapping"
	"vrfilter/internal/match"
	"vrfilter/internal/record"
)

// maxSuggestions bounds the property names suggested for an unknown one.
const maxSuggestions = 3

// Project returns a new zero-valued record populated only at the paths in
// allowed, with values read from src. src is never written to, and no map
// or slice of src is shared with the result.
//
// Paths that cannot be applied to src are skipped and reported as warnings;
// they never stop the remaining paths from being copied.
func Project[R any](schema *record.Schema[R], src *R, allowed mapping.AllowedPropertySet) (*R, diagnostic.Diagnostics) {
	dst := schema.New()

	var diags diagnostic.Diagnostics
	if src == nil {
		return dst, diags
	}

	for _, p := range allowed.Paths() {
		prop, ok := schema.Property(p.Name)
		if !ok {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        diagnostic.CodePropertyNotFound,
				Message:     fmt.Sprintf("record has no property %q", p.Name),
				Path:        p.String(),
				Suggestions: match.Suggest(p.Name, schema.Names(), maxSuggestions),
			})

			continue
		}

		switch p.Kind {
		case mapping.PathScalar:
			projectScalar(prop, dst, src, p, &diags)
		case mapping.PathNestedKey:
			projectNestedKey(prop, dst, src, p, &diags)
		case mapping.PathWholeCollection:
			projectCollection(prop, dst, src, p, &diags)
		default:
			diags.AddError(diagnostic.CodePropertyKindMismatch,
				fmt.Sprintf("unsupported path kind %s", p.Kind), p.String())
		}
	}

	return dst, diags
}

func projectScalar[R any](prop record.Property[R], dst, src *R, p mapping.PropertyPath, diags *diagnostic.Diagnostics) {
	value, ok := prop.Scalar(src)
	if !ok {
		kindMismatch(prop, p, diags)
		return
	}

	if strings.TrimSpace(value) == "" {
		return
	}

	prop.SetScalar(dst, value)
}

func projectNestedKey[R any](prop record.Property[R], dst, src *R, p mapping.PropertyPath, diags *diagnostic.Diagnostics) {
	if prop.Shape() != record.ShapeStringMap {
		kindMismatch(prop, p, diags)
		return
	}

	value, found := prop.Lookup(src, p.Key)
	if !found {
		diags.AddWarning(diagnostic.CodeSubkeyNotFound,
			fmt.Sprintf("property %q has no key %q", p.Name, p.Key), p.String())

		return
	}

	prop.MergeKey(dst, p.Key, value)
}

func projectCollection[R any](prop record.Property[R], dst, src *R, p mapping.PropertyPath, diags *diagnostic.Diagnostics) {
	if !prop.Shape().IsCollection() {
		kindMismatch(prop, p, diags)
		return
	}

	if prop.Len(src) == 0 {
		return
	}

	prop.CopyCollection(dst, src)
}

func kindMismatch[R any](prop record.Property[R], p mapping.PropertyPath, diags *diagnostic.Diagnostics) {
	diags.AddWarning(diagnostic.CodePropertyKindMismatch,
		fmt.Sprintf("%s path cannot address %s property %q", p.Kind, prop.Shape(), p.Name), p.String())
}
