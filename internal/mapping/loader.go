package mapping

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	sourceAllowList    = "allow-list"
	sourceMappingTable = "mapping table"
)

// Source is one configuration input: either inline text or a file path.
type Source struct {
	Value    string
	FromFile bool
}

// Text returns a Source holding inline YAML or JSON text.
func Text(s string) Source {
	return Source{Value: s}
}

// File returns a Source read from the file at path.
func File(path string) Source {
	return Source{Value: path, FromFile: true}
}

func (s Source) origin() string {
	if s.FromFile {
		return s.Value
	}

	return ""
}

func (s Source) read(name string) ([]byte, error) {
	if !s.FromFile {
		return []byte(s.Value), nil
	}

	data, err := os.ReadFile(s.Value)
	if err != nil {
		return nil, &ConfigError{Source: name, Origin: s.Value, Err: fmt.Errorf("failed to read: %w", err)}
	}

	return data, nil
}

// LoadReport describes how the allow-list was resolved against the table.
type LoadReport struct {
	// Allowed lists the normalized allow-list codes, sorted.
	Allowed []FieldCode
	// Unmapped lists allowed codes with no table entry.
	Unmapped []FieldCode
	// SentinelOnly lists allowed codes whose only paths are the Sentinel.
	SentinelOnly []FieldCode
	// Table is the subset of the mapping table reachable from the allow-list.
	Table MappingTable
}

// Load reads both configuration inputs and computes the allowed property set.
func Load(allowList, table Source) (AllowedPropertySet, error) {
	set, _, err := LoadWithReport(allowList, table)
	return set, err
}

// LoadWithReport is Load that also returns a LoadReport.
func LoadWithReport(allowList, table Source) (AllowedPropertySet, *LoadReport, error) {
	allowData, err := allowList.read(sourceAllowList)
	if err != nil {
		return AllowedPropertySet{}, nil, err
	}

	codes, err := ParseAllowList(allowData)
	if err != nil {
		return AllowedPropertySet{}, nil, withOrigin(err, allowList)
	}

	tableData, err := table.read(sourceMappingTable)
	if err != nil {
		return AllowedPropertySet{}, nil, err
	}

	mt, err := ParseMappingTable(tableData)
	if err != nil {
		return AllowedPropertySet{}, nil, withOrigin(err, table)
	}

	set, report, err := Build(codes, mt)
	if err != nil {
		return AllowedPropertySet{}, nil, withOrigin(err, table)
	}

	return set, report, nil
}

// ErrEmptyDocument is wrapped by the ConfigError for a blank, comment-only
// or null configuration document.
var ErrEmptyDocument = errors.New("empty document")

// ParseAllowList parses a YAML or JSON sequence of field codes.
// Codes are normalized and deduplicated; the result is sorted.
// An empty allow-list must be written as [].
func ParseAllowList(data []byte) ([]FieldCode, error) {
	var raw []string

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, &ConfigError{Source: sourceAllowList, Err: fmt.Errorf("failed to parse: %w", err)}
	}

	if raw == nil {
		return nil, &ConfigError{Source: sourceAllowList, Err: ErrEmptyDocument}
	}

	codes := make([]FieldCode, 0, len(raw))

	for i, c := range raw {
		code := NormalizeCode(c)
		if code == "" {
			return nil, &ConfigError{Source: sourceAllowList, Err: fmt.Errorf("entry %d: empty field code", i)}
		}

		codes = append(codes, code)
	}

	slices.Sort(codes)

	return slices.Compact(codes), nil
}

// ParseMappingTable parses a YAML or JSON map of field code to path list.
// Keys are normalized; keys colliding after normalization are merged.
func ParseMappingTable(data []byte) (MappingTable, error) {
	var raw map[string]StringOrArray

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, &ConfigError{Source: sourceMappingTable, Err: fmt.Errorf("failed to parse: %w", err)}
	}

	if raw == nil {
		return nil, &ConfigError{Source: sourceMappingTable, Err: ErrEmptyDocument}
	}

	table := make(MappingTable, len(raw))

	// Sorted keys keep merged entries in a stable order.
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		code := NormalizeCode(key)
		if code == "" {
			return nil, &ConfigError{Source: sourceMappingTable, Err: errors.New("empty field code")}
		}

		if raw[key] == nil {
			return nil, &ConfigError{Source: sourceMappingTable, Err: fmt.Errorf("code %s: null path list", code)}
		}

		for _, p := range raw[key] {
			if err := ValidatePath(p); err != nil {
				return nil, &ConfigError{Source: sourceMappingTable, Err: fmt.Errorf("code %s: %w", code, err)}
			}
		}

		table[code] = append(table[code], raw[key]...)
	}

	return table, nil
}

// Build computes the allowed property set for the given codes.
// Codes missing from the table contribute nothing.
func Build(codes []FieldCode, table MappingTable) (AllowedPropertySet, *LoadReport, error) {
	report := &LoadReport{
		Allowed: slices.Clone(codes),
		Table:   MappingTable{},
	}

	var paths []PropertyPath

	for _, code := range codes {
		entry, ok := table[code]
		if !ok {
			report.Unmapped = append(report.Unmapped, code)
			continue
		}

		resolved, err := ResolvePaths(entry)
		if err != nil {
			return AllowedPropertySet{}, nil, &ConfigError{Source: sourceMappingTable, Err: fmt.Errorf("code %s: %w", code, err)}
		}

		if entry.IsSentinelOnly() {
			report.SentinelOnly = append(report.SentinelOnly, code)
		}

		report.Table[code] = entry
		paths = append(paths, resolved...)
	}

	return NewAllowedPropertySet(paths...), report, nil
}

// Marshal serializes a mapping table to YAML.
func Marshal(table MappingTable) ([]byte, error) {
	return yaml.Marshal(table)
}

func withOrigin(err error, src Source) error {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Origin == "" {
		cfgErr.Origin = src.origin()
	}

	return err
}
