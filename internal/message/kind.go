package message

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind tags the payload of an Envelope.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindSubmission
	KindUpdate
	KindVoid
	KindAlias
	KindAcknowledgement
	KindExtractionError
	KindStatus

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = map[Kind]string{
	KindSubmission:      "submission",
	KindUpdate:          "update",
	KindVoid:            "void",
	KindAlias:           "alias",
	KindAcknowledgement: "acknowledgement",
	KindExtractionError: "extraction_error",
	KindStatus:          "status",
}

// CarriesRecord returns true for kinds whose envelope embeds a record.
//
// Every defined kind is listed; a new kind must be added here explicitly.
func (k Kind) CarriesRecord() bool {
	switch k {
	case KindSubmission, KindUpdate:
		return true
	case KindVoid, KindAlias, KindAcknowledgement, KindExtractionError, KindStatus:
		return false
	default:
		return false
	}
}

// Valid returns true if k is a defined kind.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses the wire name of a kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown message kind %q", s)
}

// MarshalText encodes the kind by its wire name.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("invalid message kind %d", int(k))
	}

	return []byte(name), nil
}

// UnmarshalText decodes a wire name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}
