// Package message defines the envelope that routes a record between
// jurisdictions.
package message

import (
	"errors"
	"fmt"
	"maps"

	"github.com/google/uuid"
)

// ErrMissingRecord is returned by Validate for a record-bearing envelope
// without a record.
var ErrMissingRecord = errors.New("envelope carries no record")

// Envelope wraps one message. Submission and update envelopes carry a
// Record; other kinds carry at most a small string Payload.
type Envelope[R any] struct {
	Kind        Kind              `json:"kind"`
	ID          string            `json:"id"`
	Source      string            `json:"source,omitempty"`
	Destination string            `json:"destination,omitempty"`
	Record      *R                `json:"record,omitempty"`
	Payload     map[string]string `json:"payload,omitempty"`
}

// NewEnvelope returns an envelope of the given kind with a fresh message ID.
func NewEnvelope[R any](kind Kind, rec *R) Envelope[R] {
	return Envelope[R]{
		Kind:   kind,
		ID:     uuid.NewString(),
		Record: rec,
	}
}

// WithRecord returns a copy of e with the same kind, identity and routing
// but rec as its record. The payload map is copied.
func (e Envelope[R]) WithRecord(rec *R) Envelope[R] {
	e.Record = rec
	e.Payload = maps.Clone(e.Payload)

	return e
}

// Validate checks that the envelope is well formed.
func (e Envelope[R]) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("invalid message kind %d", int(e.Kind))
	}

	if e.Kind.CarriesRecord() && e.Record == nil {
		return fmt.Errorf("%s %s: %w", e.Kind, e.ID, ErrMissingRecord)
	}

	return nil
}
