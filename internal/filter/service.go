// Package filter redacts records in message envelopes down to the
// properties a jurisdiction is allowed to receive.
//
// A Service is built once from an allow-list and a mapping table and is
// then safe for concurrent use: Filter only reads the immutable allowed set
// and allocates fresh output.
package filter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vrfilter/internal/diagnostic"
	"vrfilter/internal/mapping"
	"vrfilter/internal/message"
	"vrfilter/internal/projection"
	"vrfilter/internal/record"
)

// Observer receives the outcome of every Filter call.
type Observer interface {
	ObserveFiltered(kind message.Kind, diags diagnostic.Diagnostics, elapsed time.Duration)
	ObservePassThrough(kind message.Kind)
}

type options struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures a Service.
type Option func(*options)

// WithLogger sets the logger used for load reports and projection diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver sets an Observer notified of every Filter call.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// Service filters envelopes carrying records of type R.
type Service[R any] struct {
	schema   *record.Schema[R]
	allowed  mapping.AllowedPropertySet
	logger   *slog.Logger
	observer Observer
}

// New loads the allow-list and mapping table and builds a Service.
// Load failures are returned as *mapping.ConfigError.
func New[R any](schema *record.Schema[R], allowList, table mapping.Source, opts ...Option) (*Service[R], error) {
	set, report, err := mapping.LoadWithReport(allowList, table)
	if err != nil {
		return nil, fmt.Errorf("load filter configuration: %w", err)
	}

	s := NewFromSet(schema, set, opts...)

	if len(report.Unmapped) > 0 {
		s.logger.Debug("allow-list codes without mapping", "codes", report.Unmapped)
	}

	if len(report.SentinelOnly) > 0 {
		s.logger.Debug("allow-list codes without record property", "codes", report.SentinelOnly)
	}

	s.logger.Info("filter configuration loaded",
		"allowed_codes", len(report.Allowed),
		"allowed_paths", set.Len(),
	)

	return s, nil
}

// NewFromSet builds a Service from an already computed allowed set.
func NewFromSet[R any](schema *record.Schema[R], set mapping.AllowedPropertySet, opts ...Option) *Service[R] {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return &Service[R]{
		schema:   schema,
		allowed:  set,
		logger:   o.logger,
		observer: o.observer,
	}
}

// AllowedProperties returns the allowed property set.
func (s *Service[R]) AllowedProperties() mapping.AllowedPropertySet {
	return s.allowed
}

// Filter returns env with its record projected onto the allowed properties.
// Envelopes whose kind carries no record are returned unchanged.
func (s *Service[R]) Filter(env message.Envelope[R]) message.Envelope[R] {
	out, _ := s.FilterWithDiagnostics(env)
	return out
}

// FilterWithDiagnostics is Filter that also returns the projection findings.
func (s *Service[R]) FilterWithDiagnostics(env message.Envelope[R]) (message.Envelope[R], diagnostic.Diagnostics) {
	if !env.Kind.CarriesRecord() {
		if s.observer != nil {
			s.observer.ObservePassThrough(env.Kind)
		}

		return env, diagnostic.Diagnostics{}
	}

	start := time.Now()
	projected, diags := projection.Project(s.schema, env.Record, s.allowed)
	elapsed := time.Since(start)

	diags.Log(context.Background(), s.logger, "message_id", env.ID, "kind", env.Kind.String())

	if s.observer != nil {
		s.observer.ObserveFiltered(env.Kind, diags, elapsed)
	}

	return env.WithRecord(projected), diags
}
