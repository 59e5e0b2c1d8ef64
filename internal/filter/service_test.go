package filter

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vrfilter/internal/deathrecord"
	"vrfilter/internal/diagnostic"
	"vrfilter/internal/mapping"
	"vrfilter/internal/message"
)

const table = `{
  "19": ["NOTFOUND"],
  "60": ["Race.White"],
  "61": ["Race.Asian"],
  "DOB_YR": ["DateOfBirth"],
  "COD": ["CausesOfDeath[]"],
  "BAD": ["Race.Missing"]
}`

type recordingObserver struct {
	mu       sync.Mutex
	filtered []message.Kind
	passed   []message.Kind
	warnings int
}

func (o *recordingObserver) ObserveFiltered(kind message.Kind, diags diagnostic.Diagnostics, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.filtered = append(o.filtered, kind)
	o.warnings += len(diags.Warnings)
}

func (o *recordingObserver) ObservePassThrough(kind message.Kind) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.passed = append(o.passed, kind)
}

func newService(t *testing.T, allowList string, opts ...Option) *Service[deathrecord.DeathRecord] {
	t.Helper()

	s, err := New(deathrecord.Schema, mapping.Text(allowList), mapping.Text(table), opts...)
	require.NoError(t, err)

	return s
}

func TestFilterSubmission(t *testing.T) {
	s := newService(t, `["19","60","DOB_YR","COD"]`)

	src := deathrecord.Sample()
	env := message.Envelope[deathrecord.DeathRecord]{
		Kind:        message.KindSubmission,
		ID:          "m-1",
		Source:      "MA",
		Destination: "NCHS",
		Record:      src,
	}

	got := s.Filter(env)

	assert.Equal(t, message.KindSubmission, got.Kind)
	assert.Equal(t, "m-1", got.ID)
	assert.Equal(t, "MA", got.Source)
	assert.Equal(t, "NCHS", got.Destination)
	require.NotNil(t, got.Record)
	assert.NotSame(t, src, got.Record)

	assert.Equal(t, &deathrecord.DeathRecord{
		DateOfBirth:   "1970-04-24",
		Race:          map[string]string{"White": "Y"},
		CausesOfDeath: src.CausesOfDeath,
	}, got.Record)

	assert.Equal(t, deathrecord.Sample(), src)
	assert.Same(t, src, env.Record)
}

func TestFilterUpdate(t *testing.T) {
	s := newService(t, `["dob_yr"]`)

	got := s.Filter(message.NewEnvelope(message.KindUpdate, deathrecord.Sample()))

	assert.Equal(t, message.KindUpdate, got.Kind)
	assert.Equal(t, &deathrecord.DeathRecord{DateOfBirth: "1970-04-24"}, got.Record)
}

func TestFilterPassesThroughOtherKinds(t *testing.T) {
	s := newService(t, `["DOB_YR"]`)

	for i := 1; i < message.KindTotal; i++ {
		kind := message.Kind(i)
		if kind.CarriesRecord() {
			continue
		}

		env := message.Envelope[deathrecord.DeathRecord]{
			Kind:    kind,
			ID:      "m-" + kind.String(),
			Record:  deathrecord.Sample(),
			Payload: map[string]string{"reference": "abc"},
		}

		got := s.Filter(env)
		assert.Equal(t, env, got, kind.String())
		assert.Same(t, env.Record, got.Record)
	}
}

func TestFilterEmptyAllowList(t *testing.T) {
	s := newService(t, `[]`)

	got := s.Filter(message.NewEnvelope(message.KindSubmission, deathrecord.Sample()))
	assert.Equal(t, &deathrecord.DeathRecord{}, got.Record)
}

func TestFilterNilRecord(t *testing.T) {
	s := newService(t, `["DOB_YR"]`)

	got := s.Filter(message.Envelope[deathrecord.DeathRecord]{Kind: message.KindSubmission, ID: "m"})
	assert.Equal(t, &deathrecord.DeathRecord{}, got.Record)
}

func TestFilterWithDiagnosticsLogsAndObserves(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := &recordingObserver{}

	s := newService(t, `["BAD","61","NOPE"]`, WithLogger(logger), WithObserver(obs))

	src := deathrecord.Sample()
	delete(src.Race, "Asian")

	got, diags := s.FilterWithDiagnostics(message.Envelope[deathrecord.DeathRecord]{
		Kind:   message.KindSubmission,
		ID:     "m-7",
		Record: src,
	})

	assert.Equal(t, &deathrecord.DeathRecord{}, got.Record)
	require.Len(t, diags.Warnings, 2)

	_ = s.Filter(message.Envelope[deathrecord.DeathRecord]{Kind: message.KindVoid, ID: "v-1"})

	assert.Equal(t, []message.Kind{message.KindSubmission}, obs.filtered)
	assert.Equal(t, []message.Kind{message.KindVoid}, obs.passed)
	assert.Equal(t, 2, obs.warnings)

	out := buf.String()
	assert.Contains(t, out, "allow-list codes without mapping")
	assert.Contains(t, out, "NOPE")
	assert.Contains(t, out, "code=subkey_not_found")
	assert.Contains(t, out, "message_id=m-7")
}

func TestNewConfigError(t *testing.T) {
	_, err := New(deathrecord.Schema, mapping.Text(`{"not":"a list"}`), mapping.Text(table))
	require.Error(t, err)
	require.ErrorIs(t, err, mapping.ErrInvalidConfig)

	var cfgErr *mapping.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "allow-list", cfgErr.Source)
}

func TestNewFromFiles(t *testing.T) {
	dir := t.TempDir()
	allowPath := filepath.Join(dir, "allow.yaml")
	tablePath := filepath.Join(dir, "mapping.json")

	require.NoError(t, os.WriteFile(allowPath, []byte("- DOB_YR\n- \"60\"\n"), 0o600))
	require.NoError(t, os.WriteFile(tablePath, []byte(table), 0o600))

	s, err := New(deathrecord.Schema, mapping.File(allowPath), mapping.File(tablePath))
	require.NoError(t, err)

	assert.Equal(t, []string{"DateOfBirth", "Race.White"}, s.AllowedProperties().Strings())
}

func TestFilterConcurrent(t *testing.T) {
	s := newService(t, `["60","61","DOB_YR","COD"]`)
	want := s.Filter(message.NewEnvelope(message.KindSubmission, deathrecord.Sample())).Record

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			got := s.Filter(message.NewEnvelope(message.KindSubmission, deathrecord.Sample()))
			assert.Equal(t, want, got.Record)
		}()
	}

	wg.Wait()
}
