package message

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	Text string `json:"text"`
}

func TestKindClassification(t *testing.T) {
	for i := 1; i < KindTotal; i++ {
		k := Kind(i)
		assert.True(t, k.Valid(), k.String())

		want := k == KindSubmission || k == KindUpdate
		assert.Equal(t, want, k.CarriesRecord(), k.String())
	}

	assert.False(t, Kind(0).Valid())
	assert.False(t, Kind(KindTotal).Valid())
	assert.False(t, Kind(0).CarriesRecord())
}

func TestKindText(t *testing.T) {
	for i := 1; i < KindTotal; i++ {
		k := Kind(i)

		text, err := k.MarshalText()
		require.NoError(t, err)

		var back Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}

	k, err := ParseKind(" Extraction_Error ")
	require.NoError(t, err)
	assert.Equal(t, KindExtractionError, k)

	_, err = ParseKind("telegram")
	require.Error(t, err)

	_, err = Kind(0).MarshalText()
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Submission", KindSubmission.String())
	assert.Equal(t, "ExtractionError", KindExtractionError.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestNewEnvelope(t *testing.T) {
	rec := &note{Text: "hi"}
	e := NewEnvelope(KindSubmission, rec)

	assert.Equal(t, KindSubmission, e.Kind)
	assert.Same(t, rec, e.Record)

	_, err := uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.NotEqual(t, e.ID, NewEnvelope(KindSubmission, rec).ID)
}

func TestWithRecord(t *testing.T) {
	e := Envelope[note]{
		Kind:        KindUpdate,
		ID:          "m-1",
		Source:      "MA",
		Destination: "NCHS",
		Record:      &note{Text: "old"},
		Payload:     map[string]string{"block_count": "1"},
	}

	rec := &note{Text: "new"}
	got := e.WithRecord(rec)

	assert.Equal(t, KindUpdate, got.Kind)
	assert.Equal(t, "m-1", got.ID)
	assert.Equal(t, "MA", got.Source)
	assert.Equal(t, "NCHS", got.Destination)
	assert.Same(t, rec, got.Record)
	assert.Equal(t, "old", e.Record.Text)

	got.Payload["block_count"] = "2"
	assert.Equal(t, "1", e.Payload["block_count"])
}

func TestValidate(t *testing.T) {
	require.NoError(t, NewEnvelope(KindSubmission, &note{}).Validate())
	require.NoError(t, Envelope[note]{Kind: KindVoid, ID: "v"}.Validate())
	require.ErrorIs(t, Envelope[note]{Kind: KindUpdate, ID: "u"}.Validate(), ErrMissingRecord)
	require.Error(t, Envelope[note]{}.Validate())
}

func TestEnvelopeJSON(t *testing.T) {
	data := `{"kind":"submission","id":"m-1","source":"MA","destination":"NCHS","record":{"text":"hi"}}`

	var e Envelope[note]
	require.NoError(t, json.Unmarshal([]byte(data), &e))

	assert.Equal(t, KindSubmission, e.Kind)
	assert.Equal(t, "m-1", e.ID)
	require.NotNil(t, e.Record)
	assert.Equal(t, "hi", e.Record.Text)

	out, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, data, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"kind":"telegram"}`), &e))
}
