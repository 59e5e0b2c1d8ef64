package deathrecord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vrfilter/internal/record"
)

func TestSchemaShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape record.Shape
	}{
		{"DateOfBirth", record.ShapeScalar},
		{"DeathLocationJurisdiction", record.ShapeScalar},
		{"Race", record.ShapeStringMap},
		{"Residence", record.ShapeStringMap},
		{"CausesOfDeath", record.ShapeTuples},
		{"EntityAxisCauseOfDeath", record.ShapeTuples},
		{"RecordAxisCauseOfDeath", record.ShapeTuples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Schema.Property(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.shape, p.Shape())
		})
	}
}

func TestSchemaCoversEveryField(t *testing.T) {
	assert.Len(t, Schema.Names(), 27)
}

func TestSchemaAccessorsTargetTheirOwnField(t *testing.T) {
	r := &DeathRecord{}

	for _, name := range Schema.Names() {
		p, _ := Schema.Property(name)
		if p.Shape() == record.ShapeScalar {
			p.SetScalar(r, name)
		}
	}

	for _, name := range Schema.Names() {
		p, _ := Schema.Property(name)
		if v, ok := p.Scalar(r); ok {
			assert.Equal(t, name, v)
		}
	}

	assert.Equal(t, "DateOfBirth", r.DateOfBirth)
	assert.Equal(t, "UnderlyingCauseICD", r.UnderlyingCauseICD)
}

func TestSampleIsFresh(t *testing.T) {
	a, b := Sample(), Sample()
	a.Race["White"] = "N"
	a.CausesOfDeath[0].Interval = "changed"

	assert.Equal(t, "Y", b.Race["White"])
	assert.Equal(t, "minutes", b.CausesOfDeath[0].Interval)
}
