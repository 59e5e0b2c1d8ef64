package deathrecord

import "vrfilter/internal/record"

// Schema is the property registry of DeathRecord.
var Schema = record.MustSchema(
	scalar("Identifier", func(r *DeathRecord) *string { return &r.Identifier }),
	scalar("CertificateNumber", func(r *DeathRecord) *string { return &r.CertificateNumber }),
	scalar("StateLocalIdentifier1", func(r *DeathRecord) *string { return &r.StateLocalIdentifier1 }),
	scalar("DeathLocationJurisdiction", func(r *DeathRecord) *string { return &r.DeathLocationJurisdiction }),
	scalar("GivenNames", func(r *DeathRecord) *string { return &r.GivenNames }),
	scalar("FamilyName", func(r *DeathRecord) *string { return &r.FamilyName }),
	scalar("SexAtDeath", func(r *DeathRecord) *string { return &r.SexAtDeath }),
	scalar("DateOfBirth", func(r *DeathRecord) *string { return &r.DateOfBirth }),
	scalar("DateOfDeath", func(r *DeathRecord) *string { return &r.DateOfDeath }),
	scalar("DeathYear", func(r *DeathRecord) *string { return &r.DeathYear }),
	scalar("AgeAtDeath", func(r *DeathRecord) *string { return &r.AgeAtDeath }),
	scalar("MaritalStatus", func(r *DeathRecord) *string { return &r.MaritalStatus }),
	scalar("Education", func(r *DeathRecord) *string { return &r.Education }),
	scalar("MannerOfDeath", func(r *DeathRecord) *string { return &r.MannerOfDeath }),
	scalar("AutopsyPerformed", func(r *DeathRecord) *string { return &r.AutopsyPerformed }),
	scalar("TobaccoUse", func(r *DeathRecord) *string { return &r.TobaccoUse }),
	scalar("PregnancyStatus", func(r *DeathRecord) *string { return &r.PregnancyStatus }),
	scalar("InjuryAtWork", func(r *DeathRecord) *string { return &r.InjuryAtWork }),
	scalar("UnderlyingCauseICD", func(r *DeathRecord) *string { return &r.UnderlyingCauseICD }),

	stringMap("Race", func(r *DeathRecord) *map[string]string { return &r.Race }),
	stringMap("Ethnicity", func(r *DeathRecord) *map[string]string { return &r.Ethnicity }),
	stringMap("Residence", func(r *DeathRecord) *map[string]string { return &r.Residence }),
	stringMap("PlaceOfBirth", func(r *DeathRecord) *map[string]string { return &r.PlaceOfBirth }),
	stringMap("DeathLocationAddress", func(r *DeathRecord) *map[string]string { return &r.DeathLocationAddress }),

	tuples("CausesOfDeath", func(r *DeathRecord) *[]CauseOfDeath { return &r.CausesOfDeath }),
	tuples("EntityAxisCauseOfDeath", func(r *DeathRecord) *[]EntityAxisCode { return &r.EntityAxisCauseOfDeath }),
	tuples("RecordAxisCauseOfDeath", func(r *DeathRecord) *[]RecordAxisCode { return &r.RecordAxisCauseOfDeath }),
)

func scalar(name string, field func(*DeathRecord) *string) record.Property[DeathRecord] {
	return record.Scalar(name,
		func(r *DeathRecord) string { return *field(r) },
		func(r *DeathRecord, v string) { *field(r) = v })
}

func stringMap(name string, field func(*DeathRecord) *map[string]string) record.Property[DeathRecord] {
	return record.StringMap(name,
		func(r *DeathRecord) map[string]string { return *field(r) },
		func(r *DeathRecord, v map[string]string) { *field(r) = v })
}

func tuples[T any](name string, field func(*DeathRecord) *[]T) record.Property[DeathRecord] {
	return record.Tuples(name,
		func(r *DeathRecord) []T { return *field(r) },
		func(r *DeathRecord, v []T) { *field(r) = v })
}
