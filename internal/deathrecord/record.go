// Package deathrecord defines the death record exchanged between vital
// records jurisdictions and its property registry.
//
// Property names in Schema are the names used by mapping table paths, e.g.
// "DateOfDeath", "Race.White" or "CausesOfDeath[]".
package deathrecord

// DeathRecord is a death certificate with the properties the filter can
// address. Scalars hold their wire text unchanged; an empty string means
// the value is absent.
type DeathRecord struct {
	Identifier                string `json:"identifier,omitempty"`
	CertificateNumber         string `json:"certificateNumber,omitempty"`
	StateLocalIdentifier1     string `json:"stateLocalIdentifier1,omitempty"`
	DeathLocationJurisdiction string `json:"deathLocationJurisdiction,omitempty"`

	GivenNames    string `json:"givenNames,omitempty"`
	FamilyName    string `json:"familyName,omitempty"`
	SexAtDeath    string `json:"sexAtDeath,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	DateOfDeath   string `json:"dateOfDeath,omitempty"`
	DeathYear     string `json:"deathYear,omitempty"`
	AgeAtDeath    string `json:"ageAtDeath,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
	Education     string `json:"education,omitempty"`

	MannerOfDeath      string `json:"mannerOfDeath,omitempty"`
	AutopsyPerformed   string `json:"autopsyPerformed,omitempty"`
	TobaccoUse         string `json:"tobaccoUse,omitempty"`
	PregnancyStatus    string `json:"pregnancyStatus,omitempty"`
	InjuryAtWork       string `json:"injuryAtWork,omitempty"`
	UnderlyingCauseICD string `json:"underlyingCauseICD,omitempty"`

	Race                 map[string]string `json:"race,omitempty"`
	Ethnicity            map[string]string `json:"ethnicity,omitempty"`
	Residence            map[string]string `json:"residence,omitempty"`
	PlaceOfBirth         map[string]string `json:"placeOfBirth,omitempty"`
	DeathLocationAddress map[string]string `json:"deathLocationAddress,omitempty"`

	CausesOfDeath          []CauseOfDeath   `json:"causesOfDeath,omitempty"`
	EntityAxisCauseOfDeath []EntityAxisCode `json:"entityAxisCauseOfDeath,omitempty"`
	RecordAxisCauseOfDeath []RecordAxisCode `json:"recordAxisCauseOfDeath,omitempty"`
}

// CauseOfDeath is one line of the cause of death chain, as certified.
type CauseOfDeath struct {
	Description string `json:"description"`
	Interval    string `json:"interval,omitempty"`
}

// EntityAxisCode is one coded condition of the entity axis.
type EntityAxisCode struct {
	LineNumber string `json:"lineNumber"`
	Position   string `json:"position"`
	Code       string `json:"code"`
	ECode      string `json:"eCode,omitempty"`
}

// RecordAxisCode is one coded condition of the record axis.
type RecordAxisCode struct {
	Position  string `json:"position"`
	Code      string `json:"code"`
	Pregnancy string `json:"pregnancy,omitempty"`
}
