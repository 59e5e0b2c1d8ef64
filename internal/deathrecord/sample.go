package deathrecord

// Sample returns a fully populated record with fictitious data.
// Each call returns a new value.
func Sample() *DeathRecord {
	return &DeathRecord{
		Identifier:                "000182",
		CertificateNumber:         "182",
		StateLocalIdentifier1:     "000000000001",
		DeathLocationJurisdiction: "MA",

		GivenNames:    "Madelyn",
		FamilyName:    "Patel",
		SexAtDeath:    "F",
		DateOfBirth:   "1970-04-24",
		DateOfDeath:   "2023-01-02",
		DeathYear:     "2023",
		AgeAtDeath:    "52",
		MaritalStatus: "M",
		Education:     "BA",

		MannerOfDeath:      "Natural",
		AutopsyPerformed:   "N",
		TobaccoUse:         "N",
		PregnancyStatus:    "1",
		InjuryAtWork:       "N",
		UnderlyingCauseICD: "I21.9",

		Race: map[string]string{
			"White":                         "Y",
			"BlackOrAfricanAmerican":        "N",
			"AmericanIndianOrAlaskanNative": "N",
			"Asian":                         "N",
		},
		Ethnicity: map[string]string{
			"Mexican":     "N",
			"PuertoRican": "N",
			"Cuban":       "N",
			"Other":       "N",
		},
		Residence: map[string]string{
			"addressLine1":   "9 Main Street",
			"addressCity":    "Bedford",
			"addressCounty":  "Middlesex",
			"addressState":   "MA",
			"addressZip":     "01730",
			"addressCountry": "US",
		},
		PlaceOfBirth: map[string]string{
			"addressState":   "NH",
			"addressCountry": "US",
		},
		DeathLocationAddress: map[string]string{
			"addressCity":  "Bedford",
			"addressState": "MA",
		},

		CausesOfDeath: []CauseOfDeath{
			{Description: "Acute myocardial infarction", Interval: "minutes"},
			{Description: "Coronary artery thrombosis", Interval: "5 years"},
		},
		EntityAxisCauseOfDeath: []EntityAxisCode{
			{LineNumber: "1", Position: "1", Code: "I21.9"},
			{LineNumber: "2", Position: "1", Code: "I24.0"},
		},
		RecordAxisCauseOfDeath: []RecordAxisCode{
			{Position: "1", Code: "I21.9"},
			{Position: "2", Code: "I24.0"},
		},
	}
}
