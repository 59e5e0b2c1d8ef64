// Package mapping turns a jurisdiction allow-list and a field-code mapping
// table into the set of record property paths a consumer may receive.
//
// # Inputs
//
// Both inputs are YAML or JSON documents, given inline or as files:
//
//	# allow-list
//	["19", "60", "DOB_YR"]
//
//	# mapping table
//	"19": NOTFOUND
//	"60": [Race.White]
//	DOB_YR: [DateOfBirth]
//
// Field codes are trimmed and upper-cased on load. A table value may be a
// single path or a list of paths. The literal NOTFOUND marks a code with no
// record property and never reaches the allowed set.
//
// # Path Syntax
//
// Property paths support:
//   - Scalar properties: "DateOfBirth"
//   - One key of a string map property: "Race.White"
//   - A whole collection property: "CausesOfDeath[]"
//
// The first dot always wins: "Residence.Line.1" addresses key "Line.1" of
// Residence, and "Race.White[]" addresses key "White[]" of Race.
package mapping
