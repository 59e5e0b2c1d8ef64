// Package record describes record types by an explicit registry of named
// properties, so that mapping paths can address record data by name
// without reflection.
//
// A property has one of three shapes: a scalar string, a map of string to
// string, or a slice of value tuples. Each is declared once with typed
// getter and setter functions:
//
//	var schema = record.MustSchema(
//		record.Scalar("DateOfBirth",
//			func(r *Death) string { return r.DateOfBirth },
//			func(r *Death, v string) { r.DateOfBirth = v }),
//		record.StringMap("Race",
//			func(r *Death) map[string]string { return r.Race },
//			func(r *Death, v map[string]string) { r.Race = v }),
//	)
package record
