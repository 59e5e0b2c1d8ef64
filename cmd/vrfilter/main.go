// Package main provides the CLI entrypoint for vrfilter.
//
// vrfilter redacts death record messages down to the fields a jurisdiction
// is allowed to receive:
//   - filter: filter one JSON envelope from a file or stdin
//   - inspect: show the property paths an allow-list resolves to
//   - serve: run the filter as an HTTP service
//   - sample: print a sample submission envelope
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
