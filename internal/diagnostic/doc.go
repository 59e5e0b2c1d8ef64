// Package diagnostic provides structured, non-fatal findings reported while
// projecting a record.
//
// Key capabilities:
//   - Missing property warnings
//   - Missing map sub-key warnings
//   - Path shape mismatch warnings
//   - Structured logging of findings
package diagnostic
