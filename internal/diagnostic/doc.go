// Package diagnostic provides structured notices collected while
// generating a document from a schema.
//
// Key capabilities:
//   - Unknown range fallback notices
//   - Unknown operation name warnings
//   - Severity-tagged rendering for CLI output
package diagnostic
