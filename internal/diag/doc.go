// Package diag defines the diagnostic model shared by the scan driver, the
// suppression filter, and the CLI renderers.
//
// The type checker that consumes source units owns most of the numeric code
// space; this layer only ever issues UnusedIgnore (code 0) for suppression
// comments that suppressed nothing. Diagnostic is the central record:
// severity, code, message, and a primary line/column span. Bag accumulates
// diagnostics up to a cap and provides the deterministic ordering used by
// every output path.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt.
package diag
