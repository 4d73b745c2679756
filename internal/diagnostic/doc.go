// Package diagnostic provides structured failure reports for stroke
// compilation and checking.
//
// Key capabilities:
//   - One Code per class of drawing or record failure
//   - Per-file error and warning collection
//   - Rendering of all collected failures for the CLI
package diagnostic
