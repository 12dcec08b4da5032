// Package pagination provides sorting and offset/limit windowing for CLI
// commands that print lists of batch results.
//
// This package contains:
//   - Params: CLI flag values and their validation
//   - ParseSort: the "field" or "field:order" sort syntax
//   - ResultSorter: stable sorting of batch results by a named field
package pagination
