// Package source holds raw input text and the line-level bookkeeping the
// formatter needs before and after the structural transform: CRLF/BOM
// normalization, blank-run measurement and line splitting.
//
// It knows nothing about the grammar; everything here is byte- and
// line-oriented.
package source
