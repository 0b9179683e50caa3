// Package extractors provides implementations of the Extractor interface
// for various document formats. Each extractor knows how to turn one
// source file into cleaned page records.
//
// Extractors are registered with the IngestService at startup and
// selected by file extension.
package extractors
