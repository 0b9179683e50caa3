// Package domain defines the core business entities for PolicyQ.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PageRecord: One extracted page of a source document
//   - SearchHit: A scored page returned by a search
//   - Snippet: A bounded, highlighted excerpt of a page
//   - Score: The explicit (base, bonus) relevance pair
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
