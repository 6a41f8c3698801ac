// Package domain defines the core business entities for postnav.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Post: A published content item on the timeline
//   - Term: A taxonomy term attached to posts
//   - AdjacencyQuery: The predicate used to find a previous or next post
//   - BoundaryQuery: The listing used to find the first or last post
//   - View: The request-scoped rendering context (current post, single view)
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
