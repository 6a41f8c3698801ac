// Package sqlite provides a SQLite-backed content store for post navigation.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A single database connection serves:
//
//   - ContentStore: adjacency and boundary lookups
//   - TermStore: post to term resolution
//   - ContentWriter: importing posts and terms
//
// # Schema
//
// The schema mirrors the host blog tables (posts, terms, term_taxonomy,
// term_relationships) so that the SQL rendered by the adjacency builder runs
// unchanged. It is managed through versioned migrations in migrations/.
//
// # Dates
//
// post_date is stored as UTC text in the "2006-01-02 15:04:05" layout, which
// sorts and compares lexically. Time arguments are rendered the same way
// before a statement runs.
//
// # Data Location
//
// By default, the database is stored at ~/.postnav/data/posts.db
package sqlite
