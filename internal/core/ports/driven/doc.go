// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ContentStore: Ordered post lookups (SQLite, Postgres or in-memory)
//   - TermStore: Resolves the terms a post belongs to
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ResultCache: Caches resolved lookups. Without it every call hits the store.
//   - Translator: Localises default link labels. Without it labels stay English.
//   - Permalinker: Builds post URLs. Without it links use "/?p=<id>".
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or driving package
package driven
