// Package persistence mirrors the books, users and loans of the library state into a snapshot store.
//
// Persistence is best effort: read failures fall back to the seed dataset, write failures are
// logged and never undo an in-memory change. The package also builds the one-shot export document
// and decodes import documents.
package persistence
