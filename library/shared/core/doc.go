// Package core contains the library domain: books, users, loans, notifications,
// the audit trail, reviews and reservations, together with the pure state transition
// that applies a closed set of actions to an immutable State.
//
// Nothing in this package performs I/O or reads the clock. Times are always passed in,
// which keeps Apply and every Decide function built on top of it deterministic.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
