// Package registeruser implements the Register User use case.
//
// Name, surname and email are required. A card number the caller supplies must be unused. When the
// caller supplies none, the next free LIB%04d number is picked, probing from a random start
// carried on the command so Decide stays deterministic.
package registeruser
