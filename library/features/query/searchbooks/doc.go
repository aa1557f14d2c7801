// Package searchbooks implements the Search Books query.
//
// The term matches case-insensitively against the descriptive fields and tags of a book,
// and as a separator-insensitive substring against its ISBN.
package searchbooks
