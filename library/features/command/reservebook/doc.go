// Package reservebook implements the Reserve Book use case.
package reservebook
