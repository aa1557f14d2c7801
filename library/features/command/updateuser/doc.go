// Package updateuser implements the Update User use case.
package updateuser
