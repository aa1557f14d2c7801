// Package updatereservation implements the Update Book Reservation use case.
package updatereservation
