package core

import (
	"time"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationFulfilled ReservationStatus = "fulfilled"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationFulfilled, ReservationCancelled:
		return true
	default:
		return false
	}
}

// BookReservation is a user's request to borrow a book once it is available.
type BookReservation struct {
	ID        ReservationIDString `json:"id"`
	BookID    BookIDString        `json:"bookId"`
	UserID    UserIDString        `json:"userId"`
	Timestamp time.Time           `json:"timestamp"`
	Status    ReservationStatus   `json:"status"`
}

// EntityID implements Entity.
func (r BookReservation) EntityID() string {
	return r.ID
}
