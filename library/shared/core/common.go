package core

import (
	"time"
)

// Instead of implementing full value objects, I'm using some alias types and helper methods here ...

// BookIDString represents a book identifier
type BookIDString = string

// UserIDString represents a user identifier
type UserIDString = string

// LoanIDString represents a loan identifier
type LoanIDString = string

// NotificationIDString represents a notification identifier
type NotificationIDString = string

// ReviewIDString represents a book review identifier
type ReviewIDString = string

// ReservationIDString represents a book reservation identifier
type ReservationIDString = string

// ISBNString represents an ISBN identifier
type ISBNString = string

// OccurredAt represents when a command was issued
type OccurredAt = time.Time

// ToOccurredAt converts a time to OccurredAt with UTC normalization and microsecond precision
func ToOccurredAt(t time.Time) OccurredAt {
	return t.UTC().Truncate(time.Microsecond)
}
