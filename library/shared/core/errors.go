package core

import (
	"errors"
)

var (
	// ErrNotFound is returned when a referenced entity id is absent.
	ErrNotFound = errors.New("not found")

	// ErrHasActiveLoans is returned when a user with active loans is deleted.
	ErrHasActiveLoans = errors.New("user has active loans")

	// ErrBookUnavailable is returned when a loan is created for a book that is already lent.
	ErrBookUnavailable = errors.New("book is not available")

	// ErrAlreadyReturned is returned when a loan that is not active is returned.
	ErrAlreadyReturned = errors.New("loan already returned")

	// ErrUnknownAction is returned by Apply for nil or unrecognized actions.
	ErrUnknownAction = errors.New("unknown action")

	// ErrDuplicateID is returned when an entity is added with an id that already exists.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidInput is returned when a command carries values that violate its preconditions.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateCardNumber is returned when a supplied card number is already taken.
	ErrDuplicateCardNumber = errors.New("card number already in use")

	// ErrCardNumbersExhausted is returned when no free card number could be generated.
	ErrCardNumbersExhausted = errors.New("no free card number available")

	// ErrAlreadyReserved is returned when a user already holds a pending reservation for a book.
	ErrAlreadyReserved = errors.New("book already reserved by user")

	// ErrInvalidImport is returned when an import document cannot be decoded.
	ErrInvalidImport = errors.New("invalid import document")

	// ErrPersistenceWriteFailed marks a swallowed snapshot write failure.
	ErrPersistenceWriteFailed = errors.New("persistence write failed")

	// ErrPersistenceReadFailed marks a snapshot read failure that fell back to the seed dataset.
	ErrPersistenceReadFailed = errors.New("persistence read failed")
)
