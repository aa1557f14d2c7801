package core

import (
	"slices"
)

// Entity is implemented by every record kept in a State collection.
type Entity interface {
	EntityID() string
}

// LibraryData is the persisted subset of the state.
type LibraryData struct {
	Books []Book `json:"books"`
	Users []User `json:"users"`
	Loans []Loan `json:"loans"`
}

// State holds every collection. Values are never modified in place; Apply returns a new State.
type State struct {
	Books            []Book
	Users            []User
	Loans            []Loan
	Notifications    []Notification
	AuditLogs        []AuditLog
	BookReviews      []BookReview
	BookReservations []BookReservation
}

// NewState builds a State holding a copy of data and empty side collections.
func NewState(data LibraryData) State {
	return State{
		Books: slices.Clone(data.Books),
		Users: slices.Clone(data.Users),
		Loans: slices.Clone(data.Loans),
	}
}

// LibraryData returns a copy of the persisted collections.
func (s State) LibraryData() LibraryData {
	return LibraryData{
		Books: nonNil(slices.Clone(s.Books)),
		Users: nonNil(slices.Clone(s.Users)),
		Loans: nonNil(slices.Clone(s.Loans)),
	}
}

// FindBook returns the book with id.
func (s State) FindBook(id BookIDString) (Book, bool) {
	return findByID(s.Books, id)
}

// FindUser returns the user with id.
func (s State) FindUser(id UserIDString) (User, bool) {
	return findByID(s.Users, id)
}

// FindLoan returns the loan with id.
func (s State) FindLoan(id LoanIDString) (Loan, bool) {
	return findByID(s.Loans, id)
}

// FindNotification returns the notification with id.
func (s State) FindNotification(id NotificationIDString) (Notification, bool) {
	return findByID(s.Notifications, id)
}

// FindReservation returns the reservation with id.
func (s State) FindReservation(id ReservationIDString) (BookReservation, bool) {
	return findByID(s.BookReservations, id)
}

// ActiveLoansOfUser counts the active loans held by the user.
func (s State) ActiveLoansOfUser(userID UserIDString) int {
	count := 0

	for _, loan := range s.Loans {
		if loan.UserID == userID && loan.IsActive() {
			count++
		}
	}

	return count
}

// HasActiveLoanForBook reports whether any active loan references the book.
func (s State) HasActiveLoanForBook(bookID BookIDString) bool {
	for _, loan := range s.Loans {
		if loan.BookID == bookID && loan.IsActive() {
			return true
		}
	}

	return false
}

// CardNumberTaken reports whether any user holds the card number.
func (s State) CardNumberTaken(cardNumber string) bool {
	for _, user := range s.Users {
		if user.CardNumber == cardNumber {
			return true
		}
	}

	return false
}

func findByID[T Entity](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
