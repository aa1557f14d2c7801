package core

import (
	"fmt"
	"slices"
)

// Apply returns the state that results from applying action to state.
// It never mutates its input: changed collections are cloned and records are replaced wholesale.
// On error, the original state is returned together with the error.
func Apply(state State, action Action) (State, error) {
	next := state
	var err error

	switch a := action.(type) {
	case SetData:
		next.Books = nonNil(slices.Clone(a.Data.Books))
		next.Users = nonNil(slices.Clone(a.Data.Users))
		next.Loans = nonNil(slices.Clone(a.Data.Loans))

	case AddBook:
		next.Books, err = appendNew(state.Books, a.Book, EntityBook)
	case UpdateBook:
		next.Books, err = replaceExisting(state.Books, a.Book, EntityBook)
	case DeleteBook:
		next.Books, err = removeExisting(state.Books, a.BookID, EntityBook)

	case AddUser:
		next.Users, err = appendNew(state.Users, a.User, EntityUser)
	case UpdateUser:
		next.Users, err = replaceExisting(state.Users, a.User, EntityUser)
	case DeleteUser:
		next.Users, err = removeExisting(state.Users, a.UserID, EntityUser)

	case AddLoan:
		next.Loans, err = appendNew(state.Loans, a.Loan, EntityLoan)
	case UpdateLoan:
		next.Loans, err = replaceExisting(state.Loans, a.Loan, EntityLoan)
	case DeleteLoan:
		next.Loans, err = removeExisting(state.Loans, a.LoanID, EntityLoan)

	case AddNotification:
		next.Notifications, err = prependNew(state.Notifications, a.Notification, "notification")
	case MarkNotificationRead:
		next.Notifications = markRead(state.Notifications, a.NotificationID)
	case DeleteNotification:
		next.Notifications = removeIfPresent(state.Notifications, a.NotificationID)

	case AddAuditLog:
		next.AuditLogs = append([]AuditLog{a.Log}, state.AuditLogs...)

	case AddBookReview:
		next.BookReviews, err = appendNew(state.BookReviews, a.Review, "review")
	case AddBookReservation:
		next.BookReservations, err = appendNew(state.BookReservations, a.Reservation, "reservation")
	case UpdateBookReservation:
		next.BookReservations, err = replaceExisting(state.BookReservations, a.Reservation, "reservation")

	default:
		return state, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}

	if err != nil {
		return state, err
	}

	return next, nil
}

// ApplyAll applies the actions in order. If any of them fails, the original state is returned.
func ApplyAll(state State, actions ...Action) (State, error) {
	next := state

	for _, action := range actions {
		var err error

		next, err = Apply(next, action)
		if err != nil {
			return state, err
		}
	}

	return next, nil
}

func appendNew[T Entity, K ~string](items []T, item T, kind K) ([]T, error) {
	if _, exists := findByID(items, item.EntityID()); exists {
		return items, fmt.Errorf("%w: %s %q", ErrDuplicateID, kind, item.EntityID())
	}

	next := make([]T, 0, len(items)+1)
	next = append(next, items...)

	return append(next, item), nil
}

func prependNew[T Entity, K ~string](items []T, item T, kind K) ([]T, error) {
	if _, exists := findByID(items, item.EntityID()); exists {
		return items, fmt.Errorf("%w: %s %q", ErrDuplicateID, kind, item.EntityID())
	}

	next := make([]T, 0, len(items)+1)
	next = append(next, item)

	return append(next, items...), nil
}

func replaceExisting[T Entity, K ~string](items []T, item T, kind K) ([]T, error) {
	idx := slices.IndexFunc(items, func(existing T) bool { return existing.EntityID() == item.EntityID() })
	if idx < 0 {
		return items, fmt.Errorf("%w: %s %q", ErrNotFound, kind, item.EntityID())
	}

	next := slices.Clone(items)
	next[idx] = item

	return next, nil
}

func removeExisting[T Entity, K ~string](items []T, id string, kind K) ([]T, error) {
	idx := slices.IndexFunc(items, func(existing T) bool { return existing.EntityID() == id })
	if idx < 0 {
		return items, fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
	}

	return slices.Delete(slices.Clone(items), idx, idx+1), nil
}

func removeIfPresent[T Entity](items []T, id string) []T {
	idx := slices.IndexFunc(items, func(existing T) bool { return existing.EntityID() == id })
	if idx < 0 {
		return items
	}

	return slices.Delete(slices.Clone(items), idx, idx+1)
}

func markRead(notifications []Notification, id NotificationIDString) []Notification {
	idx := slices.IndexFunc(notifications, func(n Notification) bool { return n.ID == id })
	if idx < 0 || notifications[idx].Read {
		return notifications
	}

	next := slices.Clone(notifications)
	next[idx].Read = true

	return next
}
