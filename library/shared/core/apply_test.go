package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func Test_Apply_AddBook_AppendsAndKeepsInputUntouched(t *testing.T) {
	// arrange
	state := givenSeedState(t)
	book := core.Book{ID: "4", Title: "Dune", Author: "Frank Herbert", ISBN: "978-0-441-17271-9", Available: true}

	// act
	next, err := core.Apply(state, core.AddBook{Book: book})

	// assert
	require.NoError(t, err)
	assert.Len(t, state.Books, 3, "Should not mutate the input state")
	require.Len(t, next.Books, 4)
	assert.Equal(t, book, next.Books[3], "Should append at the end")
}

func Test_Apply_AddBook_ShouldFail_WithDuplicateID(t *testing.T) {
	state := givenSeedState(t)

	next, err := core.Apply(state, core.AddBook{Book: core.Book{ID: "1"}})

	assert.ErrorIs(t, err, core.ErrDuplicateID)
	assert.Equal(t, state, next, "Should return the original state")
}

func Test_Apply_UpdateAndDelete_ShouldFail_WhenEntityIsAbsent(t *testing.T) {
	testCases := []struct {
		name   string
		action core.Action
	}{
		{name: "update book", action: core.UpdateBook{Book: core.Book{ID: "404"}}},
		{name: "delete book", action: core.DeleteBook{BookID: "404"}},
		{name: "update user", action: core.UpdateUser{User: core.User{ID: "404"}}},
		{name: "delete user", action: core.DeleteUser{UserID: "404"}},
		{name: "update loan", action: core.UpdateLoan{Loan: core.Loan{ID: "404"}}},
		{name: "delete loan", action: core.DeleteLoan{LoanID: "404"}},
		{name: "update reservation", action: core.UpdateBookReservation{Reservation: core.BookReservation{ID: "404"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := givenSeedState(t)

			next, err := core.Apply(state, tc.action)

			assert.ErrorIs(t, err, core.ErrNotFound)
			assert.Equal(t, state, next)
		})
	}
}

func Test_Apply_UpdateBook_ReplacesRecordWholesale(t *testing.T) {
	// arrange
	state := givenSeedState(t)
	replacement := core.Book{ID: "3", Title: "JavaScript: The Definitive Guide", Available: true}

	// act
	next, err := core.Apply(state, core.UpdateBook{Book: replacement})

	// assert
	require.NoError(t, err)
	assert.Equal(t, replacement, next.Books[2])
	assert.Equal(t, "JavaScript: The Good Parts", state.Books[2].Title, "Should not mutate the input state")
}

func Test_Apply_DeleteUser_KeepsInsertionOrder(t *testing.T) {
	state := givenSeedState(t)

	next, err := core.Apply(state, core.DeleteUser{UserID: "1"})

	require.NoError(t, err)
	require.Len(t, next.Users, 1)
	assert.Equal(t, "2", next.Users[0].ID)
	assert.Len(t, state.Users, 2, "Should not mutate the input state")
}

func Test_Apply_AddNotificationAndAuditLog_Prepend(t *testing.T) {
	// arrange
	state := givenSeedState(t)
	first := core.Notification{ID: "n1", Type: core.NotificationInfo}
	second := core.Notification{ID: "n2", Type: core.NotificationSuccess}

	// act
	next, err := core.ApplyAll(state,
		core.AddNotification{Notification: first},
		core.AddNotification{Notification: second},
		core.AddAuditLog{Log: core.AuditLog{ID: "a1"}},
		core.AddAuditLog{Log: core.AuditLog{ID: "a2"}},
	)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []core.Notification{second, first}, next.Notifications, "Should keep newest first")
	assert.Equal(t, "a2", next.AuditLogs[0].ID, "Should keep newest first")
}

func Test_Apply_MarkNotificationRead_IsIdempotent(t *testing.T) {
	// arrange
	state, err := core.Apply(givenSeedState(t), core.AddNotification{Notification: core.Notification{ID: "n1"}})
	require.NoError(t, err)

	// act
	once, err1 := core.Apply(state, core.MarkNotificationRead{NotificationID: "n1"})
	twice, err2 := core.Apply(once, core.MarkNotificationRead{NotificationID: "n1"})

	// assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, once, twice, "Should yield the same state when applied twice")
	assert.True(t, once.Notifications[0].Read)
	assert.False(t, state.Notifications[0].Read, "Should not mutate the input state")
}

func Test_Apply_NotificationActions_AreNoOps_WhenAbsent(t *testing.T) {
	state := givenSeedState(t)

	afterMark, markErr := core.Apply(state, core.MarkNotificationRead{NotificationID: "missing"})
	afterDelete, deleteErr := core.Apply(state, core.DeleteNotification{NotificationID: "missing"})

	assert.NoError(t, markErr)
	assert.NoError(t, deleteErr)
	assert.Equal(t, state, afterMark)
	assert.Equal(t, state, afterDelete)
}

func Test_Apply_ShouldFail_WithUnknownAction(t *testing.T) {
	testCases := []struct {
		name   string
		action core.Action
	}{
		{name: "nil action", action: nil},
		{name: "pointer variant", action: &core.AddBook{Book: core.Book{ID: "9"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := givenSeedState(t)

			next, err := core.Apply(state, tc.action)

			assert.ErrorIs(t, err, core.ErrUnknownAction)
			assert.Equal(t, state, next, "Should return the original state")
		})
	}
}

func Test_Apply_SetData_ReplacesOnlyLibraryCollections(t *testing.T) {
	// arrange
	state, err := core.Apply(givenSeedState(t), core.AddNotification{Notification: core.Notification{ID: "n1"}})
	require.NoError(t, err)

	// act
	next, err := core.Apply(state, core.SetData{Data: core.LibraryData{}})

	// assert
	require.NoError(t, err)
	assert.Empty(t, next.Books)
	assert.Empty(t, next.Users)
	assert.Empty(t, next.Loans)
	assert.Len(t, next.Notifications, 1, "Should keep notifications")
}

func Test_ApplyAll_IsAtomic(t *testing.T) {
	// arrange
	state := givenSeedState(t)

	// act
	next, err := core.ApplyAll(state,
		core.AddBook{Book: core.Book{ID: "4"}},
		core.DeleteUser{UserID: "404"},
	)

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, state, next, "Should not keep the first action")
}

func Test_AnyTouchesLibraryData(t *testing.T) {
	assert.True(t, core.AnyTouchesLibraryData([]core.Action{core.AddAuditLog{}, core.DeleteLoan{LoanID: "1"}}))
	assert.False(t, core.AnyTouchesLibraryData([]core.Action{core.AddNotification{}, core.AddAuditLog{}, core.AddBookReview{}}))
}

func Test_SeedData_HonorsAvailabilityInvariant(t *testing.T) {
	state := givenSeedState(t)

	for _, book := range state.Books {
		assert.Equal(t, !book.Available, state.HasActiveLoanForBook(book.ID),
			"Book %s should be unavailable iff it has an active loan", book.ID)
	}
}

func Test_SeedData_ReturnsFreshCopies(t *testing.T) {
	first := core.SeedData()
	first.Books[0].Title = "changed"
	first.Books[0].Tags[0] = "changed"

	second := core.SeedData()

	assert.Equal(t, "Il Nome della Rosa", second.Books[0].Title)
	assert.Equal(t, "mistero", second.Books[0].Tags[0])
}

func givenSeedState(t *testing.T) core.State {
	t.Helper()

	return core.NewState(core.SeedData())
}

func givenTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)

	return parsed
}
