package core

// Action type names.
const (
	SetDataActionType               = "SET_DATA"
	AddBookActionType               = "ADD_BOOK"
	UpdateBookActionType            = "UPDATE_BOOK"
	DeleteBookActionType            = "DELETE_BOOK"
	AddUserActionType               = "ADD_USER"
	UpdateUserActionType            = "UPDATE_USER"
	DeleteUserActionType            = "DELETE_USER"
	AddLoanActionType               = "ADD_LOAN"
	UpdateLoanActionType            = "UPDATE_LOAN"
	DeleteLoanActionType            = "DELETE_LOAN"
	AddNotificationActionType       = "ADD_NOTIFICATION"
	MarkNotificationReadActionType  = "MARK_NOTIFICATION_READ"
	DeleteNotificationActionType    = "DELETE_NOTIFICATION"
	AddAuditLogActionType           = "ADD_AUDIT_LOG"
	AddBookReviewActionType         = "ADD_BOOK_REVIEW"
	AddBookReservationActionType    = "ADD_BOOK_RESERVATION"
	UpdateBookReservationActionType = "UPDATE_BOOK_RESERVATION"
)

// Action is the closed set of state transitions accepted by Apply.
// The unexported marker method keeps other packages from adding variants.
type Action interface {
	ActionType() string
	// TouchesLibraryData reports whether the action changes books, users or loans.
	TouchesLibraryData() bool
	isAction()
}

type (
	// SetData replaces books, users and loans.
	SetData struct{ Data LibraryData }

	AddBook    struct{ Book Book }
	UpdateBook struct{ Book Book }
	DeleteBook struct{ BookID BookIDString }

	AddUser    struct{ User User }
	UpdateUser struct{ User User }
	DeleteUser struct{ UserID UserIDString }

	AddLoan    struct{ Loan Loan }
	UpdateLoan struct{ Loan Loan }
	DeleteLoan struct{ LoanID LoanIDString }

	// AddNotification prepends.
	AddNotification      struct{ Notification Notification }
	MarkNotificationRead struct{ NotificationID NotificationIDString }
	DeleteNotification   struct{ NotificationID NotificationIDString }

	// AddAuditLog prepends.
	AddAuditLog struct{ Log AuditLog }

	AddBookReview         struct{ Review BookReview }
	AddBookReservation    struct{ Reservation BookReservation }
	UpdateBookReservation struct{ Reservation BookReservation }
)

func (SetData) ActionType() string               { return SetDataActionType }
func (AddBook) ActionType() string               { return AddBookActionType }
func (UpdateBook) ActionType() string            { return UpdateBookActionType }
func (DeleteBook) ActionType() string            { return DeleteBookActionType }
func (AddUser) ActionType() string               { return AddUserActionType }
func (UpdateUser) ActionType() string            { return UpdateUserActionType }
func (DeleteUser) ActionType() string            { return DeleteUserActionType }
func (AddLoan) ActionType() string               { return AddLoanActionType }
func (UpdateLoan) ActionType() string            { return UpdateLoanActionType }
func (DeleteLoan) ActionType() string            { return DeleteLoanActionType }
func (AddNotification) ActionType() string       { return AddNotificationActionType }
func (MarkNotificationRead) ActionType() string  { return MarkNotificationReadActionType }
func (DeleteNotification) ActionType() string    { return DeleteNotificationActionType }
func (AddAuditLog) ActionType() string           { return AddAuditLogActionType }
func (AddBookReview) ActionType() string         { return AddBookReviewActionType }
func (AddBookReservation) ActionType() string    { return AddBookReservationActionType }
func (UpdateBookReservation) ActionType() string { return UpdateBookReservationActionType }

func (SetData) TouchesLibraryData() bool               { return true }
func (AddBook) TouchesLibraryData() bool               { return true }
func (UpdateBook) TouchesLibraryData() bool            { return true }
func (DeleteBook) TouchesLibraryData() bool            { return true }
func (AddUser) TouchesLibraryData() bool               { return true }
func (UpdateUser) TouchesLibraryData() bool            { return true }
func (DeleteUser) TouchesLibraryData() bool            { return true }
func (AddLoan) TouchesLibraryData() bool               { return true }
func (UpdateLoan) TouchesLibraryData() bool            { return true }
func (DeleteLoan) TouchesLibraryData() bool            { return true }
func (AddNotification) TouchesLibraryData() bool       { return false }
func (MarkNotificationRead) TouchesLibraryData() bool  { return false }
func (DeleteNotification) TouchesLibraryData() bool    { return false }
func (AddAuditLog) TouchesLibraryData() bool           { return false }
func (AddBookReview) TouchesLibraryData() bool         { return false }
func (AddBookReservation) TouchesLibraryData() bool    { return false }
func (UpdateBookReservation) TouchesLibraryData() bool { return false }

func (SetData) isAction()               {}
func (AddBook) isAction()               {}
func (UpdateBook) isAction()            {}
func (DeleteBook) isAction()            {}
func (AddUser) isAction()               {}
func (UpdateUser) isAction()            {}
func (DeleteUser) isAction()            {}
func (AddLoan) isAction()               {}
func (UpdateLoan) isAction()            {}
func (DeleteLoan) isAction()            {}
func (AddNotification) isAction()       {}
func (MarkNotificationRead) isAction()  {}
func (DeleteNotification) isAction()    {}
func (AddAuditLog) isAction()           {}
func (AddBookReview) isAction()         {}
func (AddBookReservation) isAction()    {}
func (UpdateBookReservation) isAction() {}

// AnyTouchesLibraryData reports whether at least one action changes books, users or loans.
func AnyTouchesLibraryData(actions []Action) bool {
	for _, action := range actions {
		if action != nil && action.TouchesLibraryData() {
			return true
		}
	}

	return false
}
