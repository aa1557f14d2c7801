package overdueloans

import (
	"slices"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Project collects the active loans past their due date.
func Project(state core.State, query Query) OverdueLoans {
	overdue := make([]OverdueLoan, 0)

	for _, loan := range state.Loans {
		if !loan.IsOverdue(query.Now) {
			continue
		}

		entry := OverdueLoan{
			Loan:        loan,
			DaysOverdue: loan.DaysOverdue(query.Now),
		}

		if book, found := state.FindBook(loan.BookID); found {
			entry.BookTitle = book.Title
		}

		if user, found := state.FindUser(loan.UserID); found {
			entry.UserName = user.FullName()
			entry.CardNumber = user.CardNumber
		}

		overdue = append(overdue, entry)
	}

	slices.SortStableFunc(overdue, func(a, b OverdueLoan) int {
		return a.Loan.DueDate.Time().Compare(b.Loan.DueDate.Time())
	})

	return OverdueLoans{Loans: overdue}
}
