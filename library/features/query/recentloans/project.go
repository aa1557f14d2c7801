package recentloans

import (
	"slices"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Project orders loans by descending loan date, keeping collection order for equal dates.
func Project(state core.State, query Query) RecentLoans {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	loans := slices.Clone(state.Loans)
	slices.SortStableFunc(loans, func(a, b core.Loan) int {
		return b.LoanDate.Time().Compare(a.LoanDate.Time())
	})

	if len(loans) > limit {
		loans = loans[:limit]
	}

	activities := make([]LoanActivity, 0, len(loans))
	for _, loan := range loans {
		activity := LoanActivity{Loan: loan}

		if book, found := state.FindBook(loan.BookID); found {
			activity.BookTitle = book.Title
		}

		if user, found := state.FindUser(loan.UserID); found {
			activity.UserName = user.FullName()
		}

		activities = append(activities, activity)
	}

	return RecentLoans{Loans: activities}
}
