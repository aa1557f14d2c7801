package dashboardstats

import (
	"github.com/shopspring/decimal"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Project computes the dashboard counters.
func Project(state core.State, query Query) DashboardStats {
	stats := DashboardStats{
		TotalBooks:       len(state.Books),
		TotalUsers:       len(state.Users),
		MostPopularGenre: mostPopularGenre(state.Books),
	}

	for _, book := range state.Books {
		if book.Available {
			stats.AvailableBooks++
		}
	}

	year, month, _ := query.Now.Date()
	borrowers := make(map[core.UserIDString]struct{})

	for _, loan := range state.Loans {
		if loan.IsActive() {
			stats.ActiveLoans++
			borrowers[loan.UserID] = struct{}{}
		}

		if loan.IsOverdue(query.Now) {
			stats.OverdueLoans++
		}

		loanYear, loanMonth, _ := loan.LoanDate.Time().Date()
		if loanYear == year && loanMonth == month {
			stats.MonthlyLoans++
		}
	}

	stats.ActiveUsers = len(borrowers)

	for _, notification := range state.Notifications {
		if !notification.Read {
			stats.UnreadNotifications++
		}
	}

	if stats.TotalUsers > 0 {
		stats.AverageLoansPerUser = ratio(len(state.Loans), stats.TotalUsers, 1)
	}

	if stats.TotalBooks > 0 {
		stats.OverdueRate = ratio(stats.OverdueLoans, stats.TotalBooks, 100)
	}

	return stats
}

// mostPopularGenre returns the genre with the most books; ties go to the genre seen first.
func mostPopularGenre(books []core.Book) string {
	counts := make(map[string]int)
	best, bestCount := NoGenre, 0

	for _, book := range books {
		counts[book.Genre]++
		if counts[book.Genre] > bestCount {
			best, bestCount = book.Genre, counts[book.Genre]
		}
	}

	return best
}

func ratio(numerator, denominator, scale int) float64 {
	return decimal.NewFromInt(int64(numerator)).
		Mul(decimal.NewFromInt(int64(scale))).
		Div(decimal.NewFromInt(int64(denominator))).
		Round(1).
		InexactFloat64()
}
