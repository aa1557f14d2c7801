package monthlytrend

import (
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const labelLayout = "Jan 2006"

// Project counts loans by loan date for each month of the window.
// A non-positive window length falls back to DefaultMonths.
func Project(state core.State, query Query) MonthlyTrend {
	window := query.Months
	if window <= 0 {
		window = DefaultMonths
	}

	year, month, _ := query.Now.UTC().Date()
	current := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	months := make([]MonthLoans, 0, window)
	index := make(map[time.Time]int, window)

	for offset := window - 1; offset >= 0; offset-- {
		first := current.AddDate(0, -offset, 0)
		index[first] = len(months)
		months = append(months, MonthLoans{
			Year:  first.Year(),
			Month: first.Month(),
			Label: first.Format(labelLayout),
		})
	}

	for _, loan := range state.Loans {
		loanYear, loanMonth, _ := loan.LoanDate.Time().Date()
		if position, ok := index[time.Date(loanYear, loanMonth, 1, 0, 0, 0, 0, time.UTC)]; ok {
			months[position].Loans++
		}
	}

	return MonthlyTrend{Months: months}
}
