package monthlytrend

import (
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

// MonthLoans is the number of loans started in one calendar month.
type MonthLoans struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Label string     `json:"label"`
	Loans int        `json:"loans"`
}

// MonthlyTrend lists the months of the window, oldest first.
type MonthlyTrend struct {
	Months  []MonthLoans  `json:"months"`
	Version shell.Version `json:"version"`
}

// GetVersion implements shell.QueryResult.
func (r MonthlyTrend) GetVersion() shell.Version {
	return r.Version
}
