package monthlytrend_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/query/monthlytrend"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func Test_Project_ReturnsSixMonthsOldestFirst_AcrossAYearBoundary(t *testing.T) {
	// arrange
	now := time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)
	state := core.NewState(core.LibraryData{Loans: []core.Loan{
		givenLoan(t, "1", core.NewDate(2023, 10, 1)),
		givenLoan(t, "2", core.NewDate(2024, 1, 18)),
		givenLoan(t, "3", core.NewDate(2024, 1, 31)),
		givenLoan(t, "4", core.NewDate(2024, 3, 31)),
		givenLoan(t, "5", core.NewDate(2023, 9, 30)),
	}})

	// act
	trend := monthlytrend.Project(state, monthlytrend.BuildQuery(now))

	// assert
	require.Len(t, trend.Months, 6)

	labels := make([]string, 0, len(trend.Months))
	loans := make([]int, 0, len(trend.Months))
	for _, month := range trend.Months {
		labels = append(labels, month.Label)
		loans = append(loans, month.Loans)
	}

	assert.Equal(t, []string{"Oct 2023", "Nov 2023", "Dec 2023", "Jan 2024", "Feb 2024", "Mar 2024"}, labels)
	assert.Equal(t, []int{1, 0, 0, 2, 0, 1}, loans)
	assert.Equal(t, 2023, trend.Months[0].Year)
	assert.Equal(t, time.October, trend.Months[0].Month)
}

func Test_Project_UsesTheDefaultWindow_WhenMonthsIsNotPositive(t *testing.T) {
	trend := monthlytrend.Project(core.NewState(core.LibraryData{}), monthlytrend.Query{Now: time.Now()})

	assert.Len(t, trend.Months, monthlytrend.DefaultMonths)
}

func givenLoan(t *testing.T, id string, loanDate core.Date) core.Loan {
	t.Helper()

	return core.Loan{
		ID:       id,
		BookID:   "b-" + id,
		UserID:   "u-1",
		LoanDate: loanDate,
		DueDate:  loanDate.AddDays(core.DefaultLoanDays),
		Status:   core.LoanStatusReturned,
	}
}
