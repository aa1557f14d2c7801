package overdueloans_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/query/overdueloans"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func Test_Project_ReturnsActiveLoansPastDue_OldestDueFirst(t *testing.T) {
	// arrange
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	state := core.NewState(core.SeedData())
	state.Loans = append(state.Loans,
		core.Loan{ID: "2", BookID: "1", UserID: "2", DueDate: core.NewDate(2024, 1, 20), Status: core.LoanStatusActive},
		core.Loan{ID: "3", BookID: "3", UserID: "2", DueDate: core.NewDate(2024, 1, 1), Status: core.LoanStatusReturned},
		core.Loan{ID: "4", BookID: "3", UserID: "2", DueDate: core.NewDate(2024, 4, 1), Status: core.LoanStatusActive},
	)

	// act
	result := overdueloans.Project(state, overdueloans.BuildQuery(now))

	// assert
	require.Len(t, result.Loans, 2)
	assert.Equal(t, "2", result.Loans[0].Loan.ID)
	assert.Equal(t, 41, result.Loans[0].DaysOverdue)
	assert.Equal(t, "Il Nome della Rosa", result.Loans[0].BookTitle)
	assert.Equal(t, "Anna Verdi", result.Loans[0].UserName)
	assert.Equal(t, "1", result.Loans[1].Loan.ID)
	assert.Equal(t, 29, result.Loans[1].DaysOverdue)
}

func Test_Project_ReturnsNothing_OnTheDueDateItself(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	result := overdueloans.Project(core.NewState(core.SeedData()), overdueloans.BuildQuery(now))

	assert.Empty(t, result.Loans)
}
