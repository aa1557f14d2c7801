package returnbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/command/returnbook"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func Test_Decide_Success_ClosesTheLoanAndFreesTheBook(t *testing.T) {
	// arrange
	now := time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC)

	// act
	result := returnbook.Decide(core.NewState(core.SeedData()), returnbook.BuildCommand("1", now))

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Actions, 2)

	loan := result.Actions[0].(core.UpdateLoan).Loan
	assert.Equal(t, core.LoanStatusReturned, loan.Status)
	require.NotNil(t, loan.ReturnDate)
	assert.Equal(t, "2024-01-30", loan.ReturnDate.String())

	book := result.Actions[1].(core.UpdateBook).Book
	assert.Equal(t, "2", book.ID)
	assert.True(t, book.Available)

	assert.Equal(t, "Updated loan status: returned", result.Audit.Details)
	assert.Equal(t, core.AuditUpdate, result.Audit.Action)
}

func Test_Decide_Success_WhenTheBookWasDeleted(t *testing.T) {
	// arrange
	state := core.NewState(core.SeedData())
	state, err := core.Apply(state, core.DeleteBook{BookID: "2"})
	require.NoError(t, err)

	// act
	result := returnbook.Decide(state, returnbook.BuildCommand("1", time.Now()))

	// assert
	require.NoError(t, result.HasError())
	assert.Len(t, result.Actions, 1, "Should only update the loan")
}

func Test_Decide_Error_WhenReturnedTwice(t *testing.T) {
	// arrange
	state := core.NewState(core.SeedData())
	first := returnbook.Decide(state, returnbook.BuildCommand("1", time.Now()))
	state, err := core.ApplyAll(state, first.Actions...)
	require.NoError(t, err)

	// act
	second := returnbook.Decide(state, returnbook.BuildCommand("1", time.Now()))

	// assert
	assert.ErrorIs(t, second.HasError(), core.ErrAlreadyReturned)
}

func Test_Decide_Error_WhenLoanDoesNotExist(t *testing.T) {
	result := returnbook.Decide(core.NewState(core.SeedData()), returnbook.BuildCommand("404", time.Now()))

	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
}
