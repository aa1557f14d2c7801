package addbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/command/addbook"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

func Test_Decide_Success_WhenInputIsComplete(t *testing.T) {
	// arrange
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	command := addbook.BuildCommand(givenBook(t), now)

	// act
	result := addbook.Decide(core.NewState(core.SeedData()), command)

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Actions, 1)

	added, ok := result.Actions[0].(core.AddBook)
	require.True(t, ok)
	assert.True(t, added.Book.Available)
	assert.Equal(t, "2024-05-02", added.Book.CreatedAt.String())
	assert.Equal(t, []string{"classic", "sf"}, added.Book.Tags)

	require.NotNil(t, result.Audit)
	assert.Equal(t, core.AuditCreate, result.Audit.Action)
	assert.Equal(t, core.EntityBook, result.Audit.EntityType)
	assert.Equal(t, "b-100", result.Audit.EntityID)
	assert.Equal(t, "Added book: Dune", result.Audit.Details)
	assert.Equal(t, now, result.Audit.Timestamp)
}

func Test_Decide_Error_WhenRequiredFieldsAreMissing(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*core.Book)
	}{
		{name: "title", mutate: func(b *core.Book) { b.Title = "  " }},
		{name: "author", mutate: func(b *core.Book) { b.Author = "" }},
		{name: "isbn", mutate: func(b *core.Book) { b.ISBN = "" }},
		{name: "condition", mutate: func(b *core.Book) { b.Condition = "shiny" }},
		{name: "rating", mutate: func(b *core.Book) { b.Rating = 6 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			book := givenBook(t)
			tc.mutate(&book)

			result := addbook.Decide(core.NewState(core.SeedData()), addbook.BuildCommand(book, time.Now()))

			assert.ErrorIs(t, result.HasError(), core.ErrInvalidInput)
			assert.Empty(t, result.Actions)
		})
	}
}

func Test_Decide_Idempotent_WhenBookAlreadyExists(t *testing.T) {
	// arrange
	book := givenBook(t)
	book.ID = "1"

	// act
	result := addbook.Decide(core.NewState(core.SeedData()), addbook.BuildCommand(book, time.Now()))

	// assert
	assert.True(t, result.IsIdempotent())
}

func givenBook(t *testing.T) core.Book {
	t.Helper()

	return core.Book{
		ID:        "b-100",
		Title:     " Dune ",
		Author:    "Frank Herbert",
		ISBN:      "978-0-441-17271-9",
		Genre:     "Fantascienza",
		Category:  "Letteratura",
		Year:      1965,
		Language:  "Inglese",
		Condition: core.ConditionNew,
		Tags:      []string{"classic", " sf", "classic"},
	}
}
