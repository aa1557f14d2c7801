package genredistribution_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/query/genredistribution"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

func Test_Project_CountsGenresInFirstSeenOrder(t *testing.T) {
	// arrange
	state := core.NewState(core.LibraryData{Books: []core.Book{
		{ID: "1", Genre: "Fantasy"},
		{ID: "2", Genre: "Tech"},
		{ID: "3", Genre: "Fantasy"},
		{ID: "4", Genre: "History"},
	}})

	// act
	result := genredistribution.Project(state, genredistribution.BuildQuery())

	// assert
	assert.Equal(t, []genredistribution.GenreCount{
		{Genre: "Fantasy", Count: 2},
		{Genre: "Tech", Count: 1},
		{Genre: "History", Count: 1},
	}, result.Genres)
	assert.Equal(t, 0, result.CountOf("Poetry"))
}

func Test_Project_ReturnsNoGenres_WhenCatalogIsEmpty(t *testing.T) {
	result := genredistribution.Project(core.NewState(core.LibraryData{}), genredistribution.BuildQuery())

	assert.Empty(t, result.Genres)
	assert.NotNil(t, result.Genres)
}

func Test_QueryHandler_ReportsTheStoreVersion(t *testing.T) {
	// arrange
	store := shell.NewStoreFromLibraryData(core.SeedData())
	_, err := store.Dispatch(core.AddNotification{Notification: core.Notification{ID: "n-1"}})
	require.NoError(t, err)

	handler := genredistribution.NewQueryHandler(store)

	// act
	result, err := handler.Handle(context.Background(), genredistribution.BuildQuery())

	// assert
	require.NoError(t, err)
	assert.Equal(t, shell.Version(1), result.GetVersion())
	assert.Equal(t, 1, result.CountOf("Narrativa Storica"))
	assert.Equal(t, 2, result.CountOf("Programmazione"))
}
