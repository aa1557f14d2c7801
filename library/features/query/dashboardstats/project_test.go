package dashboardstats_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech-pro/bibliotech-go/library/features/query/dashboardstats"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/observable"
	"github.com/bibliotech-pro/bibliotech-go/testutil/observability"
)

func Test_Project_ComputesCountersForTheSeed(t *testing.T) {
	// arrange
	now := time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)
	state := core.NewState(core.SeedData())
	state.Notifications = []core.Notification{{ID: "n-1"}, {ID: "n-2", Read: true}}

	// act
	stats := dashboardstats.Project(state, dashboardstats.BuildQuery(now))

	// assert
	assert.Equal(t, 3, stats.TotalBooks)
	assert.Equal(t, 2, stats.AvailableBooks)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
	assert.Equal(t, 1, stats.ActiveLoans)
	assert.Equal(t, 0, stats.OverdueLoans)
	assert.Equal(t, 1, stats.MonthlyLoans)
	assert.InDelta(t, 0.5, stats.AverageLoansPerUser, 0.0001)
	assert.InDelta(t, 0.0, stats.OverdueRate, 0.0001)
	assert.Equal(t, "Programmazione", stats.MostPopularGenre)
	assert.Equal(t, 1, stats.UnreadNotifications)
}

func Test_Project_CountsOverdueLoans_AfterTheDueDate(t *testing.T) {
	// arrange
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// act
	stats := dashboardstats.Project(core.NewState(core.SeedData()), dashboardstats.BuildQuery(now))

	// assert
	assert.Equal(t, 1, stats.OverdueLoans)
	assert.Equal(t, 0, stats.MonthlyLoans)
	assert.InDelta(t, 33.3, stats.OverdueRate, 0.0001)
}

func Test_Project_ReturnsZeroRatios_WhenStateIsEmpty(t *testing.T) {
	stats := dashboardstats.Project(core.NewState(core.LibraryData{}), dashboardstats.BuildQuery(time.Now()))

	assert.Zero(t, stats.AverageLoansPerUser)
	assert.Zero(t, stats.OverdueRate)
	assert.Equal(t, dashboardstats.NoGenre, stats.MostPopularGenre)
}

func Test_QueryHandler_WithObservability_RecordsQueryMetrics(t *testing.T) {
	// arrange
	store := shell.NewStoreFromLibraryData(core.SeedData())
	metrics := observability.NewMetricsCollectorSpy(true)
	handler, err := observable.NewQueryWrapper[dashboardstats.Query, dashboardstats.DashboardStats](
		dashboardstats.NewQueryHandler(store),
		observable.WithQueryMetrics[dashboardstats.Query, dashboardstats.DashboardStats](metrics),
	)
	require.NoError(t, err)

	// act
	stats, err := handler.Handle(context.Background(), dashboardstats.BuildQuery(time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalBooks)
	assert.True(t, metrics.HasCounterRecordForMetric(shell.QueryHandlerCallsMetric).
		WithQueryType("DashboardStats").
		WithStatus(shell.StatusSuccess).
		Assert())
}

func Test_QueryHandler_Fails_WhenContextIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dashboardstats.NewQueryHandler(shell.NewStoreFromLibraryData(core.SeedData())).Handle(ctx, dashboardstats.BuildQuery(time.Now()))

	assert.ErrorIs(t, err, context.Canceled)
}
