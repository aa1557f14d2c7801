package main

import (
	"github.com/spf13/cobra"

	"github.com/bibliotech-pro/bibliotech-go/library/features/query/dashboardstats"
	"github.com/bibliotech-pro/bibliotech-go/library/features/query/genredistribution"
	"github.com/bibliotech-pro/bibliotech-go/library/features/query/monthlytrend"
	"github.com/bibliotech-pro/bibliotech-go/library/features/query/overdueloans"
	"github.com/bibliotech-pro/bibliotech-go/library/features/query/popularbooks"
	"github.com/bibliotech-pro/bibliotech-go/library/features/query/recentloans"
	"github.com/bibliotech-pro/bibliotech-go/library/features/query/searchbooks"
)

func (c *cli) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := runQuery[dashboardstats.Query, dashboardstats.DashboardStats](cmd.Context(), c.app,
				dashboardstats.NewQueryHandler(c.app.store),
				dashboardstats.BuildQuery(c.app.now()))
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func (c *cli) genresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "Show the number of books per genre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := runQuery[genredistribution.Query, genredistribution.GenreDistribution](cmd.Context(), c.app,
				genredistribution.NewQueryHandler(c.app.store),
				genredistribution.BuildQuery())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result.Genres)
		},
	}
}

func (c *cli) trendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show loans per month for the last six months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := runQuery[monthlytrend.Query, monthlytrend.MonthlyTrend](cmd.Context(), c.app,
				monthlytrend.NewQueryHandler(c.app.store),
				monthlytrend.BuildQuery(c.app.now()))
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result.Months)
		},
	}
}

func (c *cli) popularCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Rank books by number of loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := runQuery[popularbooks.Query, popularbooks.PopularBooks](cmd.Context(), c.app,
				popularbooks.NewQueryHandler(c.app.store),
				popularbooks.BuildQuery(limit))
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result.Books)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", popularbooks.DefaultLimit, "maximum number of books")

	return cmd
}

func (c *cli) recentCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := runQuery[recentloans.Query, recentloans.RecentLoans](cmd.Context(), c.app,
				recentloans.NewQueryHandler(c.app.store),
				recentloans.BuildQuery(limit))
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result.Loans)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", recentloans.DefaultLimit, "maximum number of loans")

	return cmd
}

func (c *cli) overdueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List active loans past their due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := runQuery[overdueloans.Query, overdueloans.OverdueLoans](cmd.Context(), c.app,
				overdueloans.NewQueryHandler(c.app.store),
				overdueloans.BuildQuery(c.app.now()))
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result.Loans)
		},
	}
}

func (c *cli) searchCommand() *cobra.Command {
	var (
		genre     string
		available bool
	)

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}

			opts := []searchbooks.Option{searchbooks.WithGenre(genre)}
			if cmd.Flags().Changed("available") {
				opts = append(opts, searchbooks.WithAvailability(available))
			}

			result, err := runQuery[searchbooks.Query, searchbooks.SearchResult](cmd.Context(), c.app,
				searchbooks.NewQueryHandler(c.app.store),
				searchbooks.BuildQuery(term, opts...))
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result.Books)
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "only books of this genre")
	cmd.Flags().BoolVar(&available, "available", false, "only available (true) or lent (false) books")

	return cmd
}
