package popularbooks

import (
	"slices"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Project ranks books by descending loan count. Books without loans follow the lent ones.
func Project(state core.State, query Query) PopularBooks {
	limit := query.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	counts := make(map[core.BookIDString]int, len(state.Books))
	for _, loan := range state.Loans {
		counts[loan.BookID]++
	}

	ranked := make([]RankedBook, 0, len(state.Books))
	for _, book := range state.Books {
		ranked = append(ranked, RankedBook{
			BookID:    book.ID,
			Title:     book.Title,
			Author:    book.Author,
			LoanCount: counts[book.ID],
		})
	}

	slices.SortStableFunc(ranked, func(a, b RankedBook) int {
		return b.LoanCount - a.LoanCount
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return PopularBooks{Books: ranked}
}
