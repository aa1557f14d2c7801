package popularbooks

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

// RankedBook is a book together with the number of loans that reference it.
type RankedBook struct {
	BookID    core.BookIDString `json:"bookId"`
	Title     string            `json:"title"`
	Author    string            `json:"author"`
	LoanCount int               `json:"loanCount"`
}

// PopularBooks is the ranking, most lent first.
type PopularBooks struct {
	Books   []RankedBook  `json:"books"`
	Version shell.Version `json:"version"`
}

// GetVersion implements shell.QueryResult.
func (r PopularBooks) GetVersion() shell.Version {
	return r.Version
}
