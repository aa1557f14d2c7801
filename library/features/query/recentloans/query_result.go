package recentloans

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

// LoanActivity is a loan with its book title and user name resolved.
// Title and UserName are empty when the referenced record no longer exists.
type LoanActivity struct {
	Loan      core.Loan `json:"loan"`
	BookTitle string    `json:"bookTitle"`
	UserName  string    `json:"userName"`
}

// RecentLoans lists loans newest first.
type RecentLoans struct {
	Loans   []LoanActivity `json:"loans"`
	Version shell.Version  `json:"version"`
}

// GetVersion implements shell.QueryResult.
func (r RecentLoans) GetVersion() shell.Version {
	return r.Version
}
