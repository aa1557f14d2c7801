package overdueloans

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

// OverdueLoan is an overdue loan with its book title and user name resolved.
type OverdueLoan struct {
	Loan        core.Loan `json:"loan"`
	BookTitle   string    `json:"bookTitle"`
	UserName    string    `json:"userName"`
	CardNumber  string    `json:"cardNumber"`
	DaysOverdue int       `json:"daysOverdue"`
}

// OverdueLoans lists overdue loans, oldest due date first.
type OverdueLoans struct {
	Loans   []OverdueLoan `json:"loans"`
	Version shell.Version `json:"version"`
}

// GetVersion implements shell.QueryResult.
func (r OverdueLoans) GetVersion() shell.Version {
	return r.Version
}
