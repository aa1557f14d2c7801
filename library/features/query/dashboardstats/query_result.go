package dashboardstats

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

// NoGenre is reported as MostPopularGenre when the catalog is empty.
const NoGenre = "N/A"

// DashboardStats holds the dashboard counters.
type DashboardStats struct {
	TotalBooks          int           `json:"totalBooks"`
	AvailableBooks      int           `json:"availableBooks"`
	TotalUsers          int           `json:"totalUsers"`
	ActiveUsers         int           `json:"activeUsers"`
	ActiveLoans         int           `json:"activeLoans"`
	OverdueLoans        int           `json:"overdueLoans"`
	MonthlyLoans        int           `json:"monthlyLoans"`
	AverageLoansPerUser float64       `json:"avgLoansPerUser"`
	OverdueRate         float64       `json:"overdueRate"`
	MostPopularGenre    string        `json:"mostPopularGenre"`
	UnreadNotifications int           `json:"unreadNotifications"`
	Version             shell.Version `json:"version"`
}

// GetVersion implements shell.QueryResult.
func (r DashboardStats) GetVersion() shell.Version {
	return r.Version
}
