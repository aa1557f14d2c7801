package searchbooks

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

// SearchResult holds the matching books in catalog order.
type SearchResult struct {
	Books   []core.Book   `json:"books"`
	Version shell.Version `json:"version"`
}

// GetVersion implements shell.QueryResult.
func (r SearchResult) GetVersion() shell.Version {
	return r.Version
}
