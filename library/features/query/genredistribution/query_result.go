package genredistribution

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
)

// GenreCount is the number of books in one genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// GenreDistribution lists genres in first-seen order.
type GenreDistribution struct {
	Genres  []GenreCount  `json:"genres"`
	Version shell.Version `json:"version"`
}

// GetVersion implements shell.QueryResult.
func (r GenreDistribution) GetVersion() shell.Version {
	return r.Version
}

// CountOf returns the count for genre, or 0 when no book has it.
func (r GenreDistribution) CountOf(genre string) int {
	for _, entry := range r.Genres {
		if entry.Genre == genre {
			return entry.Count
		}
	}

	return 0
}
