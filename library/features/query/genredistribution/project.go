package genredistribution

import (
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Project counts books per genre.
func Project(state core.State, _ Query) GenreDistribution {
	index := make(map[string]int)
	genres := make([]GenreCount, 0)

	for _, book := range state.Books {
		position, seen := index[book.Genre]
		if !seen {
			index[book.Genre] = len(genres)
			genres = append(genres, GenreCount{Genre: book.Genre, Count: 1})

			continue
		}

		genres[position].Count++
	}

	return GenreDistribution{Genres: genres}
}
