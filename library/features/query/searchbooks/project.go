package searchbooks

import (
	"strings"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

// Project returns the books matching every filter of the query.
func Project(state core.State, query Query) SearchResult {
	term := strings.ToLower(query.Term)
	isbnTerm := core.NormalizeISBN(query.Term)
	books := make([]core.Book, 0)

	for _, book := range state.Books {
		if query.Available != nil && book.Available != *query.Available {
			continue
		}

		if query.Genre != "" && !strings.EqualFold(book.Genre, query.Genre) {
			continue
		}

		if term != "" && !matchesTerm(book, term, isbnTerm) {
			continue
		}

		books = append(books, book)
	}

	return SearchResult{Books: books}
}

func matchesTerm(book core.Book, term string, isbnTerm core.ISBNString) bool {
	fields := []string{
		book.Title,
		book.Author,
		book.Genre,
		book.Category,
		book.Publisher,
		book.Barcode,
		book.ShelfLocation,
	}
	fields = append(fields, book.Tags...)

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return isbnTerm != "" && strings.Contains(core.NormalizeISBN(book.ISBN), isbnTerm)
}
