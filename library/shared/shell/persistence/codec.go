package persistence

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// EncodeLibraryData serializes the persisted document {books, users, loans}.
func EncodeLibraryData(data core.LibraryData) ([]byte, error) {
	return jsonAPI.Marshal(withNonNilCollections(data))
}

// DecodeLibraryData parses a persisted document. Missing collections decode as empty.
func DecodeLibraryData(raw []byte) (core.LibraryData, error) {
	var data core.LibraryData

	if err := jsonAPI.Unmarshal(raw, &data); err != nil {
		return core.LibraryData{}, err
	}

	return withNonNilCollections(data), nil
}

// exportDocument is the shape written by Export; it is a superset of the persisted document.
type exportDocument struct {
	Books            []core.Book            `json:"books"`
	Users            []core.User            `json:"users"`
	Loans            []core.Loan            `json:"loans"`
	BookReviews      []core.BookReview      `json:"bookReviews"`
	BookReservations []core.BookReservation `json:"bookReservations"`
	AuditLogs        []core.AuditLog        `json:"auditLogs"`
}

// importDocument accepts both export and snapshot documents and detects missing collections.
type importDocument struct {
	Books *[]core.Book `json:"books"`
	Users *[]core.User `json:"users"`
	Loans *[]core.Loan `json:"loans"`
}

var errMissingCollection = errors.New("document must contain books, users and loans")

func withNonNilCollections(data core.LibraryData) core.LibraryData {
	if data.Books == nil {
		data.Books = []core.Book{}
	}

	if data.Users == nil {
		data.Users = []core.User{}
	}

	if data.Loans == nil {
		data.Loans = []core.Loan{}
	}

	return data
}

func nonNilSlice[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
