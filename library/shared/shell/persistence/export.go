package persistence

import (
	"errors"
	"fmt"
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const exportFileNameLayout = "2006-01-02"

// ExportFile is a pretty-printed backup document together with its suggested file name.
type ExportFile struct {
	FileName string
	Content  []byte
}

// Export builds the backup document {books, users, loans, bookReviews, bookReservations, auditLogs}.
// Notifications are not exported.
func Export(state core.State, now time.Time) (ExportFile, error) {
	document := exportDocument{
		Books:            nonNilSlice(state.Books),
		Users:            nonNilSlice(state.Users),
		Loans:            nonNilSlice(state.Loans),
		BookReviews:      nonNilSlice(state.BookReviews),
		BookReservations: nonNilSlice(state.BookReservations),
		AuditLogs:        nonNilSlice(state.AuditLogs),
	}

	content, err := jsonAPI.MarshalIndent(document, "", "  ")
	if err != nil {
		return ExportFile{}, fmt.Errorf("encoding export document: %w", err)
	}

	return ExportFile{
		FileName: ExportFileName(now),
		Content:  content,
	}, nil
}

// ExportFileName returns biblioteca-backup-YYYY-MM-DD.json for the UTC date of now.
func ExportFileName(now time.Time) string {
	return "biblioteca-backup-" + now.UTC().Format(exportFileNameLayout) + ".json"
}

// Import decodes an export or snapshot document and keeps only books, users and loans.
// Reviews, reservations, audit logs and unknown fields are ignored.
func Import(raw []byte) (core.LibraryData, error) {
	var document importDocument

	if err := jsonAPI.Unmarshal(raw, &document); err != nil {
		return core.LibraryData{}, errors.Join(core.ErrInvalidImport, err)
	}

	if document.Books == nil || document.Users == nil || document.Loans == nil {
		return core.LibraryData{}, errors.Join(core.ErrInvalidImport, errMissingCollection)
	}

	return withNonNilCollections(core.LibraryData{
		Books: *document.Books,
		Users: *document.Users,
		Loans: *document.Loans,
	}), nil
}
