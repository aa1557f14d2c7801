package core

import (
	"time"
)

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// BookReview is a user's rating and comment for a book.
type BookReview struct {
	ID        ReviewIDString `json:"id"`
	BookID    BookIDString   `json:"bookId"`
	UserID    UserIDString   `json:"userId"`
	Rating    int            `json:"rating"`
	Review    string         `json:"review"`
	Timestamp time.Time      `json:"timestamp"`
}

// EntityID implements Entity.
func (r BookReview) EntityID() string {
	return r.ID
}
