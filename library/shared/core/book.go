package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BookCondition is the physical state of a book copy.
type BookCondition string

const (
	ConditionNew     BookCondition = "new"
	ConditionGood    BookCondition = "good"
	ConditionFair    BookCondition = "fair"
	ConditionDamaged BookCondition = "damaged"
	ConditionRepair  BookCondition = "repair"
)

// Valid reports whether c is one of the known conditions.
func (c BookCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionDamaged, ConditionRepair:
		return true
	default:
		return false
	}
}

// Book is a catalog entry. Available is stored, and is false iff an active loan references the book.
type Book struct {
	ID              BookIDString     `json:"id"`
	Title           string           `json:"title"`
	Author          string           `json:"author"`
	ISBN            ISBNString       `json:"isbn"`
	Genre           string           `json:"genre"`
	Category        string           `json:"category"`
	DeweyCode       string           `json:"deweyCode,omitempty"`
	Publisher       string           `json:"publisher,omitempty"`
	Year            int              `json:"year"`
	Language        string           `json:"language"`
	Pages           int              `json:"pages,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Value           *decimal.Decimal `json:"value,omitempty"`
	Condition       BookCondition    `json:"condition"`
	Barcode         string           `json:"barcode,omitempty"`
	ShelfLocation   string           `json:"shelfLocation,omitempty"`
	Description     string           `json:"description,omitempty"`
	Tags            []string         `json:"tags"`
	Rating          float64          `json:"rating"`
	TotalRatings    int              `json:"totalRatings"`
	Available       bool             `json:"available"`
	CreatedAt       Date             `json:"createdAt"`
	LastMaintenance *Date            `json:"lastMaintenance,omitempty"`
}

// EntityID implements Entity.
func (b Book) EntityID() string {
	return b.ID
}

// WithAvailability returns a copy of the book with Available set.
func (b Book) WithAvailability(available bool) Book {
	b.Available = available
	return b
}

// WithRating returns a copy of the book with rating folded into the running average.
// The average is rounded to two decimals.
func (b Book) WithRating(rating int) Book {
	total := decimal.NewFromFloat(b.Rating).Mul(decimal.NewFromInt(int64(b.TotalRatings)))
	total = total.Add(decimal.NewFromInt(int64(rating)))

	b.TotalRatings++
	b.Rating = total.Div(decimal.NewFromInt(int64(b.TotalRatings))).Round(2).InexactFloat64()

	return b
}

// NormalizeTags trims tags and drops empty ones and duplicates, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		if _, ok := seen[tag]; ok {
			continue
		}

		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	return normalized
}
