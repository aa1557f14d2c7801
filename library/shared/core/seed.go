package core

import (
	"github.com/shopspring/decimal"
)

// SeedData returns the example dataset used to initialize an empty store.
// Every call builds fresh slices, so callers may keep or modify the result.
func SeedData() LibraryData {
	return LibraryData{
		Books: []Book{
			{
				ID:            "1",
				Title:         "Il Nome della Rosa",
				Author:        "Umberto Eco",
				ISBN:          "978-88-452-3207-2",
				Genre:         "Narrativa Storica",
				Year:          1980,
				Available:     true,
				CreatedAt:     NewDate(2024, 1, 15),
				Category:      "Letteratura",
				DeweyCode:     "853.914",
				Publisher:     "Bompiani",
				Language:      "Italiano",
				Pages:         672,
				Price:         amount("18.5"),
				Value:         amount("15"),
				Condition:     ConditionGood,
				Barcode:       "LIB001",
				ShelfLocation: "A-15-3",
				Description:   "Un giallo storico ambientato in un monastero medievale. Un capolavoro della letteratura italiana.",
				Tags:          []string{"mistero", "storico", "medievale", "filosofia"},
				Rating:        4.5,
				TotalRatings:  127,
			},
			{
				ID:            "2",
				Title:         "Clean Code",
				Author:        "Robert C. Martin",
				ISBN:          "978-0-13-235088-4",
				Genre:         "Programmazione",
				Year:          2008,
				Available:     false,
				CreatedAt:     NewDate(2024, 1, 16),
				Category:      "Informatica",
				DeweyCode:     "005.1",
				Publisher:     "Prentice Hall",
				Language:      "Inglese",
				Pages:         464,
				Price:         amount("45"),
				Value:         amount("35"),
				Condition:     ConditionNew,
				Barcode:       "LIB002",
				ShelfLocation: "C-5-2",
				Description:   "Una guida completa per scrivere codice pulito e mantenibile.",
				Tags:          []string{"programmazione", "best-practices", "software-engineering"},
				Rating:        4.7,
				TotalRatings:  89,
			},
			{
				ID:            "3",
				Title:         "JavaScript: The Good Parts",
				Author:        "Douglas Crockford",
				ISBN:          "978-0-596-51774-8",
				Genre:         "Programmazione",
				Year:          2008,
				Available:     true,
				CreatedAt:     NewDate(2024, 1, 17),
				Category:      "Informatica",
				DeweyCode:     "005.133",
				Publisher:     "O'Reilly",
				Language:      "Inglese",
				Pages:         176,
				Price:         amount("35"),
				Value:         amount("28"),
				Condition:     ConditionGood,
				Barcode:       "LIB003",
				ShelfLocation: "C-5-1",
				Description:   "Un'analisi delle parti migliori del linguaggio JavaScript.",
				Tags:          []string{"javascript", "programmazione", "web-development"},
				Rating:        4.3,
				TotalRatings:  156,
			},
		},
		Users: []User{
			{
				ID:               "1",
				Name:             "Mario",
				Surname:          "Rossi",
				Email:            "mario.rossi@email.com",
				CardNumber:       "LIB001",
				RegistrationDate: NewDate(2024, 1, 10),
			},
			{
				ID:               "2",
				Name:             "Anna",
				Surname:          "Verdi",
				Email:            "anna.verdi@email.com",
				CardNumber:       "LIB002",
				RegistrationDate: NewDate(2024, 1, 12),
			},
		},
		Loans: []Loan{
			{
				ID:       "1",
				BookID:   "2",
				UserID:   "1",
				LoanDate: NewDate(2024, 1, 18),
				DueDate:  NewDate(2024, 2, 1),
				Status:   LoanStatusActive,
			},
		},
	}
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
