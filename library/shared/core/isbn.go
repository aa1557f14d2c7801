package core

import (
	"strings"
)

// NormalizeISBN strips separators so that "978-0-13-235088-4" and "9780132350884" compare equal.
func NormalizeISBN(isbn ISBNString) ISBNString {
	var b strings.Builder

	for _, r := range isbn {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'x' || r == 'X':
			b.WriteRune('X')
		}
	}

	return b.String()
}

// ValidISBN reports whether isbn is an ISBN-10 or ISBN-13 with a correct check digit.
// Hyphens and spaces are ignored.
func ValidISBN(isbn ISBNString) bool {
	clean := strings.NewReplacer("-", "", " ", "").Replace(isbn)

	switch len(clean) {
	case 10:
		return validISBN10(clean)
	case 13:
		return validISBN13(clean)
	default:
		return false
	}
}

func validISBN10(isbn string) bool {
	sum := 0

	for i := range 9 {
		d, ok := digit(isbn[i])
		if !ok {
			return false
		}

		sum += d * (10 - i)
	}

	check, ok := digit(isbn[9])
	if isbn[9] == 'X' || isbn[9] == 'x' {
		check, ok = 10, true
	}

	return ok && (sum+check)%11 == 0
}

func validISBN13(isbn string) bool {
	sum := 0

	for i := range 12 {
		d, ok := digit(isbn[i])
		if !ok {
			return false
		}

		if i%2 == 0 {
			sum += d
		} else {
			sum += 3 * d
		}
	}

	check, ok := digit(isbn[12])

	return ok && check == (10-sum%10)%10
}

func digit(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}

	return int(c - '0'), true
}
