package core

import (
	"fmt"
)

const (
	// MinGeneratedCardNumber and MaxGeneratedCardNumber bound generated card numbers.
	MinGeneratedCardNumber = 1
	MaxGeneratedCardNumber = 9999
)

// User is a library member.
type User struct {
	ID               UserIDString `json:"id"`
	Name             string       `json:"name"`
	Surname          string       `json:"surname"`
	Email            string       `json:"email"`
	CardNumber       string       `json:"cardNumber"`
	RegistrationDate Date         `json:"registrationDate"`
}

// EntityID implements Entity.
func (u User) EntityID() string {
	return u.ID
}

// FullName returns "name surname".
func (u User) FullName() string {
	return u.Name + " " + u.Surname
}

// FormatCardNumber renders a generated card number like LIB0042.
func FormatCardNumber(n int) string {
	return fmt.Sprintf("LIB%04d", n)
}
