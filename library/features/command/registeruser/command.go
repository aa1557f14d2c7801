package registeruser

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
)

const (
	commandType = "RegisterUser"
)

// Command represents the intent to register a library member.
type Command struct {
	User core.User
	// CardNumberStart is where card number generation starts probing, between
	// core.MinGeneratedCardNumber and core.MaxGeneratedCardNumber.
	CardNumberStart int
	OccurredAt      core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with trimmed fields and a random card number start.
func BuildCommand(user core.User, occurredAt time.Time) Command {
	user.Name = strings.TrimSpace(user.Name)
	user.Surname = strings.TrimSpace(user.Surname)
	user.Email = strings.TrimSpace(user.Email)
	user.CardNumber = strings.TrimSpace(user.CardNumber)

	span := core.MaxGeneratedCardNumber - core.MinGeneratedCardNumber + 1

	return Command{
		User:            user,
		CardNumberStart: core.MinGeneratedCardNumber + rand.IntN(span), //nolint:gosec // card numbers are not secrets
		OccurredAt:      core.ToOccurredAt(occurredAt),
	}
}
