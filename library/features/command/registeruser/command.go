package registeruser

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-backend/library/core"
)

const (
	commandType = "RegisterUser"
)

// Command represents the intent to create a login account.
// PasswordHash is computed by the caller, the plain password never reaches the handler.
type Command struct {
	Actor      core.Actor
	User       core.User
	Customer   core.Customer // only used for the CUSTOMER role
	OccurredAt core.OccurredAt
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// Profile carries the optional customer fields of a registration.
type Profile struct {
	FirstName string
	LastName  string
	Email     core.EmailString
}

// BuildCommand creates a new Command with freshly generated ids.
func BuildCommand(
	actor core.Actor,
	username string,
	passwordHash string,
	role core.Role,
	profile Profile,
	occurredAt time.Time,
) Command {

	command := Command{
		Actor: actor,
		User: core.User{
			ID:           uuid.New(),
			Username:     strings.TrimSpace(username),
			PasswordHash: passwordHash,
			Role:         core.Role(strings.ToUpper(strings.TrimSpace(string(role)))),
		},
		OccurredAt: core.ToOccurredAt(occurredAt),
	}

	if command.User.Role == core.RoleCustomer {
		command.Customer = core.Customer{
			ID:        uuid.New(),
			FirstName: strings.TrimSpace(profile.FirstName),
			LastName:  strings.TrimSpace(profile.LastName),
			Email:     strings.TrimSpace(profile.Email),
		}
		command.User.CustomerID = core.NullableID(command.Customer.ID)
	}

	return command
}

// Validate checks the input before anything is loaded.
func (c Command) Validate() error {
	fieldErrors := core.FieldErrors{}

	fieldErrors.ValidateRequired("username", c.User.Username)
	fieldErrors.ValidateRequired("password", c.User.PasswordHash)
	fieldErrors.ValidateRole("role", c.User.Role)

	if c.User.Role == core.RoleCustomer {
		fieldErrors.ValidateRequired("firstName", c.Customer.FirstName)
		fieldErrors.ValidateRequired("lastName", c.Customer.LastName)
		fieldErrors.ValidateOptionalEmail("email", c.Customer.Email)
	}

	return fieldErrors.Err()
}
