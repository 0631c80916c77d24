package authapp

import (
	"encoding/json"
	"fmt"

	"github.com/stayvie/floorplan/app/sdk/errs"
	"github.com/stayvie/floorplan/business/domain/userbus"
)

// User represents the authenticated user returned by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Encode implements the web.Encoder interface.
func (u User) Encode() ([]byte, string, error) {
	data, err := json.Marshal(u)
	return data, "application/json", err
}

func toAppUser(bus userbus.User) User {
	return User{
		ID:    bus.ID.String(),
		Name:  bus.Name.String(),
		Email: bus.Email.Address,
		Role:  bus.Role.String(),
	}
}

// =============================================================================

// Login defines the data needed to authenticate.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Decode implements the web.Decoder interface.
func (app *Login) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app Login) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

// =============================================================================

// Token carries the signed JWT and the user it represents.
type Token struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Encode implements the web.Encoder interface.
func (t Token) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}
