// Package password represents a clear text password in the system.
package password

import "fmt"

// Password represents a clear text password ready for hashing. The value is
// never logged or marshalled.
type Password struct {
	value string
}

// String masks the password value.
func (p Password) String() string {
	return "**********"
}

// Reveal returns the clear text value for hashing or comparison.
func (p Password) Reveal() string {
	return p.value
}

// =============================================================================

// Parse parses the string value and returns a password if the value complies
// with the rules for a password.
func Parse(value string) (Password, error) {
	// bcrypt only considers the first 72 bytes of input.
	if len(value) < 8 || len(value) > 72 {
		return Password{}, fmt.Errorf("password must be between 8 and 72 characters")
	}

	return Password{value}, nil
}

// MustParse parses the string value and returns a password if the value
// complies with the rules for a password. If an error occurs the function
// panics.
func MustParse(value string) Password {
	password, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return password
}
