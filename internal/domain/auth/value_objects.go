package auth

import (
	"errors"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/pkg/password"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	pw, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: email, password: pw}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }

// Verify checks the plaintext password against a stored bcrypt hash.
// Every mismatch collapses to ErrInvalidCredentials.
func (c Credentials) Verify(passwordHash string) error {
	if err := password.ComparePassword(passwordHash, c.password.Value()); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
