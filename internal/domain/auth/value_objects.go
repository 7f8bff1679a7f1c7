package auth

import (
	"event-booking/internal/domain/user"
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is the validated input of a self-service sign-up.
type Registration struct {
	name        user.Name
	credentials Credentials
}

func NewRegistration(nameStr, emailStr, passwordStr string) (Registration, error) {
	name, err := user.NewName(nameStr)
	if err != nil {
		return Registration{}, err
	}

	credentials, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}

	return Registration{name: name, credentials: credentials}, nil
}

func (r Registration) Name() user.Name          { return r.name }
func (r Registration) Credentials() Credentials { return r.credentials }
