package password

import (
	"event-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// HashPassword returns a bcrypt hash of plain. Inputs longer than 72 bytes are rejected by bcrypt.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed on a mismatch and a marked error when hash is not a bcrypt hash.
func ComparePassword(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "malformed password hash")
	}
}
