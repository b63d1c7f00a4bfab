package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/movie-keeper/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"

	// MinPasswordLength is the minimum accepted password length at
	// registration and login.
	MinPasswordLength = 6
)

// AuthValidator checks register and login payloads: a syntactically
// plausible email and a password of at least [MinPasswordLength] characters.
type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateCredentials(ctx, value.Email, value.Password, fields...)
	case *models.RegisterRequest:
		return v.validateCredentials(ctx, value.Email, value.Password, fields...)

	case models.LoginRequest:
		return v.validateCredentials(ctx, value.Email, value.Password, fields...)
	case *models.LoginRequest:
		return v.validateCredentials(ctx, value.Email, value.Password, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateCredentials(_ context.Context, email, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isPlausibleEmail(email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isPlausibleEmail applies a minimal structural check: one "@" with a
// non-empty local part and a domain containing a dot. Full RFC 5322
// validation is deliberately out of scope; the unique constraint in the
// store is the real gate.
func isPlausibleEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1 && !strings.ContainsAny(email, " \t")
}
