package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
)

var phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

// ContactValidator normalizes and validates a raw contact value.
// One implementation is chosen at deployment time by the contact mode.
type ContactValidator interface {
	Mode() domain.ContactMode
	Normalize(raw string) (domain.Contact, error)
}

// NewContactValidator returns the validator for mode
func NewContactValidator(mode domain.ContactMode) (ContactValidator, error) {
	switch mode {
	case domain.ContactModePhone:
		return PhoneValidator{}, nil
	case domain.ContactModeEmail:
		return NewEmailValidator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidContactMode, mode)
	}
}

// PhoneValidator accepts ten-digit mobile numbers starting with 6-9
type PhoneValidator struct{}

func (PhoneValidator) Mode() domain.ContactMode {
	return domain.ContactModePhone
}

func (PhoneValidator) Normalize(raw string) (domain.Contact, error) {
	phone := strings.TrimSpace(raw)
	if !phoneRegex.MatchString(phone) {
		return "", fmt.Errorf("%w: phone number must be 10 digits starting with 6-9", domain.ErrInvalidContact)
	}
	return domain.Contact(phone), nil
}

// EmailValidator accepts RFC 5322 addresses (go-playground "email" rule)
type EmailValidator struct {
	validate *validator.Validate
}

func NewEmailValidator() EmailValidator {
	return EmailValidator{validate: validator.New()}
}

func (EmailValidator) Mode() domain.ContactMode {
	return domain.ContactModeEmail
}

func (v EmailValidator) Normalize(raw string) (domain.Contact, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if len(email) > domain.MaxContactLength {
		return "", fmt.Errorf("%w: email is too long", domain.ErrInvalidContact)
	}
	if err := v.validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("%w: invalid email address", domain.ErrInvalidContact)
	}
	return domain.Contact(email), nil
}
