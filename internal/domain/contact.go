package domain

import (
	"fmt"
	"strings"
)

// Contact identifies the booker: a phone number or an email address,
// depending on the contact mode selected at deployment time
type Contact string

// ContactMode selects which kind of contact the deployment accepts
type ContactMode string

const (
	ContactModePhone ContactMode = "phone"
	ContactModeEmail ContactMode = "email"
)

// ParseContactMode validates a configured contact mode
func ParseContactMode(s string) (ContactMode, error) {
	switch mode := ContactMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ContactModePhone, ContactModeEmail:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidContactMode, s)
	}
}

func (c Contact) String() string {
	return string(c)
}

// IsEmail reports whether the contact looks like an email address
func (c Contact) IsEmail() bool {
	return strings.Contains(string(c), "@")
}

// Masked hides the middle of the contact for read-only listings:
// 9876543210 -> 98******10, alice@example.com -> a****@example.com
func (c Contact) Masked() string {
	s := string(c)
	if at := strings.LastIndex(s, "@"); at > 0 {
		return s[:1] + strings.Repeat("*", at-1) + s[at:]
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
