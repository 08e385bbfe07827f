package domain

import "errors"

var (
	// ErrInvalidDate is returned when a date is not in DD-MM-YYYY form or is not a real calendar day
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrInvalidHourSlot is returned when a slot is not in HH:00 form
	ErrInvalidHourSlot = errors.New("domain: invalid hour slot")

	// ErrInvalidContact is returned when a contact does not satisfy the configured predicate
	ErrInvalidContact = errors.New("domain: invalid contact")

	// ErrInvalidContactMode is returned for an unknown contact mode
	ErrInvalidContactMode = errors.New("domain: invalid contact mode")

	// ErrInvalidWindow is returned when the booking window configuration is inconsistent
	ErrInvalidWindow = errors.New("domain: invalid booking window")
)
