package get_blocked_slots

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующей или некорректной дате
	ErrInvalidInput = errors.New("get_blocked_slots: invalid input data")
)
