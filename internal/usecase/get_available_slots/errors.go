package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующей или некорректной дате
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
)
