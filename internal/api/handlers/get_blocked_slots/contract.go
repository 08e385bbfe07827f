package get_blocked_slots

import (
	"context"

	getBlockedSlots "github.com/m04kA/SMC-TurfBooking/internal/usecase/get_blocked_slots"
)

type GetBlockedSlotsUseCase interface {
	Execute(ctx context.Context, req *getBlockedSlots.Request) (*getBlockedSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
