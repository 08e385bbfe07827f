package get_dates

import listDates "github.com/m04kA/SMC-TurfBooking/internal/usecase/list_dates"

type ListDatesUseCase interface {
	Execute() *listDates.Response
}
