package reservations

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TurfBooking/internal/domain"
	"github.com/m04kA/SMC-TurfBooking/internal/service/reservations/models"
)

// Service сервис чтения бронирований.
// Изменять бронирования можно только через commit_reservation.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ListByDate возвращает бронирования на дату, отсортированные по слоту
func (s *Service) ListByDate(ctx context.Context, rawDate string) (*models.ReservationListResponse, error) {
	if strings.TrimSpace(rawDate) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(rawDate)
	if err != nil {
		s.logger.Warn("ListByDate: invalid date=%q: %v", rawDate, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rows, err := s.reservationRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: date=%s, reservations=%d", date, len(rows))
	return models.FromDomainReservations(date, rows), nil
}
