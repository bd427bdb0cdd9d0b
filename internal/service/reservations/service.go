package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/supasport/booking-service/internal/domain"
	slotRepo "github.com/supasport/booking-service/internal/infra/storage/slot"
	venueRepo "github.com/supasport/booking-service/internal/infra/storage/venue"
	"github.com/supasport/booking-service/internal/service/reservations/models"
	"github.com/supasport/booking-service/pkg/pix"
)

// Service сервис бронирований: список бронирований пользователя и
// генерация платёжных кодов
type Service struct {
	venueRepo       VenueRepository
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	venueRepo VenueRepository,
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	logger Logger,
) *Service {
	return &Service{
		venueRepo:       venueRepo,
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		logger:          logger,
	}
}

// GetUserReservations возвращает бронирования пользователя вместе с
// данными слота и площадки. Бронирование с осиротевшим слотом
// пропускается, а не валит весь список.
func (s *Service) GetUserReservations(ctx context.Context, userID int64) (*models.UserReservationsResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	venues := make(map[int64]*domain.Venue)
	items := make([]models.UserReservation, 0, len(reservations))

	for _, res := range reservations {
		slot, err := s.slotRepo.GetByID(ctx, res.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				s.logger.Warn("GetUserReservations: slot id=%d for reservation id=%d not found, skipping", res.SlotID, res.ID)
				continue
			}
			s.logger.Error("GetUserReservations: failed to fetch slot id=%d: %v", res.SlotID, err)
			return nil, fmt.Errorf("%w: GetUserReservations - failed to fetch slot: %v", ErrInternal, err)
		}

		venue, ok := venues[res.VenueID]
		if !ok {
			venue, err = s.venueRepo.GetByID(ctx, res.VenueID)
			if err != nil {
				if errors.Is(err, venueRepo.ErrVenueNotFound) {
					s.logger.Warn("GetUserReservations: venue id=%d for reservation id=%d not found, skipping", res.VenueID, res.ID)
					continue
				}
				s.logger.Error("GetUserReservations: failed to fetch venue id=%d: %v", res.VenueID, err)
				return nil, fmt.Errorf("%w: GetUserReservations - failed to fetch venue: %v", ErrInternal, err)
			}
			venues[res.VenueID] = venue
		}

		items = append(items, models.UserReservation{
			ReservationID: res.ID,
			VenueID:       venue.ID,
			VenueName:     venue.Name,
			Date:          slot.Date.Format(domain.DateFormat),
			StartTime:     slot.StartTime.String(),
			ReservedAt:    res.CreatedAt,
		})
	}

	s.logger.Info("GetUserReservations: found %d reservations for user=%d", len(items), userID)

	return &models.UserReservationsResponse{
		Reservations: items,
		Total:        len(items),
	}, nil
}

// PaymentCode генерирует статический Pix BR Code на сумму выбранных
// слотов площадки
func (s *Service) PaymentCode(ctx context.Context, req *models.PaymentCodeRequest) (*models.PaymentCodeResponse, error) {
	s.logger.Info("PaymentCode: venue=%d, slots=%d", req.VenueID, req.SlotCount)

	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}
	if req.SlotCount <= 0 || req.SlotCount > domain.MaxSelectionSize {
		return nil, fmt.Errorf("%w: slotCount must be between 1 and %d", ErrInvalidInput, domain.MaxSelectionSize)
	}

	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("PaymentCode: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("PaymentCode: repository error for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: PaymentCode - repository error: %v", ErrInternal, err)
	}

	if !venue.AcceptsPix() {
		s.logger.Warn("PaymentCode: venue id=%d has no pix key", req.VenueID)
		return nil, ErrPixNotConfigured
	}

	amount := venue.PricePerSlot * float64(req.SlotCount)

	payload, err := pix.Payload(*venue.PixKey, venue.Name, venue.City, amount)
	if err != nil {
		s.logger.Error("PaymentCode: failed to build payload for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: PaymentCode - failed to build payload: %v", ErrInternal, err)
	}

	return &models.PaymentCodeResponse{
		Payload:   payload,
		Amount:    amount,
		SlotCount: req.SlotCount,
	}, nil
}
