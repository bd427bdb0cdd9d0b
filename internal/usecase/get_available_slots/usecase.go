package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/supasport/booking-service/internal/domain"
	venueRepo "github.com/supasport/booking-service/internal/infra/storage/venue"
)

// UseCase use case построения расписания слотов площадки на дату
type UseCase struct {
	venueRepo VenueRepository
	slotRepo  SlotRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo: venueRepo,
		slotRepo:  slotRepo,
		logger:    logger,
	}
}

// Execute выполняет use case получения расписания слотов.
// Операция только читает: повторный вызов с теми же данными в БД
// возвращает идентичный результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: venue=%d, date=%s",
		req.VenueID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку (часы работы, шаг и цена слота)
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailableSlots: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Генерируем канонические слоты из часов работы
	labels, err := generateSlots(venue.OpeningTime, venue.ClosingTime, venue.SlotDuration())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 4. Получаем персистентные слоты на дату
	persisted, err := uc.slotRepo.GetByVenueAndDate(ctx, req.VenueID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get persisted slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get persisted slots: %v", ErrInternal, err)
	}

	// 5. Сливаем сгенерированные слоты с персистентными
	slots := reconcileSlots(labels, persisted)

	uc.logger.Info("GetAvailableSlots: %d slots (%d persisted) for venue=%d, date=%s",
		len(slots), len(persisted), req.VenueID, req.Date.Format(domain.DateFormat))

	return &Response{
		VenueID:         req.VenueID,
		Date:            req.Date,
		DurationMinutes: venue.SlotDuration(),
		PricePerSlot:    venue.PricePerSlot,
		Slots:           slots,
	}, nil
}
