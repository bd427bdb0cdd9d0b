package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/supasport/booking-service/internal/domain"
	slotRepo "github.com/supasport/booking-service/internal/infra/storage/slot"
	venueRepo "github.com/supasport/booking-service/internal/infra/storage/venue"
)

// UseCase use case бронирования выбранных слотов.
//
// Слоты обрабатываются строго последовательно: вставка бронирования
// зависит от ID слота, полученного на предыдущем шаге. Первый сбой
// прерывает цикл; уже выполненные шаги не откатываются - внешнее
// хранилище не предоставляет многооператорных транзакций, и семантика
// здесь намеренно at-least-once.
type UseCase struct {
	venueRepo       VenueRepository
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:       venueRepo,
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case бронирования.
//
// При частичном сбое возвращает ненулевой Response вместе с ошибкой:
// Created содержит количество уже зафиксированных бронирований, FailedAt -
// слот, на котором последовательность прервалась. Эти бронирования
// остаются в силе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, venue=%d, date=%s, slots=%d",
		req.UserID, req.VenueID, req.Date.Format(domain.DateFormat), len(req.Selection))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку (существование + цена слота)
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateReservation: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateReservation: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	resp := &Response{
		ReservationIDs: make([]int64, 0, len(req.Selection)),
	}

	// 3. Последовательно фиксируем каждый выбранный слот
	for _, selected := range req.Selection {
		slotID, err := uc.reserveSlot(ctx, req, selected)
		if err != nil {
			failedAt := selected.StartTime
			resp.FailedAt = &failedAt

			if errors.Is(err, slotRepo.ErrSlotAlreadyReserved) {
				uc.logger.Warn("CreateReservation: slot %s lost to concurrent commit, venue=%d, date=%s, committed=%d",
					selected.StartTime, req.VenueID, req.Date.Format(domain.DateFormat), resp.Created)
				return resp, fmt.Errorf("%w: %s", ErrSlotTaken, selected.StartTime)
			}

			uc.logger.Error("CreateReservation: failed to reserve slot %s, venue=%d, committed=%d: %v",
				selected.StartTime, req.VenueID, resp.Created, err)
			return resp, fmt.Errorf("%w: failed to reserve slot %s: %v", ErrInternal, selected.StartTime, err)
		}

		reservation, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
			UserID:  req.UserID,
			VenueID: req.VenueID,
			SlotID:  slotID,
		})
		if err != nil {
			failedAt := selected.StartTime
			resp.FailedAt = &failedAt
			uc.logger.Error("CreateReservation: failed to create reservation for slot %s (slot_id=%d), committed=%d: %v",
				selected.StartTime, slotID, resp.Created, err)
			return resp, fmt.Errorf("%w: failed to create reservation for slot %s: %v", ErrInternal, selected.StartTime, err)
		}

		resp.Created++
		resp.ReservationIDs = append(resp.ReservationIDs, reservation.ID)
		resp.TotalPrice += venue.PricePerSlot
	}

	uc.logger.Info("CreateReservation: committed %d reservations for user=%d, venue=%d, date=%s",
		resp.Created, req.UserID, req.VenueID, req.Date.Format(domain.DateFormat))

	return resp, nil
}

// reserveSlot переводит один слот в статус "reservado" и возвращает его ID.
// Слот без строки в БД создается лениво сразу зарезервированным; слот со
// строкой обновляется условно (только из доступного статуса).
func (uc *UseCase) reserveSlot(ctx context.Context, req *Request, selected SelectedSlot) (int64, error) {
	if selected.ID == nil {
		return uc.slotRepo.CreateReserved(ctx, req.VenueID, req.Date, selected.StartTime)
	}

	if err := uc.slotRepo.Reserve(ctx, *selected.ID); err != nil {
		return 0, err
	}
	return *selected.ID, nil
}
