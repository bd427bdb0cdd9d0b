package create_reservation

import (
	"time"

	"github.com/supasport/booking-service/internal/domain"
	createReservation "github.com/supasport/booking-service/internal/usecase/create_reservation"
	"github.com/supasport/booking-service/pkg/types"
)

// SelectedSlotRequest один выбранный слот в HTTP запросе.
// ID отсутствует у слотов, которые ещё не имеют строки в БД.
type SelectedSlotRequest struct {
	ID        *int64 `json:"id,omitempty"`
	StartTime string `json:"startTime"` // "10:00"
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	VenueID int64                 `json:"venueId"`
	Date    string                `json:"date"` // "2026-09-15"
	Slots   []SelectedSlotRequest `json:"slots"`
}

// ReservationResultResponse HTTP модель результата бронирования.
// FailedAt заполнен, если последовательность прервалась: все слоты до
// него забронированы, начиная с него - нет.
type ReservationResultResponse struct {
	Created        int     `json:"created"`
	ReservationIDs []int64 `json:"reservationIds"`
	FailedAt       *string `json:"failedAt,omitempty"`
	TotalPrice     float64 `json:"totalPrice"`
}

// PartialFailureResponse тело ответа при частичном сбое бронирования
type PartialFailureResponse struct {
	Error  string                     `json:"error"`
	Result *ReservationResultResponse `json:"result"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	selection := make([]createReservation.SelectedSlot, len(r.Slots))
	for i, s := range r.Slots {
		startTime, err := types.NewTimeStringFromString(s.StartTime)
		if err != nil {
			return nil, err
		}
		selection[i] = createReservation.SelectedSlot{
			ID:        s.ID,
			StartTime: startTime,
		}
	}

	return &createReservation.Request{
		UserID:    userID,
		VenueID:   r.VenueID,
		Date:      date,
		Selection: selection,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResultResponse {
	var failedAt *string
	if resp.FailedAt != nil {
		s := resp.FailedAt.String()
		failedAt = &s
	}

	return &ReservationResultResponse{
		Created:        resp.Created,
		ReservationIDs: resp.ReservationIDs,
		FailedAt:       failedAt,
		TotalPrice:     resp.TotalPrice,
	}
}
