package get_available_slots

import (
	"time"

	"github.com/supasport/booking-service/internal/domain"
	getAvailableSlots "github.com/supasport/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота расписания
type SlotResponse struct {
	ID        *int64 `json:"id,omitempty"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
}

// AvailableSlotsResponse HTTP модель расписания на день
type AvailableSlotsResponse struct {
	VenueID         int64          `json:"venueId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	PricePerSlot    float64        `json:"pricePerSlot"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(venueID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		VenueID: venueID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			ID:        s.ID,
			StartTime: s.StartTime.String(),
			Status:    string(s.Status),
		}
	}

	return &AvailableSlotsResponse{
		VenueID:         resp.VenueID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		PricePerSlot:    resp.PricePerSlot,
		Slots:           slots,
	}
}
