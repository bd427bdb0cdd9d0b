package create_reservation

import (
	"fmt"

	"github.com/supasport/booking-service/internal/domain"
	"github.com/supasport/booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Selection) == 0 {
		return ErrEmptySelection
	}

	if len(req.Selection) > domain.MaxSelectionSize {
		return fmt.Errorf("%w: selection exceeds %d slots", ErrInvalidInput, domain.MaxSelectionSize)
	}

	seen := make(map[types.TimeString]struct{}, len(req.Selection))
	for _, slot := range req.Selection {
		if err := slot.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid slot time %q: %v", ErrInvalidInput, slot.StartTime, err)
		}
		if _, ok := seen[slot.StartTime]; ok {
			return fmt.Errorf("%w: duplicate slot %s in selection", ErrInvalidInput, slot.StartTime)
		}
		seen[slot.StartTime] = struct{}{}
	}

	return nil
}
