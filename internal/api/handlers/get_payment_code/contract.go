package get_payment_code

import (
	"context"

	"github.com/supasport/booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	PaymentCode(ctx context.Context, req *models.PaymentCodeRequest) (*models.PaymentCodeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
