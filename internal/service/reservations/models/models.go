package models

import "time"

// UserReservation бронирование пользователя вместе с данными слота и
// площадки для отображения в списке "мои бронирования"
type UserReservation struct {
	ReservationID int64     `json:"reservationId"`
	VenueID       int64     `json:"venueId"`
	VenueName     string    `json:"venueName"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	ReservedAt    time.Time `json:"reservedAt"`
}

// UserReservationsResponse список бронирований пользователя
type UserReservationsResponse struct {
	Reservations []UserReservation `json:"reservations"`
	Total        int               `json:"total"`
}

// PaymentCodeRequest запрос на генерацию платёжного кода
type PaymentCodeRequest struct {
	VenueID   int64
	SlotCount int
}

// PaymentCodeResponse платёжный код и сумма к оплате
type PaymentCodeResponse struct {
	Payload   string  `json:"payload"`
	Amount    float64 `json:"amount"`
	SlotCount int     `json:"slotCount"`
}
