package create_reservation

import (
	"time"

	"github.com/supasport/booking-service/pkg/types"
)

// SelectedSlot один выбранный пользователем слот.
// ID равен nil, если у слота ещё нет строки в БД (он бронируется впервые).
type SelectedSlot struct {
	ID        *int64
	StartTime types.TimeString
}

// Request модель запроса на бронирование выбранных слотов
type Request struct {
	UserID    int64          // ID пользователя
	VenueID   int64          // ID площадки
	Date      time.Time      // Дата бронирования (без времени)
	Selection []SelectedSlot // Выбранные слоты в порядке выбора
}

// Response модель результата бронирования
type Response struct {
	Created        int               // Количество успешно созданных бронирований
	ReservationIDs []int64           // ID созданных бронирований, в порядке selection
	FailedAt       *types.TimeString // Слот, на котором последовательность прервалась
	TotalPrice     float64           // Суммарная стоимость успешных бронирований
}
