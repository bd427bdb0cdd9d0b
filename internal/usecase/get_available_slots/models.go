package get_available_slots

import (
	"time"

	"github.com/supasport/booking-service/internal/domain"
	"github.com/supasport/booking-service/pkg/types"
)

// Request модель запроса на получение расписания слотов площадки
type Request struct {
	VenueID int64     // ID площадки
	Date    time.Time // Дата, на которую строится расписание (без времени)
}

// Response модель ответа с расписанием слотов на день
type Response struct {
	VenueID         int64     // ID площадки
	Date            time.Time // Дата расписания
	DurationMinutes int       // Длительность одного слота
	PricePerSlot    float64   // Цена одного слота
	Slots           []Slot    // Слоты в порядке возрастания времени
}

// Slot модель одного слота расписания.
// ID равен nil для слотов, у которых ещё нет строки в БД - такие слоты
// неявно доступны.
type Slot struct {
	ID        *int64
	StartTime types.TimeString
	Status    domain.SlotStatus
}
