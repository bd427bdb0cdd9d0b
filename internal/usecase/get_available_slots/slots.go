package get_available_slots

import (
	"github.com/supasport/booking-service/internal/domain"
	"github.com/supasport/booking-service/pkg/types"
)

// generateSlots генерирует канонический список слотов на день.
// Слоты идут от времени открытия с фиксированным шагом durationMinutes;
// последний неполный слот (не помещающийся до закрытия) не эмитится.
//
// Закрытие "00:00" трактуется как конец дня (24:00), чтобы площадки,
// работающие до полуночи, получали полное расписание.
// Если после этой корректировки открытие >= закрытия, список пуст.
func generateSlots(opening, closing types.TimeString, durationMinutes int) ([]types.TimeString, error) {
	if durationMinutes <= 0 {
		durationMinutes = domain.DefaultSlotDurationMinutes
	}

	openMinutes, err := opening.Minutes()
	if err != nil {
		return nil, err
	}

	closeMinutes, err := closing.Minutes()
	if err != nil {
		return nil, err
	}
	if closeMinutes == 0 {
		closeMinutes = domain.MinutesPerDay
	}

	slots := make([]types.TimeString, 0)

	for current := openMinutes; current+durationMinutes <= closeMinutes; current += durationMinutes {
		label, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			return nil, err
		}
		slots = append(slots, label)
	}

	return slots, nil
}

// reconcileSlots объединяет сгенерированные слоты с персистентными
// строками. Сопоставление идёт по метке времени; слоты без строки в БД
// получают nil ID и статус "disponivel". Порядок результата повторяет
// порядок генерации. Функция чистая: никаких строк не создаётся.
func reconcileSlots(labels []types.TimeString, persisted []*domain.Slot) []Slot {
	byLabel := make(map[types.TimeString]*domain.Slot, len(persisted))
	for _, s := range persisted {
		byLabel[s.StartTime] = s
	}

	result := make([]Slot, len(labels))
	for i, label := range labels {
		if record, ok := byLabel[label]; ok {
			id := record.ID
			result[i] = Slot{
				ID:        &id,
				StartTime: label,
				Status:    record.Status.Canonical(),
			}
			continue
		}

		result[i] = Slot{
			ID:        nil,
			StartTime: label,
			Status:    domain.SlotStatusAvailable,
		}
	}

	return result
}
