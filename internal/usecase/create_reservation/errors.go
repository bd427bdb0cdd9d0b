package create_reservation

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_reservation: venue not found")

	// ErrEmptySelection возвращается при пустом списке выбранных слотов
	ErrEmptySelection = errors.New("create_reservation: selection is empty")

	// ErrSlotTaken возвращается, когда слот успел зарезервировать
	// конкурентный запрос между reconcile и commit
	ErrSlotTaken = errors.New("create_reservation: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
