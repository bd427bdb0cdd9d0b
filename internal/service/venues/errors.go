package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец площадки
	ErrAccessDenied = errors.New("access denied")

	// ErrHasReservations возвращается при попытке удалить площадку,
	// на которую уже есть бронирования
	ErrHasReservations = errors.New("venue has associated reservations")

	// ErrInvalidImageKind возвращается при неизвестном типе изображения
	ErrInvalidImageKind = errors.New("invalid image kind")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
