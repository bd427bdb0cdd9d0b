package filestore

import "errors"

var (
	// ErrObjectNotFound возвращается, когда объект не найден в хранилище
	ErrObjectNotFound = errors.New("filestore client: object not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("filestore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("filestore client: invalid response")
)
