package schedule

import "errors"

var (
	// ErrBlockedTimeNotFound возвращается, когда блокировка времени не найдена
	ErrBlockedTimeNotFound = errors.New("schedule service: blocked time not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("schedule service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
