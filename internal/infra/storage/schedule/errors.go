package schedule

import "errors"

var (
	// ErrWindowNotFound возвращается, когда у вендора нет окна работы на день недели
	// Отсутствие записи трактуется вызывающим кодом как закрытый день
	ErrWindowNotFound = errors.New("schedule.repository: operating window not found")

	// ErrBlockedTimeNotFound возвращается, когда блокировка времени не найдена
	ErrBlockedTimeNotFound = errors.New("schedule.repository: blocked time not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
