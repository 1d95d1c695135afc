package get_available_slots

import "errors"

var (
	// ErrVendorNotFound возвращается, когда вендор не найден в каталоге
	ErrVendorNotFound = errors.New("get_available_slots: vendor not found")

	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	// или скрыта из него
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidDuration возвращается при неположительной суммарной длительности услуг
	ErrInvalidDuration = errors.New("get_available_slots: invalid total duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
