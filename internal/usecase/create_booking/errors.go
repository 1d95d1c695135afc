package create_booking

import "errors"

var (
	// ErrVendorNotFound возвращается, когда вендор не найден в каталоге
	ErrVendorNotFound = errors.New("create_booking: vendor not found")

	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	// или скрыта из него; бронирование отклоняется целиком
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrNoServicesSelected возвращается при попытке бронирования без услуг
	ErrNoServicesSelected = errors.New("create_booking: no services selected")

	// ErrInvalidDuration возвращается при неположительной суммарной длительности
	ErrInvalidDuration = errors.New("create_booking: invalid total duration")

	// ErrSlotNotAvailable возвращается, когда слот занят или гонка за слот
	// проиграна. Вызывающая сторона перезапрашивает доступность и выбирает
	// другое время; usecase не ретраит сам
	ErrSlotNotAvailable = errors.New("create_booking: slot is no longer available")

	// ErrVendorClosed возвращается, когда вендор закрыт в указанный день
	ErrVendorClosed = errors.New("create_booking: vendor is closed on this date")

	// ErrOutsideOperatingHours возвращается, когда интервал бронирования
	// выходит за рабочее окно дня
	ErrOutsideOperatingHours = errors.New("create_booking: booking is outside operating hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Операция атомарна, поэтому повтор всей попытки безопасен
	ErrInternal = errors.New("create_booking: internal error")
)
