package catalogservice

import "errors"

var (
	// ErrVendorNotFound возвращается, когда вендор не найден в каталоге
	ErrVendorNotFound = errors.New("catalogservice client: vendor not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
