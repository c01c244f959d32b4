package extras

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCatalogEntryNotFound возвращается, когда позиция прайс-каталога не найдена
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("extras: internal error")
)
