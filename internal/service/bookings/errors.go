package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при некорректном или недопустимом статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrNotPending возвращается при попытке подтвердить оплату бронирования
	// не в статусе pending
	ErrNotPending = errors.New("booking is not awaiting payment")

	// ErrAlreadyTerminal возвращается при попытке изменить бронирование
	// в конечном статусе
	ErrAlreadyTerminal = errors.New("booking is already finalized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("bookings: internal error")
)
