package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyTerminal возвращается для бронирований в конечном статусе
	ErrAlreadyTerminal = errors.New("booking is already finalized")

	// ErrTooLate возвращается, когда окно уведомления об отмене уже прошло
	ErrTooLate = errors.New("too late to cancel")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
