package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotReschedule возвращается для бронирований вне статусов confirmed/pending
	ErrCannotReschedule = errors.New("booking cannot be rescheduled")

	// ErrTooLate возвращается, когда окно уведомления о переносе уже прошло
	ErrTooLate = errors.New("too late to reschedule")

	// ErrSlotNotAvailable возвращается, когда новый слот не прошел проверку доступности
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrWheelAssignment возвращается, когда не удалось переназначить круги
	ErrWheelAssignment = errors.New("wheel assignment failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
