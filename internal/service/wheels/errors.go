package wheels

import "errors"

var (
	// ErrWheelNotFound возвращается, когда круг не найден
	ErrWheelNotFound = errors.New("wheel not found")

	// ErrDuplicateNumber возвращается, когда номер круга уже занят
	ErrDuplicateNumber = errors.New("wheel number already exists")

	// ErrWheelInUse возвращается при удалении круга с историей бронирований
	ErrWheelInUse = errors.New("wheel has bookings; deactivate it instead")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("wheels: internal error")
)
