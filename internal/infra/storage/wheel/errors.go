package wheel

import "errors"

var (
	// ErrWheelNotFound возвращается, когда круг не найден
	ErrWheelNotFound = errors.New("wheel.repository: wheel not found")

	// ErrDuplicateNumber возвращается при попытке создать круг с занятым номером
	ErrDuplicateNumber = errors.New("wheel.repository: wheel number already exists")

	// ErrWheelInUse возвращается при удалении круга с существующими заявками
	ErrWheelInUse = errors.New("wheel.repository: wheel has bookings and cannot be deleted")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("wheel.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("wheel.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("wheel.repository: failed to scan row")
)
