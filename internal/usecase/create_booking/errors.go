package create_booking

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("package not found")

	// ErrPackageInactive возвращается, когда пакет снят с продажи
	ErrPackageInactive = errors.New("package is not active")

	// ErrStudioMaintenance возвращается, когда студия в режиме обслуживания
	ErrStudioMaintenance = errors.New("studio is under maintenance")

	// ErrSlotNotAvailable возвращается, когда слот не прошел проверку доступности
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrWheelAssignment возвращается, когда не удалось назначить запрошенные круги
	ErrWheelAssignment = errors.New("wheel assignment failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
