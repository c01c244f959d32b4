package availability

import "errors"

var (
	// ErrWheelNotInPool возвращается при явном запросе круга, занятого в это окно
	ErrWheelNotInPool = errors.New("wheel is not available for the requested window")

	// ErrWheelNotBookable возвращается при явном запросе неактивного круга
	// или круга не в статусе available
	ErrWheelNotBookable = errors.New("wheel is not bookable")

	// ErrWheelUnknown возвращается при явном запросе несуществующего номера круга
	ErrWheelUnknown = errors.New("unknown wheel number")

	// ErrInternal возвращается при внутренних ошибках движка доступности
	ErrInternal = errors.New("availability: internal error")
)
