package studioconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация студии не найдена
	ErrConfigNotFound = errors.New("studio config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("studioconfig: internal error")
)
