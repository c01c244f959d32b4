package studioconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда строка конфигурации студии отсутствует
	ErrConfigNotFound = errors.New("studioconfig.repository: studio config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("studioconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("studioconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("studioconfig.repository: failed to scan row")
)
