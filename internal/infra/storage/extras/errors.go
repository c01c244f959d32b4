package extras

import "errors"

var (
	// ErrCatalogEntryNotFound возвращается, когда позиция прайс-каталога не найдена
	ErrCatalogEntryNotFound = errors.New("extras.repository: catalog entry not found")

	// ErrServiceNotFound возвращается, когда послесессионная услуга не найдена
	ErrServiceNotFound = errors.New("extras.repository: post-session service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("extras.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("extras.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("extras.repository: failed to scan row")
)
