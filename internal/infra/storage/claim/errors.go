package claim

import "errors"

var (
	// ErrClaimNotFound возвращается, когда заявка на круг не найдена
	ErrClaimNotFound = errors.New("claim.repository: wheel claim not found")

	// ErrDuplicateClaim возвращается при повторной заявке пары (бронирование, круг)
	ErrDuplicateClaim = errors.New("claim.repository: wheel already claimed by booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("claim.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("claim.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("claim.repository: failed to scan row")
)
