package blockaudit

import "errors"

var (
	// ErrBatchNotFound возвращается, когда запись журнала не найдена
	ErrBatchNotFound = errors.New("blockaudit.repository: batch not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockaudit.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockaudit.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockaudit.repository: failed to scan row")
)
