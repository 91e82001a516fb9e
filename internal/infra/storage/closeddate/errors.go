package closeddate

import "errors"

var (
	// ErrClosedDateNotFound возвращается, когда закрытый день не найден
	ErrClosedDateNotFound = errors.New("closeddate.repository: closed date not found")

	// ErrDuplicateDate возвращается при попытке закрыть уже закрытый день
	ErrDuplicateDate = errors.New("closeddate.repository: date already closed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("closeddate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("closeddate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("closeddate.repository: failed to scan row")
)
