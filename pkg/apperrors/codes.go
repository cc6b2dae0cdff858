package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Системные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Ошибки запроса
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeMissingInput     ErrorCode = "MISSING_INPUT"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Ошибки каталога
	CodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	CodeMalformedRecord    ErrorCode = "MALFORMED_RECORD"
)
