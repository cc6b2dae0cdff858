package apperrors

import (
	"fmt"
	"net/http"
)

// =========================================================================
// Ошибки предметной области
// =========================================================================

// MissingInput - обязательное для операции значение не передано.
// field попадает в details, чтобы клиент мог подсветить поле.
func MissingInput(field, message string) *AppError {
	return New(CodeMissingInput, "input", message, http.StatusBadRequest).
		WithDetails(map[string]string{"field": field})
}

// CatalogUnavailable - каталог нельзя прочитать (нет файла, нет таблицы, недоступно хранилище)
func CatalogUnavailable(err error, message string) *AppError {
	return Wrap(err, CodeCatalogUnavailable, "catalog", message, http.StatusServiceUnavailable)
}

// MalformedRecord - строка каталога не прошла проверку.
// Такие ошибки не уходят клиенту: запись пропускается, ошибка попадает в предупреждения загрузки.
func MalformedRecord(source string, row int, reason string) *AppError {
	return New(CodeMalformedRecord, "catalog", fmt.Sprintf("%s: row %d: %s", source, row, reason), http.StatusUnprocessableEntity).
		WithDetails(map[string]interface{}{"source": source, "row": row, "reason": reason})
}

// DatabaseError - запись в базу каталога не удалась (migrate)
func DatabaseError(err error, message string) *AppError {
	return Wrap(err, CodeDatabaseError, "database", message, http.StatusInternalServerError)
}

// ExternalServiceError - брокер или канал уведомлений не принял событие
func ExternalServiceError(err error, service, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, service, message, http.StatusBadGateway)
}

// ErrVisaCountryNotFound - для кода страны нет справочника по визе
var ErrVisaCountryNotFound = New(
	CodeNotFound,
	"visa",
	"Country requirements not found",
	http.StatusNotFound,
)

// ErrReloadNotSupported - перезагрузка каталога недоступна (live-режим читает источник на каждый запрос)
var ErrReloadNotSupported = New(
	CodeInvalidOperation,
	"catalog",
	"Catalog reload is not supported by the configured provider",
	http.StatusConflict,
)
