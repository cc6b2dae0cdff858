package apperrors

import (
	"uniadvisor_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError приводит любую ошибку к AppError и пишет единый конверт ответа
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Server error", err, "code", appErr.Code)
		if !h.Debug && appErr.Code == CodeInternalError {
			// В продакшене не раскрываем детали
			appErr = InternalError(nil)
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, appErr)
}

var defaultHandler = &GinErrorHandler{Debug: false}

// SetDebug включает отдачу деталей внутренних ошибок (development)
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
