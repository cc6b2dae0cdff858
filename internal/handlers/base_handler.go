package handlers

import (
	"fmt"

	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/logger"
	"uniadvisor_backend/internal/validator"
	"uniadvisor_backend/pkg/apperrors"
	"uniadvisor_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// ============================================================================
// 2. Снимок каталога текущего запроса
// ============================================================================

// GetSnapshot извлекает *catalog.Snapshot, который положил CatalogMiddleware.
// Вызывается только в хэндлерах, зарегистрированных за этим middleware.
func (h *BaseHandler) GetSnapshot(c *gin.Context) *catalog.Snapshot {
	key := string(contextkeys.CatalogContextKey)

	val, ok := c.Get(key)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: catalog key not found in context", "key", key)
		panic("critical error: CatalogMiddleware did not set the catalog key")
	}

	snap, ok := val.(*catalog.Snapshot)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: catalog in context is not *catalog.Snapshot", "key", key, "type", fmt.Sprintf("%T", val))
		panic("critical error: catalog in context has incorrect type")
	}

	return snap
}

// ============================================================================
// 3. Методы привязки и валидации (с контекстным логгированием)
// ============================================================================

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.validate(c, obj, "body")
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.validate(c, obj, "query")
}

func (h *BaseHandler) BindAndValidate_URI(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindUri(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind path params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid path parameters: "+err.Error()))
		return false
	}

	return h.validate(c, obj, "uri")
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}, part string) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "part", part, "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "part", part, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ============================================================================
// 4. Обработчики ошибок (с контекстным логгированием)
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}
