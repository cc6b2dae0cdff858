package handlers

import (
	"net/http"

	"uniadvisor_backend/internal/services"
	"uniadvisor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) RegisterRoutes(public, withCatalog *gin.RouterGroup) {
	public.GET("/", h.Root)
	public.GET("/health", h.Health)
	withCatalog.GET("/universities", h.Universities)

	// Аутентификации нет: эндпоинт рассчитан на внутреннюю сеть
	admin := public.Group("/admin/catalog")
	{
		admin.POST("/reload", h.Reload)
	}
}

// Root godoc
// @Summary Проверка, что сервис запущен
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *CatalogHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "University advisor API is running"})
}

// Health godoc
// @Summary Состояние каталога
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} apperrors.AppError
// @Router /health [get]
func (h *CatalogHandler) Health(c *gin.Context) {
	health, err := h.catalogService.Health(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  dto.StatusSuccess,
		"catalog": health,
	})
}

// Universities godoc
// @Summary Все университеты каталога
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /universities [get]
func (h *CatalogHandler) Universities(c *gin.Context) {
	list := h.catalogService.Universities(h.GetSnapshot(c))

	c.JSON(http.StatusOK, gin.H{
		"status":       dto.StatusSuccess,
		"universities": list,
		"total":        len(list),
	})
}

// Reload godoc
// @Summary Перечитать каталог из источника
// @Description При ошибке остаётся предыдущий снимок. В live-режиме недоступно (409).
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} apperrors.AppError
// @Failure 503 {object} apperrors.AppError
// @Router /admin/catalog/reload [post]
func (h *CatalogHandler) Reload(c *gin.Context) {
	health, err := h.catalogService.Reload(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  dto.StatusSuccess,
		"catalog": health,
	})
}
