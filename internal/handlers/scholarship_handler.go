package handlers

import (
	"net/http"

	"uniadvisor_backend/internal/services"
	"uniadvisor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ScholarshipHandler struct {
	*BaseHandler
	scholarshipService services.ScholarshipService
}

func NewScholarshipHandler(base *BaseHandler, scholarshipService services.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{
		BaseHandler:        base,
		scholarshipService: scholarshipService,
	}
}

// Все маршруты стипендий читают каталог
func (h *ScholarshipHandler) RegisterRoutes(withCatalog *gin.RouterGroup) {
	withCatalog.POST("/scholarships", h.Match)
	withCatalog.GET("/scholarships-list", h.List)
	withCatalog.GET("/scholarships-by-country/:country", h.ByCountry)
	withCatalog.GET("/scholarships-statistics", h.Statistics)
	withCatalog.GET("/scholarships-filter", h.Filter)
}

// Match godoc
// @Summary Стипендии страны
// @Description Точное совпадение названия страны, порядок каталога.
// @Tags scholarships
// @Accept json
// @Produce json
// @Param request body dto.ScholarshipRequest true "Страна"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.AppError
// @Router /scholarships [post]
func (h *ScholarshipHandler) Match(c *gin.Context) {
	var req dto.ScholarshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	list, err := h.scholarshipService.Match(h.GetSnapshot(c), req.Country)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       dto.StatusSuccess,
		"scholarships": list,
		"total":        len(list),
	})
}

// List godoc
// @Summary Все стипендии каталога
// @Tags scholarships
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /scholarships-list [get]
func (h *ScholarshipHandler) List(c *gin.Context) {
	list := h.scholarshipService.List(h.GetSnapshot(c))

	c.JSON(http.StatusOK, gin.H{
		"status":       dto.StatusSuccess,
		"scholarships": list,
		"total":        len(list),
	})
}

// ByCountry godoc
// @Summary Стипендии страны (GET)
// @Tags scholarships
// @Produce json
// @Param country path string true "Страна, как в каталоге"
// @Success 200 {object} map[string]interface{}
// @Router /scholarships-by-country/{country} [get]
func (h *ScholarshipHandler) ByCountry(c *gin.Context) {
	country := c.Param("country")

	list, err := h.scholarshipService.Match(h.GetSnapshot(c), country)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       dto.StatusSuccess,
		"country":      country,
		"scholarships": list,
		"total":        len(list),
	})
}

// Statistics godoc
// @Summary Сводка по стипендиям
// @Tags scholarships
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /scholarships-statistics [get]
func (h *ScholarshipHandler) Statistics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     dto.StatusSuccess,
		"statistics": h.scholarshipService.Statistics(h.GetSnapshot(c)),
	})
}

// Filter godoc
// @Summary Расширенный поиск стипендий
// @Description Пустые параметры не ограничивают выборку. Стипендии без суммы не проходят фильтр по сумме.
// @Tags scholarships
// @Produce json
// @Param country query string false "Страна"
// @Param coverage query string false "Покрытие (Full, Partial, ...)"
// @Param min_amount query number false "Минимальная сумма"
// @Param max_amount query number false "Максимальная сумма"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.AppError
// @Router /scholarships-filter [get]
func (h *ScholarshipHandler) Filter(c *gin.Context) {
	var q dto.ScholarshipFilterQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	list, err := h.scholarshipService.Filter(h.GetSnapshot(c), &q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       dto.StatusSuccess,
		"scholarships": list,
		"total":        len(list),
		"filters":      q,
	})
}
