package handlers

import (
	"net/http"

	"uniadvisor_backend/internal/services"
	"uniadvisor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	*BaseHandler
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(base *BaseHandler, recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		BaseHandler:           base,
		recommendationService: recommendationService,
	}
}

// RegisterRoutes: /predict не читает каталог, поэтому висит на общей группе
func (h *RecommendationHandler) RegisterRoutes(public, withCatalog *gin.RouterGroup) {
	withCatalog.POST("/recommend", h.Recommend)
	public.POST("/predict", h.PredictAdmission)
}

// Recommend godoc
// @Summary Подбор университетов по профилю
// @Description Фильтрует каталог по профилю, считает match_score и возвращает до 10 лучших вариантов. Если ничего не подошло, отдаёт 5 самых дешёвых вузов с пометкой.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param profile body dto.ProfileRequest true "Профиль студента"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.AppError
// @Failure 503 {object} apperrors.AppError "Каталог недоступен"
// @Router /recommend [post]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req dto.ProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	rec := h.recommendationService.Recommend(h.GetSnapshot(c), &req)

	c.JSON(http.StatusOK, gin.H{
		"status":          dto.StatusSuccess,
		"total":           rec.Total,
		"recommendations": rec.Results,
		"fallback":        rec.Fallback,
	})
}

// PredictAdmission godoc
// @Summary Оценка шансов на поступление
// @Tags recommendations
// @Accept json
// @Produce json
// @Param profile body dto.ProfileRequest true "Профиль студента"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.AppError
// @Router /predict [post]
func (h *RecommendationHandler) PredictAdmission(c *gin.Context) {
	var req dto.ProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           dto.StatusSuccess,
		"admission_chance": h.recommendationService.PredictAdmission(&req),
	})
}
