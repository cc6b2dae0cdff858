package handlers

import (
	"net/http"

	"uniadvisor_backend/internal/services"
	"uniadvisor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	*BaseHandler
	financeService services.FinanceService
}

func NewFinanceHandler(base *BaseHandler, financeService services.FinanceService) *FinanceHandler {
	return &FinanceHandler{
		BaseHandler:    base,
		financeService: financeService,
	}
}

func (h *FinanceHandler) RegisterRoutes(public, withCatalog *gin.RouterGroup) {
	public.POST("/cost-analysis", h.CostAnalysis)
	public.POST("/predict-roi", h.PredictROI)
	withCatalog.POST("/find-affordable", h.FindAffordable)
}

// CostAnalysis godoc
// @Summary Полная стоимость обучения
// @Description Обучение плюс проживание по таблице стран; неизвестная страна считается по 1000 в месяц.
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.CostAnalysisRequest true "Стоимость обучения, страна, срок"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.AppError
// @Router /cost-analysis [post]
func (h *FinanceHandler) CostAnalysis(c *gin.Context) {
	var req dto.CostAnalysisRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	analysis, err := h.financeService.CostAnalysis(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        dto.StatusSuccess,
		"cost_analysis": analysis,
	})
}

// PredictROI godoc
// @Summary Прогноз окупаемости обучения
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.ROIRequest true "Направление, страна, вложения"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.AppError
// @Router /predict-roi [post]
func (h *FinanceHandler) PredictROI(c *gin.Context) {
	var req dto.ROIRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	prediction, err := h.financeService.PredictROI(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         dto.StatusSuccess,
		"roi_prediction": prediction,
	})
}

// FindAffordable godoc
// @Summary Доступные по бюджету университеты
// @Description max_budget приоритетнее budget из профиля; без бюджета запрос отклоняется.
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.AffordableRequest true "Профиль и бюджет"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.AppError "Не передан бюджет"
// @Failure 503 {object} apperrors.AppError
// @Router /find-affordable [post]
func (h *FinanceHandler) FindAffordable(c *gin.Context) {
	var req dto.AffordableRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	report, err := h.financeService.FindAffordable(h.GetSnapshot(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              dto.StatusSuccess,
		"affordable_analysis": report,
	})
}
