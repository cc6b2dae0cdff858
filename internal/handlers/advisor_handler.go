package handlers

import (
	"net/http"

	"uniadvisor_backend/internal/services"
	"uniadvisor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdvisorHandler struct {
	*BaseHandler
	advisorService services.AdvisorService
}

func NewAdvisorHandler(base *BaseHandler, advisorService services.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{
		BaseHandler:    base,
		advisorService: advisorService,
	}
}

func (h *AdvisorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/query", h.Query)
}

// Query godoc
// @Summary Ответ на вопрос по ключевым словам
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body dto.QueryRequest true "Вопрос"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.AppError
// @Router /query [post]
func (h *AdvisorHandler) Query(c *gin.Context) {
	var req dto.QueryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ans, err := h.advisorService.Answer(req.Query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := gin.H{
		"status": dto.StatusSuccess,
		"answer": ans.Answer,
	}
	if ans.Topic != "" {
		resp["topic"] = ans.Topic
	}
	c.JSON(http.StatusOK, resp)
}
