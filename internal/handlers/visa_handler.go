package handlers

import (
	"net/http"

	"uniadvisor_backend/internal/services"
	"uniadvisor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VisaHandler struct {
	*BaseHandler
	visaService services.VisaService
}

func NewVisaHandler(base *BaseHandler, visaService services.VisaService) *VisaHandler {
	return &VisaHandler{
		BaseHandler: base,
		visaService: visaService,
	}
}

func (h *VisaHandler) RegisterRoutes(r *gin.RouterGroup) {
	visa := r.Group("/api/visa")
	{
		visa.GET("/requirements/:code", h.GetRequirements)
		visa.GET("/countries", h.GetCountries)
	}
}

// GetRequirements godoc
// @Summary Документы для учебной визы
// @Description Код страны нечувствителен к регистру (germany, GERMANY). Ответ без конверта status, как ждёт фронтенд.
// @Tags visa
// @Produce json
// @Param code path string true "Код страны"
// @Success 200 {object} reference.VisaRequirements
// @Failure 404 {object} apperrors.AppError
// @Router /api/visa/requirements/{code} [get]
func (h *VisaHandler) GetRequirements(c *gin.Context) {
	var uri dto.VisaCodeURI
	if !h.BindAndValidate_URI(c, &uri) {
		return
	}

	req, err := h.visaService.Requirements(uri.Code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// GetCountries godoc
// @Summary Страны со справочником по визе
// @Tags visa
// @Produce json
// @Success 200 {array} reference.VisaCountry
// @Router /api/visa/countries [get]
func (h *VisaHandler) GetCountries(c *gin.Context) {
	c.JSON(http.StatusOK, h.visaService.Countries())
}
