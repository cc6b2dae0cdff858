package handlers

import "uniadvisor_backend/internal/services"

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	RecommendationHandler *RecommendationHandler
	FinanceHandler        *FinanceHandler
	ScholarshipHandler    *ScholarshipHandler
	AdvisorHandler        *AdvisorHandler
	VisaHandler           *VisaHandler
	CatalogHandler        *CatalogHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(base *BaseHandler, svc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		RecommendationHandler: NewRecommendationHandler(base, svc.RecommendationService),
		FinanceHandler:        NewFinanceHandler(base, svc.FinanceService),
		ScholarshipHandler:    NewScholarshipHandler(base, svc.ScholarshipService),
		AdvisorHandler:        NewAdvisorHandler(base, svc.AdvisorService),
		VisaHandler:           NewVisaHandler(base, svc.VisaService),
		CatalogHandler:        NewCatalogHandler(base, svc.CatalogService),
	}
}
