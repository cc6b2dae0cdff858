package services

import (
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/reference"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	RecommendationService RecommendationService
	FinanceService        FinanceService
	ScholarshipService    ScholarshipService
	AdvisorService        AdvisorService
	VisaService           VisaService
	CatalogService        CatalogService
}

// NewServiceContainer wires every service against the catalog provider and reference data
func NewServiceContainer(provider catalog.Provider, mode string, kb *reference.KnowledgeBase, visas *reference.VisaCatalog) *ServiceContainer {
	return &ServiceContainer{
		RecommendationService: NewRecommendationService(),
		FinanceService:        NewFinanceService(),
		ScholarshipService:    NewScholarshipService(),
		AdvisorService:        NewAdvisorService(kb),
		VisaService:           NewVisaService(visas),
		CatalogService:        NewCatalogService(provider, mode),
	}
}
