package services

import (
	"uniadvisor_backend/internal/algorithms"
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/services/dto"
	"uniadvisor_backend/pkg/apperrors"
)

type FinanceService interface {
	CostAnalysis(req *dto.CostAnalysisRequest) (algorithms.CostEstimate, error)
	PredictROI(req *dto.ROIRequest) (algorithms.ROIPrediction, error)
	FindAffordable(snap *catalog.Snapshot, req *dto.AffordableRequest) (algorithms.AffordabilityReport, error)
}

type financeService struct{}

func NewFinanceService() FinanceService {
	return &financeService{}
}

func (s *financeService) CostAnalysis(req *dto.CostAnalysisRequest) (algorithms.CostEstimate, error) {
	if req.TuitionFee == nil {
		return algorithms.CostEstimate{}, apperrors.MissingInput("tuition_fee", "tuition_fee is required for cost analysis")
	}
	return algorithms.EstimateCost(*req.TuitionFee, req.Country, req.DurationYears), nil
}

func (s *financeService) PredictROI(req *dto.ROIRequest) (algorithms.ROIPrediction, error) {
	if req.TotalInvestment == nil {
		return algorithms.ROIPrediction{}, apperrors.MissingInput("total_investment", "total_investment is required for ROI prediction")
	}

	in := algorithms.ROIInput{
		Field:           req.Field,
		Country:         req.Country,
		TotalInvestment: *req.TotalInvestment,
	}
	if req.ExpectedSalary != nil {
		in.ExpectedSalary = *req.ExpectedSalary
	}
	return algorithms.PredictROI(in), nil
}

// FindAffordable требует положительный бюджет: без него доля доступных вузов не имеет смысла
func (s *financeService) FindAffordable(snap *catalog.Snapshot, req *dto.AffordableRequest) (algorithms.AffordabilityReport, error) {
	budget := req.EffectiveBudget()
	if budget == nil || *budget <= 0 {
		return algorithms.AffordabilityReport{}, apperrors.MissingInput("max_budget", "A positive budget is required to find affordable universities")
	}
	return algorithms.AnalyzeAffordability(snap.Universities, *budget), nil
}
