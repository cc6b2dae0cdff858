package dto

// ========================
// Finance DTOs
// ========================

type CostAnalysisRequest struct {
	TuitionFee    *float64 `json:"tuition_fee" validate:"omitempty,gte=0"`
	Country       string   `json:"country" validate:"max=100"`
	DurationYears int      `json:"duration_years" validate:"gte=0,lte=10"`
}

type ROIRequest struct {
	Field           string   `json:"field" validate:"max=200"`
	Country         string   `json:"country" validate:"max=100"`
	TotalInvestment *float64 `json:"total_investment" validate:"omitempty,gte=0"`
	ExpectedSalary  *float64 `json:"expected_salary" validate:"omitempty,gte=0"`
}
