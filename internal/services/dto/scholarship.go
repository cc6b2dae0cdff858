package dto

// ========================
// Scholarship DTOs
// ========================

type ScholarshipRequest struct {
	Country string `json:"country" validate:"max=100"`
}

// ScholarshipFilterQuery - параметры GET /scholarships-filter
type ScholarshipFilterQuery struct {
	Country   string   `form:"country" json:"country" validate:"max=100"`
	Coverage  string   `form:"coverage" json:"coverage" validate:"omitempty,is-coverage"`
	MinAmount *float64 `form:"min_amount" json:"min_amount" validate:"omitempty,gte=0"`
	MaxAmount *float64 `form:"max_amount" json:"max_amount" validate:"omitempty,gte=0"`
}
