package dto

import "uniadvisor_backend/internal/algorithms"

// StatusSuccess - значение поля "status" в успешных ответах
const StatusSuccess = "success"

// ========================
// Profile DTOs
// ========================

// ProfileRequest - профиль студента. Все поля необязательны; 0 означает "не указано".
// ielts - историческое имя test_score, принимается для совместимости с фронтендом.
type ProfileRequest struct {
	GPA       *float64 `json:"gpa" validate:"omitempty,gte=0"`
	TestScore *float64 `json:"test_score" validate:"omitempty,gte=0"`
	IELTS     *float64 `json:"ielts" validate:"omitempty,gte=0"`
	Budget    *float64 `json:"budget" validate:"omitempty,gte=0"`
	Country   string   `json:"country" validate:"max=100"`
	Field     string   `json:"field" validate:"max=200"`
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// ToProfile converts the request into the engine profile; test_score wins over ielts
func (r ProfileRequest) ToProfile() algorithms.Profile {
	test := r.TestScore
	if test == nil {
		test = r.IELTS
	}
	return algorithms.Profile{
		GPA:       value(r.GPA),
		TestScore: value(test),
		Budget:    value(r.Budget),
		Country:   r.Country,
		Field:     r.Field,
	}
}

// AffordableRequest - профиль плюс бюджет для find_affordable.
// Положительный max_budget приоритетнее budget из профиля.
type AffordableRequest struct {
	ProfileRequest
	MaxBudget *float64 `json:"max_budget" validate:"omitempty,gte=0"`
}

// EffectiveBudget returns the budget to analyse, or nil when none was given.
// A zero max_budget counts as absent and falls back to the profile budget.
func (r AffordableRequest) EffectiveBudget() *float64 {
	if r.MaxBudget != nil && *r.MaxBudget > 0 {
		return r.MaxBudget
	}
	return r.Budget
}
