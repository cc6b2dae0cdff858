package algorithms

import "math"

// Веса прогноза поступления
const (
	AdmissionWeightGPA    = 0.45
	AdmissionWeightTest   = 0.35
	AdmissionWeightBudget = 0.20
	// AdmissionBudgetReference - бюджет, начиная с которого финансовая часть считается полной
	AdmissionBudgetReference = 20000.0
)

type AdmissionChance string

const (
	ChanceHigh   AdmissionChance = "HIGH"
	ChanceMedium AdmissionChance = "MEDIUM"
	ChanceLow    AdmissionChance = "LOW"
)

// AdmissionPrediction - грубая оценка шансов на поступление
type AdmissionPrediction struct {
	Chance      AdmissionChance `json:"chance"`
	Probability int             `json:"probability"`
	Message     string          `json:"message"`
}

// PredictAdmission оценивает шансы по профилю.
// Здесь отсутствующее значение даёт ноль баллов: это оценка самого заявителя, а не вуза.
func PredictAdmission(p Profile) AdmissionPrediction {
	gpa := math.Min(math.Max(p.GPA, 0)/MaxGPA, 1.0)
	test := math.Min(math.Max(p.TestScore, 0)/MaxTestScore, 1.0)
	budget := math.Min(math.Max(p.Budget, 0)/AdmissionBudgetReference, 1.0)

	final := gpa*AdmissionWeightGPA + test*AdmissionWeightTest + budget*AdmissionWeightBudget

	prediction := AdmissionPrediction{Probability: int(math.Round(final * 100))}
	switch {
	case final >= 0.75:
		prediction.Chance = ChanceHigh
		prediction.Message = "Excellent profile! Strong chances of admission."
	case final >= 0.5:
		prediction.Chance = ChanceMedium
		prediction.Message = "Good profile. You have fair chances of admission."
	default:
		prediction.Chance = ChanceLow
		prediction.Message = "Profile needs improvement to increase admission chances."
	}
	return prediction
}
