package algorithms

import "uniadvisor_backend/internal/models"

// AffordabilityReport - доля каталога в пределах бюджета
type AffordabilityReport struct {
	TotalUniversities      int                `json:"total_universities"`
	AffordableUniversities int                `json:"affordable_universities"`
	PercentageAffordable   float64            `json:"percentage_affordable"`
	CheapestUniversity     *models.University `json:"cheapest_university"`
	AverageFeeInBudget     float64            `json:"average_fee_in_budget"`
}

// AnalyzeAffordability считает вузы со стоимостью не выше бюджета.
// Бюджет проверяется вызывающей стороной: без него операция не имеет смысла.
func AnalyzeAffordability(catalog []models.University, budget float64) AffordabilityReport {
	report := AffordabilityReport{TotalUniversities: len(catalog)}

	var (
		sum      float64
		cheapest *models.University
	)
	for i := range catalog {
		u := catalog[i]
		if u.AnnualFee > budget {
			continue
		}
		report.AffordableUniversities++
		sum += u.AnnualFee
		if cheapest == nil || u.AnnualFee < cheapest.AnnualFee {
			cheapest = &u
		}
	}

	if report.TotalUniversities > 0 {
		report.PercentageAffordable = Round2(float64(report.AffordableUniversities) / float64(report.TotalUniversities) * 100)
	}
	if report.AffordableUniversities > 0 {
		report.CheapestUniversity = cheapest
		report.AverageFeeInBudget = Round2(sum / float64(report.AffordableUniversities))
	}
	return report
}
