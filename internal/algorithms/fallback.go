package algorithms

import (
	"sort"

	"uniadvisor_backend/internal/models"
)

const (
	// SafetyCount - сколько самых дешёвых вузов предлагается, если никто не прошёл фильтр
	SafetyCount = 5
	// SafetyScore - фиксированный счёт страховочной рекомендации
	SafetyScore = 0.1
	SafetyNote  = "Safety Recommendation (Affordable Option)"
)

// SafetyRecommendations возвращает n самых дешёвых вузов каталога.
// При равной стоимости порядок каталога сохраняется.
func SafetyRecommendations(catalog []models.University, n int) []MatchResult {
	sorted := make([]models.University, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AnnualFee < sorted[j].AnnualFee
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	results := make([]MatchResult, 0, len(sorted))
	for _, u := range sorted {
		results = append(results, MatchResult{
			University: u,
			MatchScore: SafetyScore,
			Note:       SafetyNote,
		})
	}
	return results
}
