package algorithms

import "uniadvisor_backend/internal/models"

// Recommendation - результат подбора вузов
type Recommendation struct {
	// Total - сколько вузов прошло фильтр до обрезки до MaxRecommendations
	Total   int
	Results []MatchResult
	// Fallback - фильтр ничего не вернул, отданы страховочные варианты
	Fallback bool
}

// Recommend: фильтр -> скоринг -> сортировка -> top-10.
// Если фильтр пуст, а каталог нет, отдаются SafetyCount самых дешёвых вузов.
func Recommend(catalog []models.University, p Profile) Recommendation {
	eligible := FilterEligible(catalog, p)
	if len(eligible) == 0 {
		if len(catalog) == 0 {
			return Recommendation{Results: []MatchResult{}}
		}
		safety := SafetyRecommendations(catalog, SafetyCount)
		return Recommendation{
			Total:    len(safety),
			Results:  safety,
			Fallback: true,
		}
	}

	return Recommendation{
		Total:   len(eligible),
		Results: RankMatches(eligible, p, MaxRecommendations),
	}
}
