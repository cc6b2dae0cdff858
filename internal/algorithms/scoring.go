package algorithms

import (
	"math"
	"sort"

	"uniadvisor_backend/internal/models"
)

// Веса итогового match_score
const (
	WeightGPA  = 0.4
	WeightTest = 0.3
	WeightCost = 0.3
)

// Нормировочные шкалы
const (
	MaxGPA       = 4.0
	MaxTestScore = 9.0
)

// MaxRecommendations - сколько лучших совпадений отдаётся клиенту
const MaxRecommendations = 10

// MatchResult - проекция записи каталога для одного запроса
type MatchResult struct {
	models.University
	MatchScore float64 `json:"match_score"`
	Note       string  `json:"note,omitempty"`
}

// ScoreBreakdown - составляющие match_score
type ScoreBreakdown struct {
	GPA   float64
	Test  float64
	Cost  float64
	Total float64
}

// Score считает match_score записи для профиля.
// Отсутствующие значения профиля заменяются нейтральными.
// cost может быть отрицательным, если обучение дороже бюджета.
func Score(u models.University, p Profile) ScoreBreakdown {
	p = p.WithDefaults()

	b := ScoreBreakdown{
		GPA:  math.Min(p.GPA/MaxGPA, 1.0),
		Test: math.Min(p.TestScore/MaxTestScore, 1.0),
		Cost: 1 - u.AnnualFee/(p.Budget+1),
	}
	b.Total = Round2(WeightGPA*b.GPA + WeightTest*b.Test + WeightCost*b.Cost)
	return b
}

// RankMatches оценивает записи и сортирует их по убыванию match_score.
// Сортировка стабильная: при равном счёте сохраняется порядок каталога.
// limit <= 0 - без ограничения.
func RankMatches(eligible []models.University, p Profile, limit int) []MatchResult {
	results := make([]MatchResult, 0, len(eligible))
	for _, u := range eligible {
		results = append(results, MatchResult{
			University: u,
			MatchScore: Score(u, p).Total,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
