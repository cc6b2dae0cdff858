package algorithms

import "uniadvisor_backend/internal/models"

// MatchScholarships - стипендии страны (точное совпадение) в порядке каталога
func MatchScholarships(catalog []models.Scholarship, country string) []models.Scholarship {
	out := make([]models.Scholarship, 0)
	for _, s := range catalog {
		if s.Country == country {
			out = append(out, s)
		}
	}
	return out
}

// ScholarshipFilter - критерии расширенного поиска, пустые поля не ограничивают
type ScholarshipFilter struct {
	Country   string
	Coverage  string
	MinAmount *float64
	MaxAmount *float64
}

func (f ScholarshipFilter) allows(s models.Scholarship) bool {
	if f.Country != "" && s.Country != f.Country {
		return false
	}
	if f.Coverage != "" && s.Coverage != f.Coverage {
		return false
	}
	// Запись без суммы не проходит ни одну границу по сумме
	if f.MinAmount != nil && (s.Amount == nil || *s.Amount < *f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && (s.Amount == nil || *s.Amount > *f.MaxAmount) {
		return false
	}
	return true
}

// FilterScholarships применяет все заданные критерии
func FilterScholarships(catalog []models.Scholarship, f ScholarshipFilter) []models.Scholarship {
	out := make([]models.Scholarship, 0)
	for _, s := range catalog {
		if f.allows(s) {
			out = append(out, s)
		}
	}
	return out
}

// ScholarshipStats - сводка по каталогу стипендий
type ScholarshipStats struct {
	TotalScholarships     int            `json:"total_scholarships"`
	Countries             int            `json:"countries"`
	ByCountry             map[string]int `json:"by_country"`
	ByCoverage            map[string]int `json:"by_coverage"`
	TotalFundingAvailable float64        `json:"total_funding_available"`
	AverageAmount         float64        `json:"average_scholarship_amount"`
}

// ScholarshipStatistics - количество по странам и покрытию, сумма и среднее по записям с суммой
func ScholarshipStatistics(catalog []models.Scholarship) ScholarshipStats {
	stats := ScholarshipStats{
		TotalScholarships: len(catalog),
		ByCountry:         make(map[string]int),
		ByCoverage:        make(map[string]int),
	}

	var withAmount int
	for _, s := range catalog {
		stats.ByCountry[s.Country]++
		stats.ByCoverage[s.Coverage]++
		if s.Amount != nil {
			stats.TotalFundingAvailable += *s.Amount
			withAmount++
		}
	}
	stats.Countries = len(stats.ByCountry)
	stats.TotalFundingAvailable = Round2(stats.TotalFundingAvailable)
	if withAmount > 0 {
		stats.AverageAmount = Round2(stats.TotalFundingAvailable / float64(withAmount))
	}
	return stats
}
