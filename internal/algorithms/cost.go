package algorithms

// DefaultMonthlyLivingCost - для стран без данных
const DefaultMonthlyLivingCost = 1000.0

// DefaultDurationYears - длительность программы по умолчанию
const DefaultDurationYears = 2

// monthlyLivingCosts - средние расходы на жизнь в месяц, EUR
var monthlyLivingCosts = map[string]float64{
	"France":      900,
	"Germany":     850,
	"Netherlands": 1200,
	"Belgium":     1000,
	"Finland":     1100,
	"Italy":       750,
	"Spain":       800,
	"Austria":     950,
	"Sweden":      1100,
	"UK":          1400,
}

// Доли месячных расходов
var livingCostRatios = []struct {
	Name  string
	Ratio float64
}{
	{"accommodation", 0.50},
	{"food", 0.25},
	{"transport", 0.10},
	{"other", 0.15},
}

// CostBreakdown - помесячная раскладка расходов на жизнь
type CostBreakdown struct {
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Other         float64 `json:"other"`
}

// CostEstimate - полная стоимость обучения
type CostEstimate struct {
	TuitionFeeAnnual  float64       `json:"tuition_fee_annual"`
	Country           string        `json:"country"`
	DurationYears     int           `json:"duration_years"`
	MonthlyLivingCost float64       `json:"monthly_living_cost"`
	Breakdown         CostBreakdown `json:"breakdown"`
	YearlyLivingCost  float64       `json:"yearly_living_cost"`
	TotalLivingCost   float64       `json:"total_living_cost"`
	TotalTuition      float64       `json:"total_tuition"`
	TotalCombinedCost float64       `json:"total_combined_cost"`
}

// MonthlyLivingCost возвращает расходы в месяц для уже нормализованной страны
func MonthlyLivingCost(country string) float64 {
	if cost, ok := monthlyLivingCosts[country]; ok {
		return cost
	}
	return DefaultMonthlyLivingCost
}

// EstimateCost считает стоимость обучения и жизни за всю программу.
// durationYears <= 0 заменяется на DefaultDurationYears.
func EstimateCost(tuitionFee float64, country string, durationYears int) CostEstimate {
	if durationYears <= 0 {
		durationYears = DefaultDurationYears
	}
	country = NormalizeCountry(country)
	monthly := MonthlyLivingCost(country)

	parts := make(map[string]float64, len(livingCostRatios))
	for _, r := range livingCostRatios {
		parts[r.Name] = Round2(monthly * r.Ratio)
	}

	years := float64(durationYears)
	yearly := monthly * 12
	totalLiving := yearly * years
	totalTuition := tuitionFee * years

	return CostEstimate{
		TuitionFeeAnnual:  tuitionFee,
		Country:           country,
		DurationYears:     durationYears,
		MonthlyLivingCost: monthly,
		Breakdown: CostBreakdown{
			Accommodation: parts["accommodation"],
			Food:          parts["food"],
			Transport:     parts["transport"],
			Other:         parts["other"],
		},
		YearlyLivingCost:  Round2(yearly),
		TotalLivingCost:   Round2(totalLiving),
		TotalTuition:      Round2(totalTuition),
		TotalCombinedCost: Round2(totalTuition + totalLiving),
	}
}
