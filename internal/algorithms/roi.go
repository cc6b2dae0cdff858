package algorithms

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// NetIncomeRatio - доля зарплаты после налогов
	NetIncomeRatio = 0.7
	// AnnualLivingExpenses - расходы на жизнь выпускника в год
	AnnualLivingExpenses = 12000.0
	// UnrecoverableYears - окупаемость, если чистый доход не покрывает расходы
	UnrecoverableYears = 99.0
)

const (
	SalarySourceUser     = "User Provided"
	SalarySourceIndustry = "Industry Average"
)

// startingSalaries - стартовая зарплата выпускника по направлению и стране, EUR в год.
// Строка Unclassified - усреднение по всем направлениям.
var startingSalaries = map[FieldCategory]map[string]float64{
	FieldComputerScience: {
		"Germany": 62000, "Netherlands": 58000, "France": 48000, "Sweden": 52000, "Finland": 50000,
		"Austria": 52000, "Belgium": 52000, "Italy": 38000, "Spain": 36000, "UK": 55000, DefaultCountry: 45000,
	},
	FieldEngineering: {
		"Germany": 58000, "Netherlands": 54000, "France": 45000, "Sweden": 48000, "Finland": 47000,
		"Austria": 50000, "Belgium": 49000, "Italy": 35000, "Spain": 33000, "UK": 50000, DefaultCountry: 42000,
	},
	FieldBusiness: {
		"Germany": 55000, "Netherlands": 54000, "France": 47000, "Sweden": 46000, "Italy": 36000,
		"Spain": 34000, "UK": 58000, DefaultCountry: 42000,
	},
	FieldMedicine: {
		"Germany": 65000, "Netherlands": 60000, "France": 50000, "Sweden": 55000, "Italy": 40000,
		"Spain": 38000, "UK": 52000, DefaultCountry: 48000,
	},
	FieldNaturalSciences: {
		"Germany": 50000, "Netherlands": 48000, "France": 40000, "Sweden": 44000, "Italy": 32000,
		"Spain": 30000, "UK": 42000, DefaultCountry: 38000,
	},
	FieldLaw: {
		"Germany": 56000, "Netherlands": 52000, "France": 45000, "Italy": 34000, "Spain": 32000,
		"UK": 55000, DefaultCountry: 42000,
	},
	FieldArts: {
		"Germany": 40000, "Netherlands": 38000, "France": 34000, "Italy": 28000, "Spain": 26000,
		"UK": 36000, DefaultCountry: 32000,
	},
	FieldUnclassified: {
		"Germany": 55000, "Netherlands": 52000, "France": 44000, "Sweden": 47000, "Italy": 35000,
		"Spain": 33000, "UK": 50000, DefaultCountry: 41000,
	},
}

// ROIInput - параметры прогноза окупаемости
type ROIInput struct {
	Field           string
	Country         string
	TotalInvestment float64
	// ExpectedSalary > 0 заменяет табличную зарплату
	ExpectedSalary float64
}

// ROIPrediction - прогноз окупаемости
type ROIPrediction struct {
	FieldCategory           FieldCategory `json:"field_category"`
	FieldRecognized         bool          `json:"field_recognized"`
	Country                 string        `json:"country"`
	EstimatedStartingSalary float64       `json:"estimated_starting_salary"`
	SalarySource            string        `json:"salary_source"`
	NetAnnualIncome         float64       `json:"net_annual_income"`
	BreakEvenYears          float64       `json:"break_even_years"`
	ROIScore                int           `json:"roi_score"`
	Explanation             string        `json:"explanation"`
}

// StartingSalary - табличная зарплата; для неизвестной страны берётся Default категории
func StartingSalary(category FieldCategory, country string) float64 {
	row, ok := startingSalaries[category]
	if !ok {
		row = startingSalaries[FieldUnclassified]
	}
	if salary, ok := row[country]; ok {
		return salary
	}
	return row[DefaultCountry]
}

// BreakEvenYears - за сколько лет чистый доход покрывает вложения
func BreakEvenYears(totalInvestment, netAnnualIncome float64) float64 {
	if netAnnualIncome <= 0 {
		return UnrecoverableYears
	}
	return Round1(totalInvestment / netAnnualIncome)
}

// ROIScore переводит срок окупаемости в грубую шкалу
func ROIScore(breakEvenYears float64) int {
	switch {
	case breakEvenYears <= 2.0:
		return 95
	case breakEvenYears <= 3.5:
		return 80
	case breakEvenYears <= 5.0:
		return 60
	default:
		return 40
	}
}

var moneyPrinter = message.NewPrinter(language.English)

// PredictROI строит прогноз окупаемости обучения
func PredictROI(in ROIInput) ROIPrediction {
	category, recognized := ClassifyField(in.Field)
	country := NormalizeCountry(in.Country)

	salary, source := in.ExpectedSalary, SalarySourceUser
	if salary <= 0 {
		salary, source = StartingSalary(category, country), SalarySourceIndustry
	}

	net := salary*NetIncomeRatio - AnnualLivingExpenses
	years := BreakEvenYears(in.TotalInvestment, net)

	return ROIPrediction{
		FieldCategory:           category,
		FieldRecognized:         recognized,
		Country:                 country,
		EstimatedStartingSalary: salary,
		SalarySource:            source,
		NetAnnualIncome:         Round2(net),
		BreakEvenYears:          years,
		ROIScore:                ROIScore(years),
		Explanation:             explainROI(category, country, salary, source, in.TotalInvestment, years),
	}
}

func explainROI(category FieldCategory, country string, salary float64, source string, investment, years float64) string {
	if years >= UnrecoverableYears {
		return moneyPrinter.Sprintf(
			"A starting salary of €%.0f (%s) in %s does not cover living expenses after tax, so the investment of €%.0f is not recovered.",
			salary, source, country, investment,
		)
	}
	return moneyPrinter.Sprintf(
		"As a %s graduate in %s earning about €%.0f per year (%s), you could recover your investment of €%.0f in about %s years.",
		category, country, salary, source, investment, fmt.Sprintf("%.1f", years),
	)
}
