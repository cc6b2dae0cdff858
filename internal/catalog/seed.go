package catalog

import (
	"context"

	"uniadvisor_backend/internal/models"
)

// SeedSourceName is reported as the snapshot source for the built-in catalog
const SeedSourceName = "seed"

// SeedSource serves the built-in catalog. Every call returns fresh copies.
type SeedSource struct{}

func (SeedSource) Describe() string { return SeedSourceName }

func (SeedSource) ListUniversities(context.Context) ([]models.University, []error, error) {
	return SeedUniversities(), nil, nil
}

func (SeedSource) ListScholarships(context.Context) ([]models.Scholarship, []error, error) {
	return SeedScholarships(), nil, nil
}

// SeedUniversities returns the built-in university list
func SeedUniversities() []models.University {
	return []models.University{
		// France
		{Name: "Sorbonne University", Country: "France", City: "Paris", Ranking: 60, MinGPA: 3.2, MinTestScore: 6.5, AnnualFee: 8000, Field: "Engineering"},
		{Name: "Université Paris-Saclay", Country: "France", City: "Paris", Ranking: 45, MinGPA: 3.3, MinTestScore: 6.5, AnnualFee: 7000, Field: "Engineering"},
		{Name: "Grenoble INP", Country: "France", City: "Grenoble", Ranking: 90, MinGPA: 3.0, MinTestScore: 6.0, AnnualFee: 6500, Field: "Engineering"},
		{Name: "University of Lille", Country: "France", City: "Lille", Ranking: 120, MinGPA: 2.8, MinTestScore: 6.0, AnnualFee: 6000, Field: "Engineering"},

		// Germany
		{Name: "TU Munich", Country: "Germany", City: "Munich", Ranking: 25, MinGPA: 3.5, MinTestScore: 7.0, AnnualFee: 9000, Field: "Engineering"},
		{Name: "RWTH Aachen", Country: "Germany", City: "Aachen", Ranking: 50, MinGPA: 3.3, MinTestScore: 6.5, AnnualFee: 8000, Field: "Engineering"},
		{Name: "University of Stuttgart", Country: "Germany", City: "Stuttgart", Ranking: 100, MinGPA: 3.0, MinTestScore: 6.0, AnnualFee: 7000, Field: "Engineering"},

		// Italy
		{Name: "Politecnico di Milano", Country: "Italy", City: "Milan", Ranking: 40, MinGPA: 3.2, MinTestScore: 6.5, AnnualFee: 4000, Field: "Engineering"},
		{Name: "University of Bologna", Country: "Italy", City: "Bologna", Ranking: 90, MinGPA: 2.8, MinTestScore: 6.0, AnnualFee: 3500, Field: "Engineering"},
		{Name: "Sapienza University of Rome", Country: "Italy", City: "Rome", Ranking: 70, MinGPA: 3.0, MinTestScore: 6.5, AnnualFee: 4500, Field: "Engineering"},

		// Netherlands
		{Name: "TU Delft", Country: "Netherlands", City: "Delft", Ranking: 20, MinGPA: 3.5, MinTestScore: 7.0, AnnualFee: 14000, Field: "Engineering"},
		{Name: "University of Amsterdam", Country: "Netherlands", City: "Amsterdam", Ranking: 55, MinGPA: 3.2, MinTestScore: 6.5, AnnualFee: 13000, Field: "Engineering"},

		// Spain
		{Name: "University of Barcelona", Country: "Spain", City: "Barcelona", Ranking: 80, MinGPA: 3.0, MinTestScore: 6.5, AnnualFee: 3000, Field: "Engineering"},
		{Name: "Polytechnic University of Madrid", Country: "Spain", City: "Madrid", Ranking: 95, MinGPA: 3.0, MinTestScore: 6.0, AnnualFee: 2800, Field: "Engineering"},

		// Sweden
		{Name: "KTH Royal Institute of Technology", Country: "Sweden", City: "Stockholm", Ranking: 35, MinGPA: 3.4, MinTestScore: 6.5, AnnualFee: 15000, Field: "Engineering"},
	}
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

// SeedScholarships returns the built-in scholarship list
func SeedScholarships() []models.Scholarship {
	return []models.Scholarship{
		{
			Name:                 "DAAD EPOS Scholarship",
			Country:              "Germany",
			EligibleUniversities: "Public German universities",
			Coverage:             "Full",
			Amount:               floatPtr(11208),
			Eligibility:          "Graduates with two years of professional experience",
			WebsiteURL:           strPtr("https://www.daad.de"),
		},
		{
			Name:                 "Deutschlandstipendium",
			Country:              "Germany",
			EligibleUniversities: "Participating German universities",
			Coverage:             "Partial",
			Amount:               floatPtr(3600),
			Eligibility:          "High-achieving students of any nationality",
		},
		{
			Name:                 "Eiffel Excellence Scholarship",
			Country:              "France",
			EligibleUniversities: "French higher education institutions",
			Coverage:             "Full",
			Amount:               floatPtr(13740),
			Eligibility:          "Non-French master's applicants under 30",
			WebsiteURL:           strPtr("https://www.campusfrance.org"),
		},
		{
			Name:                 "Italian Government Scholarship (MAECI)",
			Country:              "Italy",
			EligibleUniversities: "Italian state universities",
			Coverage:             "Partial",
			Amount:               floatPtr(8100),
			Eligibility:          "Foreign students enrolling in degree programs",
		},
		{
			Name:                 "Holland Scholarship",
			Country:              "Netherlands",
			EligibleUniversities: "Participating Dutch research universities",
			Coverage:             "Partial",
			Amount:               floatPtr(5000),
			Eligibility:          "Non-EEA students starting a bachelor's or master's",
		},
		{
			Name:                 "Amsterdam Merit Scholarship",
			Country:              "Netherlands",
			EligibleUniversities: "University of Amsterdam",
			Coverage:             "Tuition",
			Amount:               floatPtr(25000),
			Eligibility:          "Excellent non-EU master's applicants",
		},
		{
			Name:                 "Fundación Carolina Postgraduate Scholarship",
			Country:              "Spain",
			EligibleUniversities: "Spanish partner universities",
			Coverage:             "Full",
			Eligibility:          "Latin American graduates",
		},
		{
			Name:                 "Swedish Institute Scholarship for Global Professionals",
			Country:              "Sweden",
			EligibleUniversities: "Swedish universities",
			Coverage:             "Full",
			Eligibility:          "Professionals from eligible countries with leadership experience",
			WebsiteURL:           strPtr("https://si.se"),
		},
	}
}
