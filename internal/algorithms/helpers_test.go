package algorithms

import "uniadvisor_backend/internal/models"

func uni(name, country, field string, minGPA, minTest, fee float64) models.University {
	return models.University{
		Name:         name,
		Country:      country,
		City:         "City",
		Field:        field,
		MinGPA:       minGPA,
		MinTestScore: minTest,
		AnnualFee:    fee,
		Ranking:      100,
	}
}

func testCatalog() []models.University {
	return []models.University{
		uni("Sorbonne University", "France", "Engineering", 3.2, 6.5, 8000),
		uni("TU Munich", "Germany", "Engineering", 3.5, 7.0, 9000),
		uni("University of Amsterdam", "Netherlands", "Business / MBA", 3.2, 6.5, 13000),
		uni("TU Delft", "Netherlands", "Engineering", 3.5, 7.0, 14000),
		uni("Politecnico di Milano", "Italy", "Engineering", 3.2, 6.5, 4000),
		uni("University of Barcelona", "Spain", "Business / MBA", 3.0, 6.5, 3000),
		uni("KTH Royal Institute of Technology", "Sweden", "Computer Science", 3.4, 6.5, 15000),
		uni("Erasmus University Rotterdam", "Netherlands", "Business / MBA", 3.4, 7.0, 20000),
	}
}

func names(results []MatchResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Name)
	}
	return out
}

func uniNames(list []models.University) []string {
	out := make([]string, 0, len(list))
	for _, u := range list {
		out = append(out, u.Name)
	}
	return out
}
