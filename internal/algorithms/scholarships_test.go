package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uniadvisor_backend/internal/models"
)

func amount(v float64) *float64 { return &v }

func testScholarships() []models.Scholarship {
	return []models.Scholarship{
		{Name: "DAAD", Country: "Germany", Coverage: "Full", Amount: amount(11208)},
		{Name: "Eiffel", Country: "France", Coverage: "Full", Amount: amount(13200)},
		{Name: "Deutschlandstipendium", Country: "Germany", Coverage: "Partial", Amount: amount(3600)},
		{Name: "Holland Scholarship", Country: "Netherlands", Coverage: "Partial", Amount: amount(5000)},
		{Name: "Regional grant", Country: "Germany", Coverage: "Partial"},
	}
}

func scholarshipNames(list []models.Scholarship) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Name)
	}
	return out
}

func TestMatchScholarshipsExactCountry(t *testing.T) {
	t.Parallel()

	catalog := testScholarships()

	assert.Equal(t, []string{"DAAD", "Deutschlandstipendium", "Regional grant"}, scholarshipNames(MatchScholarships(catalog, "Germany")))
	assert.Empty(t, MatchScholarships(catalog, "germany"))
	assert.NotNil(t, MatchScholarships(catalog, "Spain"))
}

func TestFilterScholarships(t *testing.T) {
	t.Parallel()

	catalog := testScholarships()

	tests := []struct {
		name   string
		filter ScholarshipFilter
		want   []string
	}{
		{"no criteria", ScholarshipFilter{}, []string{"DAAD", "Eiffel", "Deutschlandstipendium", "Holland Scholarship", "Regional grant"}},
		{"country and coverage", ScholarshipFilter{Country: "Germany", Coverage: "Partial"}, []string{"Deutschlandstipendium", "Regional grant"}},
		{"min amount skips missing amounts", ScholarshipFilter{Country: "Germany", MinAmount: amount(1000)}, []string{"DAAD", "Deutschlandstipendium"}},
		{"amount range", ScholarshipFilter{MinAmount: amount(4000), MaxAmount: amount(12000)}, []string{"DAAD", "Holland Scholarship"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scholarshipNames(FilterScholarships(catalog, tt.filter)))
		})
	}
}

func TestScholarshipStatistics(t *testing.T) {
	t.Parallel()

	stats := ScholarshipStatistics(testScholarships())

	assert.Equal(t, 5, stats.TotalScholarships)
	assert.Equal(t, 3, stats.Countries)
	assert.Equal(t, map[string]int{"Germany": 3, "France": 1, "Netherlands": 1}, stats.ByCountry)
	assert.Equal(t, map[string]int{"Full": 2, "Partial": 3}, stats.ByCoverage)
	assert.Equal(t, 33008.0, stats.TotalFundingAvailable)
	assert.Equal(t, 8252.0, stats.AverageAmount)
}

func TestScholarshipStatisticsEmpty(t *testing.T) {
	t.Parallel()

	stats := ScholarshipStatistics(nil)

	assert.Zero(t, stats.TotalScholarships)
	assert.Zero(t, stats.AverageAmount)
	assert.Empty(t, stats.ByCountry)
}
