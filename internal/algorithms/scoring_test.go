package algorithms

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniadvisor_backend/internal/models"
)

func TestScoreFormula(t *testing.T) {
	t.Parallel()

	u := uni("Erasmus University Rotterdam", "Netherlands", "Business / MBA", 3.4, 7.0, 12000)
	b := Score(u, Profile{GPA: 3.5, TestScore: 7.0, Budget: 20000})

	assert.InDelta(t, 0.875, b.GPA, 1e-9)
	assert.InDelta(t, 7.0/9.0, b.Test, 1e-9)
	assert.InDelta(t, 1-12000.0/20001.0, b.Cost, 1e-9)
	assert.Equal(t, 0.70, b.Total)
}

func TestScoreUsesNeutralProfile(t *testing.T) {
	t.Parallel()

	u := uni("Politecnico di Milano", "Italy", "Engineering", 3.2, 6.5, 4000)
	empty := Score(u, Profile{})
	neutral := Score(u, NeutralProfile)

	assert.Equal(t, neutral, empty)
	// 0.4*0.8 + 0.3*(6.5/9) + 0.3*(1-4000/15001)
	assert.Equal(t, 0.76, empty.Total)
}

func TestScoreCapsAndNegativeCost(t *testing.T) {
	t.Parallel()

	u := uni("Expensive", "UK", "Law", 0, 0, 40000)
	b := Score(u, Profile{GPA: 5, TestScore: 10, Budget: 9999})

	assert.Equal(t, 1.0, b.GPA)
	assert.Equal(t, 1.0, b.Test)
	assert.Less(t, b.Cost, 0.0)
}

func TestRecommendNetherlandsBusiness(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	p := Profile{GPA: 3.5, TestScore: 7.0, Budget: 20000, Country: "Netherlands", Field: "Business / MBA"}

	rec := Recommend(catalog, p)

	require.False(t, rec.Fallback)
	assert.Equal(t, 2, rec.Total)
	assert.Equal(t, []string{"University of Amsterdam", "Erasmus University Rotterdam"}, names(rec.Results))
	for _, r := range rec.Results {
		assert.Equal(t, Score(r.University, p).Total, r.MatchScore)
		assert.Empty(t, r.Note)
		assert.True(t, IsEligible(r.University, p))
	}
}

func TestRecommendTopTenStableOrder(t *testing.T) {
	t.Parallel()

	catalog := make([]models.University, 0, 15)
	for i := 0; i < 15; i++ {
		catalog = append(catalog, uni(fmt.Sprintf("Uni %02d", i), "Germany", "Engineering", 3.0, 6.0, 5000))
	}

	rec := Recommend(catalog, Profile{Country: "Germany"})

	assert.Equal(t, 15, rec.Total)
	require.Len(t, rec.Results, MaxRecommendations)
	for i, r := range rec.Results {
		assert.Equal(t, fmt.Sprintf("Uni %02d", i), r.Name)
	}

	again := Recommend(catalog, Profile{Country: "Germany"})
	assert.Equal(t, rec, again)
}

func TestRecommendSortsDescending(t *testing.T) {
	t.Parallel()

	rec := Recommend(testCatalog(), Profile{})
	for i := 1; i < len(rec.Results); i++ {
		assert.GreaterOrEqual(t, rec.Results[i-1].MatchScore, rec.Results[i].MatchScore)
	}
	// самый дешёвый вуз получает лучший cost_score при одинаковых gpa/test
	assert.Equal(t, "University of Barcelona", rec.Results[0].Name)
}

func TestRecommendFallback(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()

	rec := Recommend(catalog, Profile{Country: "Japan"})

	require.True(t, rec.Fallback)
	assert.Equal(t, SafetyCount, rec.Total)
	assert.Equal(t, []string{
		"University of Barcelona",
		"Politecnico di Milano",
		"Sorbonne University",
		"TU Munich",
		"University of Amsterdam",
	}, names(rec.Results))
	for _, r := range rec.Results {
		assert.Equal(t, SafetyScore, r.MatchScore)
		assert.Equal(t, SafetyNote, r.Note)
	}
}

func TestSafetyRecommendationsSmallCatalogAndTies(t *testing.T) {
	t.Parallel()

	catalog := []models.University{
		uni("B", "France", "Engineering", 0, 0, 5000),
		uni("A", "France", "Engineering", 0, 0, 3000),
		uni("C", "France", "Engineering", 0, 0, 3000),
	}

	got := SafetyRecommendations(catalog, SafetyCount)

	assert.Equal(t, []string{"A", "C", "B"}, names(got))
	assert.Equal(t, "B", catalog[0].Name, "catalog order must stay untouched")
}

func TestRecommendEmptyCatalog(t *testing.T) {
	t.Parallel()

	rec := Recommend(nil, Profile{Country: "France"})

	assert.False(t, rec.Fallback)
	assert.Zero(t, rec.Total)
	assert.NotNil(t, rec.Results)
	assert.Empty(t, rec.Results)
}
