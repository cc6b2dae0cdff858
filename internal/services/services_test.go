package services

import (
	"context"
	"errors"
	"testing"

	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/models"
	"uniadvisor_backend/internal/reference"
	"uniadvisor_backend/internal/services/dto"
	"uniadvisor_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func seedSnapshot() *catalog.Snapshot {
	return catalog.NewSnapshot(catalog.SeedSourceName, catalog.SeedUniversities(), catalog.SeedScholarships(), nil)
}

func TestRecommendationService_Recommend(t *testing.T) {
	svc := NewRecommendationService()

	rec := svc.Recommend(seedSnapshot(), &dto.ProfileRequest{
		GPA:     ptr(3.5),
		IELTS:   ptr(7.0),
		Budget:  ptr(20000),
		Country: "Netherlands",
		Field:   "Engineering",
	})

	require.Len(t, rec.Results, 2)
	assert.False(t, rec.Fallback)
	for _, r := range rec.Results {
		assert.Equal(t, "Netherlands", r.Country)
	}
}

func TestRecommendationService_FallbackWhenNothingMatches(t *testing.T) {
	svc := NewRecommendationService()

	rec := svc.Recommend(seedSnapshot(), &dto.ProfileRequest{Country: "Japan"})

	assert.True(t, rec.Fallback)
	require.Len(t, rec.Results, 5)
	assert.Equal(t, "Polytechnic University of Madrid", rec.Results[0].Name)
	assert.Equal(t, 0.1, rec.Results[0].MatchScore)
}

func TestRecommendationService_TestScoreWinsOverIELTS(t *testing.T) {
	req := dto.ProfileRequest{TestScore: ptr(8), IELTS: ptr(5)}
	assert.Equal(t, 8.0, req.ToProfile().TestScore)

	req = dto.ProfileRequest{IELTS: ptr(5)}
	assert.Equal(t, 5.0, req.ToProfile().TestScore)
}

func TestFinanceService_CostAnalysis(t *testing.T) {
	svc := NewFinanceService()

	_, err := svc.CostAnalysis(&dto.CostAnalysisRequest{Country: "Germany"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMissingInput))

	est, err := svc.CostAnalysis(&dto.CostAnalysisRequest{TuitionFee: ptr(0), Country: "Unknown", DurationYears: 1})
	require.NoError(t, err)
	assert.Equal(t, 1000.0, est.MonthlyLivingCost)
	assert.Equal(t, est.TotalLivingCost, est.TotalCombinedCost)

	est, err = svc.CostAnalysis(&dto.CostAnalysisRequest{TuitionFee: ptr(1000), Country: "Unknown"})
	require.NoError(t, err)
	assert.Equal(t, 2, est.DurationYears)
}

func TestFinanceService_PredictROI(t *testing.T) {
	svc := NewFinanceService()

	_, err := svc.PredictROI(&dto.ROIRequest{Field: "Computer Science", Country: "Germany"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMissingInput))

	roi, err := svc.PredictROI(&dto.ROIRequest{Field: "Computer Science", Country: "Germany", TotalInvestment: ptr(60000)})
	require.NoError(t, err)
	assert.Equal(t, "Industry Average", roi.SalarySource)
	assert.Equal(t, 62000.0, roi.EstimatedStartingSalary)
	assert.Equal(t, 1.9, roi.BreakEvenYears)
	assert.Equal(t, 95, roi.ROIScore)

	roi, err = svc.PredictROI(&dto.ROIRequest{Field: "Computer Science", Country: "Germany", TotalInvestment: ptr(60000), ExpectedSalary: ptr(1000)})
	require.NoError(t, err)
	assert.Equal(t, 99.0, roi.BreakEvenYears)
	assert.Equal(t, 40, roi.ROIScore)
}

func TestFinanceService_FindAffordable(t *testing.T) {
	svc := NewFinanceService()
	snap := seedSnapshot()

	_, err := svc.FindAffordable(snap, &dto.AffordableRequest{})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMissingInput))

	_, err = svc.FindAffordable(snap, &dto.AffordableRequest{MaxBudget: ptr(0)})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMissingInput))

	report, err := svc.FindAffordable(snap, &dto.AffordableRequest{MaxBudget: ptr(4000)})
	require.NoError(t, err)
	assert.Equal(t, 15, report.TotalUniversities)
	assert.Equal(t, 4, report.AffordableUniversities)
	require.NotNil(t, report.CheapestUniversity)
	assert.Equal(t, "Polytechnic University of Madrid", report.CheapestUniversity.Name)

	// max_budget приоритетнее budget профиля
	report, err = svc.FindAffordable(snap, &dto.AffordableRequest{
		ProfileRequest: dto.ProfileRequest{Budget: ptr(100000)},
		MaxBudget:      ptr(4000),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, report.AffordableUniversities)

	report, err = svc.FindAffordable(snap, &dto.AffordableRequest{ProfileRequest: dto.ProfileRequest{Budget: ptr(100000)}})
	require.NoError(t, err)
	assert.Equal(t, 15, report.AffordableUniversities)

	// нулевой max_budget не перекрывает бюджет профиля
	report, err = svc.FindAffordable(snap, &dto.AffordableRequest{
		ProfileRequest: dto.ProfileRequest{Budget: ptr(4000)},
		MaxBudget:      ptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, report.AffordableUniversities)
}

func TestScholarshipService(t *testing.T) {
	svc := NewScholarshipService()
	snap := seedSnapshot()

	_, err := svc.Match(snap, "  ")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMissingInput))

	list, err := svc.Match(snap, "Germany")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = svc.Match(snap, "germany")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.Len(t, svc.List(snap), 8)

	_, err = svc.Filter(snap, &dto.ScholarshipFilterQuery{MinAmount: ptr(10), MaxAmount: ptr(5)})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))

	list, err = svc.Filter(snap, &dto.ScholarshipFilterQuery{Coverage: "Full", MinAmount: ptr(12000)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Eiffel Excellence Scholarship", list[0].Name)

	stats := svc.Statistics(snap)
	assert.Equal(t, 8, stats.TotalScholarships)
	assert.Equal(t, 2, stats.ByCountry["Netherlands"])
}

func TestAdvisorService_Answer(t *testing.T) {
	svc := NewAdvisorService(reference.DefaultKnowledgeBase())

	_, err := svc.Answer(" \t")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeMissingInput))

	ans, err := svc.Answer("What IELTS score do I need?")
	require.NoError(t, err)
	assert.Equal(t, "ielts", ans.Topic)
	assert.NotEmpty(t, ans.Answer)

	ans, err = svc.Answer("zzz")
	require.NoError(t, err)
	assert.Empty(t, ans.Topic)
	assert.NotEmpty(t, ans.Answer)
}

func TestVisaService(t *testing.T) {
	svc := NewVisaService(reference.DefaultVisaCatalog())

	req, err := svc.Requirements(" germany ")
	require.NoError(t, err)
	assert.Equal(t, "Germany", req.CountryName)

	_, err = svc.Requirements("XX")
	assert.ErrorIs(t, err, apperrors.ErrVisaCountryNotFound)

	assert.Len(t, svc.Countries(), 3)
}

type liveOnly struct{ snap *catalog.Snapshot }

func (l liveOnly) Snapshot(context.Context) (*catalog.Snapshot, error) { return l.snap, nil }

type failingSource struct{}

func (failingSource) Describe() string { return "broken" }

func (failingSource) ListUniversities(context.Context) ([]models.University, []error, error) {
	return nil, nil, errors.New("disk on fire")
}

func (failingSource) ListScholarships(context.Context) ([]models.Scholarship, []error, error) {
	return nil, nil, nil
}

func TestCatalogService_Health(t *testing.T) {
	svc := NewCatalogService(catalog.NewStaticStore(seedSnapshot()), "cached")

	health, err := svc.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.SeedSourceName, health.Source)
	assert.Equal(t, "cached", health.Mode)
	assert.Equal(t, 15, health.Universities)
	assert.Equal(t, 8, health.Scholarships)
	assert.Empty(t, health.Warnings)
}

func TestCatalogService_Reload(t *testing.T) {
	svc := NewCatalogService(liveOnly{snap: seedSnapshot()}, "live")
	_, err := svc.Reload(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrReloadNotSupported)

	store := catalog.NewStore(catalog.SeedSource{})
	svc = NewCatalogService(store, "cached")
	health, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15, health.Universities)

	svc = NewCatalogService(catalog.NewStore(failingSource{}), "cached")
	_, err = svc.Reload(context.Background())
	assert.True(t, apperrors.HasCode(err, apperrors.CodeCatalogUnavailable))
	_, err = svc.Health(context.Background())
	assert.True(t, apperrors.HasCode(err, apperrors.CodeCatalogUnavailable))
}

func TestCatalogService_Universities(t *testing.T) {
	svc := NewCatalogService(catalog.NewStaticStore(seedSnapshot()), "cached")
	assert.Len(t, svc.Universities(seedSnapshot()), 15)
}
