package services

import (
	"strings"

	"uniadvisor_backend/internal/algorithms"
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/models"
	"uniadvisor_backend/internal/services/dto"
	"uniadvisor_backend/pkg/apperrors"
)

type ScholarshipService interface {
	Match(snap *catalog.Snapshot, country string) ([]models.Scholarship, error)
	List(snap *catalog.Snapshot) []models.Scholarship
	Filter(snap *catalog.Snapshot, q *dto.ScholarshipFilterQuery) ([]models.Scholarship, error)
	Statistics(snap *catalog.Snapshot) algorithms.ScholarshipStats
}

type scholarshipService struct{}

func NewScholarshipService() ScholarshipService {
	return &scholarshipService{}
}

// Match - стипендии страны, точное совпадение названия
func (s *scholarshipService) Match(snap *catalog.Snapshot, country string) ([]models.Scholarship, error) {
	if strings.TrimSpace(country) == "" {
		return nil, apperrors.MissingInput("country", "country is required to match scholarships")
	}
	return algorithms.MatchScholarships(snap.Scholarships, country), nil
}

func (s *scholarshipService) List(snap *catalog.Snapshot) []models.Scholarship {
	return snap.Scholarships
}

func (s *scholarshipService) Filter(snap *catalog.Snapshot, q *dto.ScholarshipFilterQuery) ([]models.Scholarship, error) {
	if q.MinAmount != nil && q.MaxAmount != nil && *q.MinAmount > *q.MaxAmount {
		return nil, apperrors.NewBadRequestError("min_amount must not exceed max_amount")
	}
	return algorithms.FilterScholarships(snap.Scholarships, algorithms.ScholarshipFilter{
		Country:   q.Country,
		Coverage:  q.Coverage,
		MinAmount: q.MinAmount,
		MaxAmount: q.MaxAmount,
	}), nil
}

func (s *scholarshipService) Statistics(snap *catalog.Snapshot) algorithms.ScholarshipStats {
	return algorithms.ScholarshipStatistics(snap.Scholarships)
}
