package services

import (
	"uniadvisor_backend/internal/algorithms"
	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/services/dto"
)

type RecommendationService interface {
	Recommend(snap *catalog.Snapshot, req *dto.ProfileRequest) algorithms.Recommendation
	PredictAdmission(req *dto.ProfileRequest) algorithms.AdmissionPrediction
}

type recommendationService struct{}

func NewRecommendationService() RecommendationService {
	return &recommendationService{}
}

// Recommend ранжирует вузы текущего снимка под профиль
func (s *recommendationService) Recommend(snap *catalog.Snapshot, req *dto.ProfileRequest) algorithms.Recommendation {
	return algorithms.Recommend(snap.Universities, req.ToProfile())
}

func (s *recommendationService) PredictAdmission(req *dto.ProfileRequest) algorithms.AdmissionPrediction {
	return algorithms.PredictAdmission(req.ToProfile())
}
