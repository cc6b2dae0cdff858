package services

import (
	"strings"

	"uniadvisor_backend/internal/reference"
	"uniadvisor_backend/internal/services/dto"
	"uniadvisor_backend/pkg/apperrors"
)

type AdvisorService interface {
	Answer(query string) (dto.QueryAnswer, error)
}

type advisorService struct {
	kb *reference.KnowledgeBase
}

func NewAdvisorService(kb *reference.KnowledgeBase) AdvisorService {
	return &advisorService{kb: kb}
}

func (s *advisorService) Answer(query string) (dto.QueryAnswer, error) {
	if strings.TrimSpace(query) == "" {
		return dto.QueryAnswer{}, apperrors.MissingInput("query", "query is required")
	}
	answer, topic := s.kb.Answer(query)
	return dto.QueryAnswer{Answer: answer, Topic: topic}, nil
}
