package services

import (
	"uniadvisor_backend/internal/reference"
	"uniadvisor_backend/pkg/apperrors"
)

type VisaService interface {
	Requirements(code string) (reference.VisaRequirements, error)
	Countries() []reference.VisaCountry
}

type visaService struct {
	visas *reference.VisaCatalog
}

func NewVisaService(visas *reference.VisaCatalog) VisaService {
	return &visaService{visas: visas}
}

func (s *visaService) Requirements(code string) (reference.VisaRequirements, error) {
	req, ok := s.visas.Requirements(code)
	if !ok {
		return reference.VisaRequirements{}, apperrors.ErrVisaCountryNotFound
	}
	return req, nil
}

func (s *visaService) Countries() []reference.VisaCountry {
	return s.visas.Countries()
}
