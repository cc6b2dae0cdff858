package reference

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"
)

//go:embed data/visa.yaml
var visaYAML []byte

type VisaItem struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
}

type VisaCategory struct {
	Title string     `yaml:"title" json:"title"`
	Items []VisaItem `yaml:"items" json:"items"`
}

// VisaRequirements - чек-лист документов для учебной визы страны
type VisaRequirements struct {
	CountryName string         `yaml:"country_name" json:"country_name"`
	VisaType    string         `yaml:"visa_type" json:"visa_type"`
	Categories  []VisaCategory `yaml:"categories" json:"categories"`
}

type VisaCountry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// VisaCatalog - справочник требований по коду страны (GERMANY, FRANCE, ...)
type VisaCatalog struct {
	byCode map[string]VisaRequirements
}

func LoadVisaCatalog(data []byte) (*VisaCatalog, error) {
	var byCode map[string]VisaRequirements
	if err := yaml.UnmarshalStrict(data, &byCode); err != nil {
		return nil, fmt.Errorf("parse visa data: %w", err)
	}

	for code, req := range byCode {
		if code != strings.ToUpper(code) {
			return nil, fmt.Errorf("visa data: code %q must be upper case", code)
		}
		if req.CountryName == "" || req.VisaType == "" {
			return nil, fmt.Errorf("visa data: %s is missing country_name or visa_type", code)
		}
		if len(req.Categories) == 0 {
			return nil, fmt.Errorf("visa data: %s has no document categories", code)
		}
		for _, cat := range req.Categories {
			if len(cat.Items) == 0 {
				return nil, fmt.Errorf("visa data: %s category %q is empty", code, cat.Title)
			}
		}
	}

	return &VisaCatalog{byCode: byCode}, nil
}

// DefaultVisaCatalog returns the embedded visa data
func DefaultVisaCatalog() *VisaCatalog {
	v, err := LoadVisaCatalog(visaYAML)
	if err != nil {
		panic(err)
	}
	return v
}

// Requirements looks a country up by code, case-insensitively
func (v *VisaCatalog) Requirements(code string) (VisaRequirements, bool) {
	req, ok := v.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return req, ok
}

// Countries lists supported countries sorted by code
func (v *VisaCatalog) Countries() []VisaCountry {
	out := make([]VisaCountry, 0, len(v.byCode))
	for code, req := range v.byCode {
		out = append(out, VisaCountry{Code: code, Name: req.CountryName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
