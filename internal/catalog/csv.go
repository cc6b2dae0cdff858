package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"uniadvisor_backend/internal/models"
	"uniadvisor_backend/pkg/apperrors"
)

// Opener opens a catalog file by location (local path or s3://bucket/key)
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// CSVSource reads the catalog from two CSV files
type CSVSource struct {
	opener           Opener
	universitiesPath string
	scholarshipsPath string
}

func NewCSVSource(opener Opener, universitiesPath, scholarshipsPath string) *CSVSource {
	return &CSVSource{
		opener:           opener,
		universitiesPath: universitiesPath,
		scholarshipsPath: scholarshipsPath,
	}
}

func (s *CSVSource) Describe() string {
	return "csv:" + s.universitiesPath + "," + s.scholarshipsPath
}

func (s *CSVSource) ListUniversities(ctx context.Context) ([]models.University, []error, error) {
	rc, err := s.opener.Open(ctx, s.universitiesPath)
	if err != nil {
		return nil, nil, apperrors.CatalogUnavailable(err, "Unable to open universities file "+s.universitiesPath)
	}
	defer rc.Close()

	return ParseUniversities(rc, s.universitiesPath)
}

func (s *CSVSource) ListScholarships(ctx context.Context) ([]models.Scholarship, []error, error) {
	rc, err := s.opener.Open(ctx, s.scholarshipsPath)
	if err != nil {
		return nil, nil, apperrors.CatalogUnavailable(err, "Unable to open scholarships file "+s.scholarshipsPath)
	}
	defer rc.Close()

	return ParseScholarships(rc, s.scholarshipsPath)
}

var (
	universityHeaders  = []string{"university", "country", "average_fees_eur"}
	scholarshipHeaders = []string{"scholarship_name", "country"}
)

// ParseUniversities reads university rows. Rows with missing or invalid values
// are skipped and returned as MalformedRecord warnings.
func ParseUniversities(r io.Reader, source string) ([]models.University, []error, error) {
	universities := []models.University{}
	warnings, err := readRows(r, source, universityHeaders, func(row csvRow) error {
		u, err := parseUniversity(row)
		if err != nil {
			return err
		}
		universities = append(universities, u)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return universities, warnings, nil
}

// ParseScholarships reads scholarship rows, same policy as ParseUniversities
func ParseScholarships(r io.Reader, source string) ([]models.Scholarship, []error, error) {
	scholarships := []models.Scholarship{}
	warnings, err := readRows(r, source, scholarshipHeaders, func(row csvRow) error {
		s, err := parseScholarship(row)
		if err != nil {
			return err
		}
		scholarships = append(scholarships, s)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return scholarships, warnings, nil
}

type csvRow struct {
	record []string
	index  map[string]int
}

func (r csvRow) get(key string) string {
	i, ok := r.index[key]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// first returns the first non-empty value among alternative column names
func (r csvRow) first(keys ...string) string {
	for _, k := range keys {
		if v := r.get(k); v != "" {
			return v
		}
	}
	return ""
}

func readRows(r io.Reader, source string, required []string, parse func(csvRow) error) ([]error, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.CatalogUnavailable(err, source+": unable to read header")
	}
	index := mapHeaders(header)

	if missing := missingHeaders(required, index); len(missing) > 0 {
		return nil, apperrors.CatalogUnavailable(
			fmt.Errorf("missing required headers: %s", strings.Join(missing, ", ")),
			source+": missing required headers",
		)
	}

	var warnings []error
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.StartLine
			}
			warnings = append(warnings, apperrors.MalformedRecord(source, line, err.Error()))
			continue
		}
		if blank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		if err := parse(csvRow{record: record, index: index}); err != nil {
			warnings = append(warnings, apperrors.MalformedRecord(source, line, err.Error()))
		}
	}

	return warnings, nil
}

func mapHeaders(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		index[key] = i
	}
	return index
}

func missingHeaders(required []string, index map[string]int) []string {
	var missing []string
	for _, key := range required {
		if _, ok := index[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseUniversity(row csvRow) (models.University, error) {
	u := models.University{
		Name:    row.get("university"),
		Country: row.get("country"),
		City:    row.get("city"),
		Field:   row.get("field"),
	}
	if u.Name == "" {
		return u, errors.New("university is required")
	}
	if u.Country == "" {
		return u, errors.New("country is required")
	}

	feeRaw := row.get("average_fees_eur")
	if feeRaw == "" {
		return u, errors.New("average_fees_eur is required")
	}
	fee, err := parseNumber(feeRaw)
	if err != nil || fee < 0 {
		return u, fmt.Errorf("invalid average_fees_eur %q", feeRaw)
	}
	u.AnnualFee = fee

	if u.MinGPA, err = optionalNumber(row.get("min_gpa"), 0, 4); err != nil {
		return u, fmt.Errorf("invalid min_gpa: %w", err)
	}
	if u.MinTestScore, err = optionalNumber(row.first("min_ielts", "min_test_score"), 0, 9); err != nil {
		return u, fmt.Errorf("invalid min_ielts: %w", err)
	}

	if raw := row.get("ranking"); raw != "" {
		rank, err := strconv.Atoi(raw)
		if err != nil || rank < 0 {
			return u, fmt.Errorf("invalid ranking %q", raw)
		}
		u.Ranking = rank
	}

	if raw := row.get("course_url"); raw != "" {
		u.CourseURL = &raw
	}

	return u, nil
}

func parseScholarship(row csvRow) (models.Scholarship, error) {
	s := models.Scholarship{
		Name:                 row.get("scholarship_name"),
		Country:              row.get("country"),
		EligibleUniversities: row.get("eligible_universities"),
		Coverage:             row.get("coverage"),
		Eligibility:          row.get("eligibility"),
	}
	if s.Name == "" {
		return s, errors.New("scholarship_name is required")
	}
	if s.Country == "" {
		return s, errors.New("country is required")
	}

	amt, err := parseAmount(row.first("amount_eur", "amount"))
	if err != nil {
		return s, err
	}
	s.Amount = amt

	if raw := row.first("website_url", "website"); raw != "" {
		s.WebsiteURL = &raw
	}

	return s, nil
}

func optionalNumber(raw string, min, max float64) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := parseNumber(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%v is outside %v..%v", v, min, max)
	}
	return v, nil
}

// placeholders used in published scholarship tables for "no fixed amount"
var amountPlaceholders = map[string]bool{
	"n/a":      true,
	"na":       true,
	"-":        true,
	"varies":   true,
	"variable": true,
}

// parseAmount accepts "12000", "12,000", "€12,000" and "12000 EUR".
// Placeholders yield a nil amount.
func parseAmount(raw string) (*float64, error) {
	if raw == "" || amountPlaceholders[strings.ToLower(raw)] {
		return nil, nil
	}
	v, err := parseNumber(raw)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("invalid amount %q", raw)
	}
	return &v, nil
}

func parseNumber(raw string) (float64, error) {
	cleaned := strings.NewReplacer("€", "", ",", "", " ", "").Replace(raw)
	cleaned = strings.TrimSuffix(strings.ToUpper(cleaned), "EUR")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return v, nil
}
