package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniadvisor_backend/pkg/apperrors"
)

// fakeRow imitates *sql.Rows.Scan for a single row of driver values
type fakeRow []any

func (f fakeRow) Scan(dest ...any) error {
	if len(dest) != len(f) {
		return fmt.Errorf("expected %d columns, got %d", len(f), len(dest))
	}
	for i, d := range dest {
		if s, ok := d.(sql.Scanner); ok {
			if err := s.Scan(f[i]); err != nil {
				return err
			}
			continue
		}
		p, ok := d.(*uint)
		if !ok {
			return fmt.Errorf("unsupported destination %T", d)
		}
		*p = f[i].(uint)
	}
	return nil
}

func TestScanUniversity(t *testing.T) {
	row := fakeRow{uint(7), "TU Delft", "Netherlands", "Delft", "Engineering", 3.5, 7.0, 14000.0, int64(20), nil}

	u, reason, err := scanUniversity(row)
	require.NoError(t, err)
	assert.Empty(t, reason)
	assert.Equal(t, uint(7), u.ID)
	assert.Equal(t, "TU Delft", u.Name)
	assert.Equal(t, 14000.0, u.AnnualFee)
	assert.Equal(t, 20, u.Ranking)
	assert.Nil(t, u.CourseURL)
}

func TestScanUniversity_MissingValues(t *testing.T) {
	tests := []struct {
		name   string
		row    fakeRow
		reason string
	}{
		{"no name", fakeRow{uint(1), nil, "France", nil, nil, nil, nil, 100.0, nil, nil}, "university is required"},
		{"no country", fakeRow{uint(2), "X", "", nil, nil, nil, nil, 100.0, nil, nil}, "country is required"},
		{"no fee", fakeRow{uint(3), "X", "France", nil, nil, nil, nil, nil, nil, nil}, "average_fees_eur is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, reason, err := scanUniversity(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestScanScholarship(t *testing.T) {
	row := fakeRow{uint(1), "DAAD", "Germany", "Public universities", "Full", nil, "Graduates", "https://daad.de"}

	s, reason, err := scanScholarship(row)
	require.NoError(t, err)
	assert.Empty(t, reason)
	assert.Nil(t, s.Amount)
	require.NotNil(t, s.WebsiteURL)
	assert.Equal(t, "https://daad.de", *s.WebsiteURL)

	row = fakeRow{uint(2), "", "Germany", nil, nil, 1000.0, nil, nil}
	s, reason, err = scanScholarship(row)
	require.NoError(t, err)
	assert.Equal(t, "scholarship_name is required", reason)
	require.NotNil(t, s.Amount)
	assert.Equal(t, 1000.0, *s.Amount)
}

func TestQueries(t *testing.T) {
	r := NewCatalogRepository(nil, "postgres").(*catalogRepository)

	query, args, err := r.universitiesQuery().ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, university, country, city, field, min_gpa, min_ielts, average_fees_eur, ranking, course_url FROM universities ORDER BY id",
		query)
	assert.Empty(t, args)

	query, _, err = r.scholarshipsQuery().ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "FROM scholarships")

	query, _, err = r.universitiesQuery().Limit(5).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT 5")
}

func TestPlaceholderFormat(t *testing.T) {
	pg := NewCatalogRepository(nil, "postgres").(*catalogRepository)
	my := NewCatalogRepository(nil, "mysql").(*catalogRepository)

	q, _, err := pg.sb.Select("id").From("universities").Where(sq.Eq{"country": "France"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, q, "$1")

	q, _, err = my.sb.Select("id").From("universities").Where(sq.Eq{"country": "France"}).ToSql()
	require.NoError(t, err)
	assert.Contains(t, q, "?")
}

func TestMapStoreError(t *testing.T) {
	assert.NoError(t, mapStoreError(nil))

	missingPG := fmt.Errorf("query: %w", &pgconn.PgError{Code: "42P01", Message: `relation "universities" does not exist`})
	err := mapStoreError(missingPG)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeCatalogUnavailable))
	assert.Contains(t, err.Error(), "advisor migrate")

	missingMy := &mysql.MySQLError{Number: 1146, Message: "Table 'advisor.universities' doesn't exist"}
	err = mapStoreError(missingMy)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeCatalogUnavailable))
	assert.Contains(t, err.Error(), "advisor migrate")

	err = mapStoreError(errors.New("connection reset"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeCatalogUnavailable))

	err = mapStoreError(context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, apperrors.HasCode(err, apperrors.CodeCatalogUnavailable))
}
