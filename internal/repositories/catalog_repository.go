package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"

	"uniadvisor_backend/internal/catalog"
	"uniadvisor_backend/internal/models"
	"uniadvisor_backend/pkg/apperrors"
)

const (
	pgUndefinedTable    = "42P01"
	mysqlNoSuchTable    = 1146
	catalogDatabaseName = "database"
)

// CatalogCounts - количество записей в таблицах каталога
type CatalogCounts struct {
	Universities int64 `json:"universities"`
	Scholarships int64 `json:"scholarships"`
}

type CatalogRepository interface {
	catalog.Source
	Counts(ctx context.Context) (CatalogCounts, error)
	SampleUniversities(ctx context.Context, limit uint64) ([]models.University, error)
}

type catalogRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewCatalogRepository - чтение каталога из SQL.
// driver определяет формат плейсхолдеров: $1 для postgres, ? для mysql.
func NewCatalogRepository(db *sql.DB, driver string) CatalogRepository {
	var placeholder sq.PlaceholderFormat = sq.Dollar
	if driver == "mysql" {
		placeholder = sq.Question
	}
	return &catalogRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (r *catalogRepository) Describe() string {
	return catalogDatabaseName
}

func (r *catalogRepository) universitiesQuery() sq.SelectBuilder {
	return r.sb.
		Select("id", "university", "country", "city", "field", "min_gpa", "min_ielts", "average_fees_eur", "ranking", "course_url").
		From(models.University{}.TableName()).
		OrderBy("id")
}

func (r *catalogRepository) scholarshipsQuery() sq.SelectBuilder {
	return r.sb.
		Select("id", "scholarship_name", "country", "eligible_universities", "coverage", "amount_eur", "eligibility", "website_url").
		From(models.Scholarship{}.TableName()).
		OrderBy("id")
}

// withConn выдаёт отдельное соединение на время одного чтения и всегда его возвращает в пул
func (r *catalogRepository) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return mapStoreError(err)
	}
	defer conn.Close()

	return mapStoreError(fn(conn))
}

func (r *catalogRepository) ListUniversities(ctx context.Context) ([]models.University, []error, error) {
	query, args, err := r.universitiesQuery().ToSql()
	if err != nil {
		return nil, nil, err
	}

	universities := []models.University{}
	var warnings []error

	err = r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			u, reason, err := scanUniversity(rows)
			if err != nil {
				return err
			}
			if reason != "" {
				warnings = append(warnings, apperrors.MalformedRecord(u.TableName(), int(u.ID), reason))
				continue
			}
			universities = append(universities, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, nil, err
	}

	return universities, warnings, nil
}

func (r *catalogRepository) ListScholarships(ctx context.Context) ([]models.Scholarship, []error, error) {
	query, args, err := r.scholarshipsQuery().ToSql()
	if err != nil {
		return nil, nil, err
	}

	scholarships := []models.Scholarship{}
	var warnings []error

	err = r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			s, reason, err := scanScholarship(rows)
			if err != nil {
				return err
			}
			if reason != "" {
				warnings = append(warnings, apperrors.MalformedRecord(s.TableName(), int(s.ID), reason))
				continue
			}
			scholarships = append(scholarships, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, nil, err
	}

	return scholarships, warnings, nil
}

func (r *catalogRepository) Counts(ctx context.Context) (CatalogCounts, error) {
	var counts CatalogCounts

	err := r.withConn(ctx, func(conn *sql.Conn) error {
		for table, dst := range map[string]*int64{
			models.University{}.TableName():  &counts.Universities,
			models.Scholarship{}.TableName(): &counts.Scholarships,
		} {
			query, args, err := r.sb.Select("COUNT(*)").From(table).ToSql()
			if err != nil {
				return err
			}
			if err := conn.QueryRowContext(ctx, query, args...).Scan(dst); err != nil {
				return fmt.Errorf("count %s: %w", table, err)
			}
		}
		return nil
	})

	return counts, err
}

func (r *catalogRepository) SampleUniversities(ctx context.Context, limit uint64) ([]models.University, error) {
	query, args, err := r.universitiesQuery().Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	universities := []models.University{}
	err = r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			u, reason, err := scanUniversity(rows)
			if err != nil {
				return err
			}
			if reason == "" {
				universities = append(universities, u)
			}
		}
		return rows.Err()
	})

	return universities, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUniversity returns a non-empty reason when the row is missing required values
func scanUniversity(row rowScanner) (models.University, string, error) {
	var (
		u         models.University
		name      sql.NullString
		country   sql.NullString
		city      sql.NullString
		field     sql.NullString
		minGPA    sql.NullFloat64
		minTest   sql.NullFloat64
		fee       sql.NullFloat64
		ranking   sql.NullInt64
		courseURL sql.NullString
	)

	err := row.Scan(&u.ID, &name, &country, &city, &field, &minGPA, &minTest, &fee, &ranking, &courseURL)
	if err != nil {
		return u, "", err
	}

	u.Name = name.String
	u.Country = country.String
	u.City = city.String
	u.Field = field.String
	u.MinGPA = minGPA.Float64
	u.MinTestScore = minTest.Float64
	u.AnnualFee = fee.Float64
	u.Ranking = int(ranking.Int64)
	if courseURL.Valid && courseURL.String != "" {
		u.CourseURL = &courseURL.String
	}

	switch {
	case u.Name == "":
		return u, "university is required", nil
	case u.Country == "":
		return u, "country is required", nil
	case !fee.Valid:
		return u, "average_fees_eur is required", nil
	}
	return u, "", nil
}

func scanScholarship(row rowScanner) (models.Scholarship, string, error) {
	var (
		s           models.Scholarship
		name        sql.NullString
		country     sql.NullString
		eligibleUni sql.NullString
		coverage    sql.NullString
		amount      sql.NullFloat64
		eligibility sql.NullString
		website     sql.NullString
	)

	err := row.Scan(&s.ID, &name, &country, &eligibleUni, &coverage, &amount, &eligibility, &website)
	if err != nil {
		return s, "", err
	}

	s.Name = name.String
	s.Country = country.String
	s.EligibleUniversities = eligibleUni.String
	s.Coverage = coverage.String
	s.Eligibility = eligibility.String
	if amount.Valid {
		v := amount.Float64
		s.Amount = &v
	}
	if website.Valid && website.String != "" {
		s.WebsiteURL = &website.String
	}

	switch {
	case s.Name == "":
		return s, "scholarship_name is required", nil
	case s.Country == "":
		return s, "country is required", nil
	}
	return s, "", nil
}

// mapStoreError переводит ошибки драйверов в CatalogUnavailable
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return apperrors.CatalogUnavailable(err, "Catalog tables are missing, run `advisor migrate`")
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlNoSuchTable {
		return apperrors.CatalogUnavailable(err, "Catalog tables are missing, run `advisor migrate`")
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return apperrors.CatalogUnavailable(err, "Catalog database is unavailable")
}
