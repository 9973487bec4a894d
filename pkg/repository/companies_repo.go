package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/hirefold/hirefold/pkg/domain"
)

// CompaniesRepository handles company persistence. Branding is stored as a
// single jsonb document and replaced wholesale on update.
type CompaniesRepository struct {
	db *sql.DB
}

// NewCompaniesRepository creates a new companies repository.
func NewCompaniesRepository(db *sql.DB) *CompaniesRepository {
	return &CompaniesRepository{db: db}
}

// CreateTx creates a new company within a transaction. Companies are only
// ever created together with their first user during signup.
func (r *CompaniesRepository) CreateTx(ctx context.Context, q Querier, company *domain.Company) error {
	branding, err := json.Marshal(company.Branding)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO companies (id, name, slug, branding, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = q.ExecContext(ctx, query,
		company.ID, company.Name, company.Slug, branding, company.Published,
		company.CreatedAt, company.UpdatedAt,
	)
	return err
}

// GetByID retrieves a company by ID.
func (r *CompaniesRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := `
		SELECT id, name, slug, branding, published, created_at, updated_at
		FROM companies
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetPublishedBySlug retrieves a company by slug, but only if its careers
// page is published. Unpublished companies look identical to missing ones.
func (r *CompaniesRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	query := `
		SELECT id, name, slug, branding, published, created_at, updated_at
		FROM companies
		WHERE slug = $1 AND published = TRUE
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, slug))
}

// ListPublished lists all companies with a published careers page, newest
// first.
func (r *CompaniesRepository) ListPublished(ctx context.Context) ([]*domain.Company, error) {
	query := `
		SELECT id, name, slug, branding, published, created_at, updated_at
		FROM companies
		WHERE published = TRUE
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		company, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

// UpdateBranding replaces the company's branding document.
func (r *CompaniesRepository) UpdateBranding(ctx context.Context, id uuid.UUID, branding domain.Branding) error {
	doc, err := json.Marshal(branding)
	if err != nil {
		return err
	}
	query := `
		UPDATE companies
		SET branding = $2, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, doc)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// UpdatePublished sets the publish flag on the company's careers page.
func (r *CompaniesRepository) UpdatePublished(ctx context.Context, id uuid.UUID, published bool) error {
	query := `
		UPDATE companies
		SET published = $2, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, published)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CompaniesRepository) scanOne(row *sql.Row) (*domain.Company, error) {
	company, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (r *CompaniesRepository) scan(row rowScanner) (*domain.Company, error) {
	company := &domain.Company{}
	var branding []byte
	err := row.Scan(
		&company.ID, &company.Name, &company.Slug, &branding, &company.Published,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(branding) > 0 {
		if err := json.Unmarshal(branding, &company.Branding); err != nil {
			return nil, err
		}
	}
	return company, nil
}
