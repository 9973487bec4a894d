package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hirefold/hirefold/pkg/domain"
)

// SectionsRepository handles careers-page section persistence. Every query
// is scoped by company_id so one tenant can never touch another's sections.
type SectionsRepository struct {
	db *sql.DB
}

// NewSectionsRepository creates a new sections repository.
func NewSectionsRepository(db *sql.DB) *SectionsRepository {
	return &SectionsRepository{db: db}
}

// Create inserts a section at the end of the company's order. The insert
// runs in a transaction holding a per-company advisory lock: under READ
// COMMITTED two concurrent inserts would otherwise count the same
// snapshot and pick the same slot.
func (r *SectionsRepository) Create(ctx context.Context, section *domain.Section) error {
	return Tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, section.CompanyID.String()); err != nil {
			return err
		}
		query := `
			INSERT INTO sections (id, company_id, type, content, image, layout, video_url, sort_order, visible, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7,
				(SELECT COUNT(*) + 1 FROM sections WHERE company_id = $2),
				$8, $9, $10)
			RETURNING sort_order
		`
		return tx.QueryRowContext(ctx, query,
			section.ID, section.CompanyID, section.Type, section.Content, section.Image,
			section.Layout, section.VideoURL, section.Visible,
			section.CreatedAt, section.UpdatedAt,
		).Scan(&section.Order)
	})
}

// ListByCompany lists all of a company's sections in display order.
func (r *SectionsRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Section, error) {
	query := `
		SELECT id, company_id, type, content, image, layout, video_url, sort_order, visible, created_at, updated_at
		FROM sections
		WHERE company_id = $1
		ORDER BY sort_order ASC
	`
	return r.list(ctx, query, companyID)
}

// ListVisibleByCompany lists only the sections shown on the public page,
// in display order.
func (r *SectionsRepository) ListVisibleByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Section, error) {
	query := `
		SELECT id, company_id, type, content, image, layout, video_url, sort_order, visible, created_at, updated_at
		FROM sections
		WHERE company_id = $1 AND visible = TRUE
		ORDER BY sort_order ASC
	`
	return r.list(ctx, query, companyID)
}

// Update applies a partial update to a section. Nil fields keep their
// stored value. Returns the updated row, or ErrSectionNotFound when the
// section does not exist or belongs to another company.
func (r *SectionsRepository) Update(ctx context.Context, companyID, id uuid.UUID, update domain.SectionUpdate) (*domain.Section, error) {
	query := `
		UPDATE sections
		SET type = COALESCE($3, type),
		    content = COALESCE($4, content),
		    image = COALESCE($5, image),
		    layout = COALESCE($6, layout),
		    video_url = COALESCE($7, video_url),
		    visible = COALESCE($8, visible),
		    updated_at = $9
		WHERE id = $1 AND company_id = $2
		RETURNING id, company_id, type, content, image, layout, video_url, sort_order, visible, created_at, updated_at
	`
	var layout *string
	if update.Layout != nil {
		l := string(*update.Layout)
		layout = &l
	}
	section := &domain.Section{}
	err := r.db.QueryRowContext(ctx, query,
		id, companyID, update.Type, update.Content, update.Image,
		layout, update.VideoURL, update.Visible, time.Now(),
	).Scan(
		&section.ID, &section.CompanyID, &section.Type, &section.Content, &section.Image,
		&section.Layout, &section.VideoURL, &section.Order, &section.Visible,
		&section.CreatedAt, &section.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return section, nil
}

// Delete removes a section scoped to a company. Deleting a section that is
// already gone is not an error; remaining sections keep their order slots.
func (r *SectionsRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	query := `DELETE FROM sections WHERE id = $1 AND company_id = $2`
	_, err := r.db.ExecContext(ctx, query, id, companyID)
	return err
}

// Reorder rewrites the order slots for the given section IDs: position in
// the slice becomes the new order, starting at 1. IDs that do not belong
// to the company are skipped. The whole rewrite happens in one
// transaction.
func (r *SectionsRepository) Reorder(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) error {
	return Tx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			UPDATE sections
			SET sort_order = $3, updated_at = NOW()
			WHERE id = $1 AND company_id = $2
		`
		for i, id := range ids {
			if _, err := tx.ExecContext(ctx, query, id, companyID, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SectionsRepository) list(ctx context.Context, query string, companyID uuid.UUID) ([]*domain.Section, error) {
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*domain.Section
	for rows.Next() {
		section := &domain.Section{}
		err := rows.Scan(
			&section.ID, &section.CompanyID, &section.Type, &section.Content, &section.Image,
			&section.Layout, &section.VideoURL, &section.Order, &section.Visible,
			&section.CreatedAt, &section.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}
