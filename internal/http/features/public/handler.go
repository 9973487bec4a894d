package public

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hirefold/hirefold/internal/httputil"
	"github.com/hirefold/hirefold/pkg/domain"
	"github.com/hirefold/hirefold/pkg/layout"
	"github.com/viccon/sturdyc"
)

const cacheShards = 16

// CompanyStore is the company persistence the public endpoints need.
type CompanyStore interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Company, error)
	ListPublished(ctx context.Context) ([]*domain.Company, error)
}

// SectionStore lists the sections shown on the page.
type SectionStore interface {
	ListVisibleByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Section, error)
}

// JobStore lists open jobs for the page.
type JobStore interface {
	ListOpen(ctx context.Context) ([]*domain.Job, error)
}

// CareersPage is the full payload of a public careers page.
type CareersPage struct {
	Company  *domain.Company          `json:"company"`
	Sections []layout.RenderedSection `json:"sections"`
	Jobs     []*domain.Job            `json:"jobs"`
}

// CompanyListing is one entry in the public company directory.
type CompanyListing struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	LogoURL  string    `json:"logoUrl,omitempty"`
	Headline string    `json:"headline,omitempty"`
	JobCount int       `json:"jobCount"`
}

// Handler serves the unauthenticated careers pages. Page payloads are
// served through a read-through cache keyed by slug, so a hot page does
// not hit the database on every request.
type Handler struct {
	logger    *slog.Logger
	companies CompanyStore
	sections  SectionStore
	jobs      JobStore
	cache     *sturdyc.Client[*CareersPage]
}

// NewHandler creates a new public handler.
func NewHandler(logger *slog.Logger, companies CompanyStore, sections SectionStore, jobs JobStore, cacheCapacity int, cacheTTL time.Duration) *Handler {
	return &Handler{
		logger:    logger,
		companies: companies,
		sections:  sections,
		jobs:      jobs,
		cache:     sturdyc.New[*CareersPage](cacheCapacity, cacheShards, cacheTTL, 10),
	}
}

// CareersPage serves a published careers page by slug. Unpublished and
// unknown slugs both return 404.
// GET /api/public/{slug}/careers
func (h *Handler) CareersPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		httputil.Error(w, http.StatusNotFound, "careers page not found")
		return
	}

	page, err := h.cache.GetOrFetch(r.Context(), "careers:"+slug, func(ctx context.Context) (*CareersPage, error) {
		return h.buildPage(ctx, slug)
	})
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			httputil.Error(w, http.StatusNotFound, "careers page not found")
			return
		}
		h.logger.Error("failed to build careers page", "error", err, "slug", slug)
		httputil.Error(w, http.StatusInternalServerError, "failed to load careers page")
		return
	}

	httputil.JSON(w, http.StatusOK, page)
}

func (h *Handler) buildPage(ctx context.Context, slug string) (*CareersPage, error) {
	company, err := h.companies.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	sections, err := h.sections.ListVisibleByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	jobs, err := h.jobs.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}

	return &CareersPage{
		Company:  company,
		Sections: layout.RenderSections(sections, company.Branding.CultureVideoURL),
		Jobs:     jobs,
	}, nil
}

// ListCompanies serves the public directory of published companies.
// GET /api/companies
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.ListPublished(r.Context())
	if err != nil {
		h.logger.Error("failed to list companies", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	jobs, err := h.jobs.ListOpen(r.Context())
	if err != nil {
		h.logger.Error("failed to count jobs", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	// The board is shared, so every company currently shows the same count.
	listings := make([]CompanyListing, 0, len(companies))
	for _, c := range companies {
		listings = append(listings, CompanyListing{
			ID:       c.ID,
			Name:     c.Name,
			Slug:     c.Slug,
			LogoURL:  c.Branding.LogoURL,
			Headline: c.Branding.Headline,
			JobCount: len(jobs),
		})
	}

	httputil.JSON(w, http.StatusOK, listings)
}
