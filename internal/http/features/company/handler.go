package company

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/hirefold/hirefold/internal/http/middleware"
	"github.com/hirefold/hirefold/internal/httputil"
	"github.com/hirefold/hirefold/pkg/domain"
	"github.com/hirefold/hirefold/pkg/layout"
)

// CompanyStore is the company persistence the handler needs.
type CompanyStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	UpdateBranding(ctx context.Context, id uuid.UUID, branding domain.Branding) error
	UpdatePublished(ctx context.Context, id uuid.UUID, published bool) error
}

// SectionStore lists the sections shown on the page.
type SectionStore interface {
	ListVisibleByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Section, error)
}

// JobStore lists open jobs for the page.
type JobStore interface {
	ListOpen(ctx context.Context) ([]*domain.Job, error)
}

// Handler handles the authenticated company endpoints.
type Handler struct {
	logger    *slog.Logger
	companies CompanyStore
	sections  SectionStore
	jobs      JobStore
}

// NewHandler creates a new company handler.
func NewHandler(logger *slog.Logger, companies CompanyStore, sections SectionStore, jobs JobStore) *Handler {
	return &Handler{
		logger:    logger,
		companies: companies,
		sections:  sections,
		jobs:      jobs,
	}
}

// Me returns the authenticated user's company.
// GET /api/company/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	company, err := h.companies.GetByID(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			httputil.Error(w, http.StatusNotFound, "company not found")
			return
		}
		h.logger.Error("failed to get company", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to get company")
		return
	}

	httputil.JSON(w, http.StatusOK, company)
}

// UpdateBranding replaces the company's branding document with the request
// body. Fields absent from the body are cleared, not kept.
// PUT /api/company/branding
func (h *Handler) UpdateBranding(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	var branding domain.Branding
	if err := json.NewDecoder(r.Body).Decode(&branding); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.companies.UpdateBranding(r.Context(), companyID, branding); err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			httputil.Error(w, http.StatusNotFound, "company not found")
			return
		}
		h.logger.Error("failed to update branding", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to update branding")
		return
	}

	company, err := h.companies.GetByID(r.Context(), companyID)
	if err != nil {
		h.logger.Error("failed to reload company", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to update branding")
		return
	}

	httputil.JSON(w, http.StatusOK, company)
}

// PublishRequest sets the publish state of the careers page.
type PublishRequest struct {
	Published bool `json:"published"`
}

// PublishResponse reports the new publish state with the updated company.
type PublishResponse struct {
	Message string          `json:"message"`
	Company *domain.Company `json:"company"`
}

// Publish sets whether the public careers page is live.
// PUT /api/company/publish
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.companies.UpdatePublished(r.Context(), companyID, req.Published); err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			httputil.Error(w, http.StatusNotFound, "company not found")
			return
		}
		h.logger.Error("failed to update publish state", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to update publish state")
		return
	}

	company, err := h.companies.GetByID(r.Context(), companyID)
	if err != nil {
		h.logger.Error("failed to reload company", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to update publish state")
		return
	}

	message := "Careers page unpublished"
	if req.Published {
		message = "Careers page published"
	}
	h.logger.Info("publish state changed", "company_id", companyID, "published", req.Published)

	httputil.JSON(w, http.StatusOK, PublishResponse{Message: message, Company: company})
}

// PreviewResponse is the careers page as it would render right now,
// regardless of publish state.
type PreviewResponse struct {
	Company  *domain.Company          `json:"company"`
	Sections []layout.RenderedSection `json:"sections"`
	Jobs     []*domain.Job            `json:"jobs"`
}

// Preview returns the page exactly as the public endpoint would serve it,
// but for the owner and without requiring the page to be published.
// GET /api/company/preview
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	company, err := h.companies.GetByID(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			httputil.Error(w, http.StatusNotFound, "company not found")
			return
		}
		h.logger.Error("failed to get company", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to build preview")
		return
	}

	sections, err := h.sections.ListVisibleByCompany(r.Context(), companyID)
	if err != nil {
		h.logger.Error("failed to list sections", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to build preview")
		return
	}

	jobs, err := h.jobs.ListOpen(r.Context())
	if err != nil {
		h.logger.Error("failed to list jobs", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to build preview")
		return
	}

	httputil.JSON(w, http.StatusOK, PreviewResponse{
		Company:  company,
		Sections: layout.RenderSections(sections, company.Branding.CultureVideoURL),
		Jobs:     jobs,
	})
}
