package sections

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hirefold/hirefold/internal/http/middleware"
	"github.com/hirefold/hirefold/internal/httputil"
	"github.com/hirefold/hirefold/pkg/domain"
)

// Store is the section persistence the handler needs. Implemented by
// repository.SectionsRepository.
type Store interface {
	Create(ctx context.Context, section *domain.Section) error
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Section, error)
	Update(ctx context.Context, companyID, id uuid.UUID, update domain.SectionUpdate) (*domain.Section, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	Reorder(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) error
}

// Handler handles careers-page section management.
type Handler struct {
	logger   *slog.Logger
	store    Store
	validate *validator.Validate
}

// NewHandler creates a new sections handler.
func NewHandler(logger *slog.Logger, store Store) *Handler {
	return &Handler{
		logger:   logger,
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateRequest creates a new section. The section is appended at the end
// of the page; order cannot be chosen at creation time.
type CreateRequest struct {
	Type     string `json:"type" validate:"required,min=1,max=50"`
	Content  string `json:"content" validate:"required"`
	Image    string `json:"image"`
	Layout   string `json:"layout" validate:"omitempty,oneof=default image_left image_right full_width text_only cards video_bg video_split_left video_split_right"`
	VideoURL string `json:"videoUrl"`
	Visible  *bool  `json:"visible"`
}

// UpdateRequest is a partial section update. Absent fields keep their
// stored value; order is changed only through reorder.
type UpdateRequest struct {
	Type     *string `json:"type" validate:"omitempty,min=1,max=50"`
	Content  *string `json:"content"`
	Image    *string `json:"image"`
	Layout   *string `json:"layout" validate:"omitempty,oneof=default image_left image_right full_width text_only cards video_bg video_split_left video_split_right"`
	VideoURL *string `json:"videoUrl"`
	Visible  *bool   `json:"visible"`
}

// ReorderRequest rewrites the page order: position in the list becomes the
// new order.
type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds" validate:"required,min=1,dive,uuid"`
}

// Create handles section creation.
// POST /api/sections
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "type and content are required and layout must be a known value")
		return
	}

	layout := domain.Layout(req.Layout)
	if layout == "" {
		layout = domain.LayoutDefault
	}
	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	now := time.Now()
	section := &domain.Section{
		ID:        uuid.New(),
		CompanyID: companyID,
		Type:      req.Type,
		Content:   req.Content,
		Image:     req.Image,
		Layout:    layout,
		VideoURL:  req.VideoURL,
		Visible:   visible,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.store.Create(r.Context(), section); err != nil {
		h.logger.Error("failed to create section", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to create section")
		return
	}

	httputil.JSON(w, http.StatusCreated, section)
}

// List returns all of the company's sections in display order, hidden ones
// included.
// GET /api/sections
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	sections, err := h.store.ListByCompany(r.Context(), companyID)
	if err != nil {
		h.logger.Error("failed to list sections", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to list sections")
		return
	}
	if sections == nil {
		sections = []*domain.Section{}
	}

	httputil.JSON(w, http.StatusOK, sections)
}

// Update handles partial section updates.
// PUT /api/sections/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid section id")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "layout must be a known value")
		return
	}

	update := domain.SectionUpdate{
		Type:     req.Type,
		Content:  req.Content,
		Image:    req.Image,
		VideoURL: req.VideoURL,
		Visible:  req.Visible,
	}
	if req.Layout != nil {
		l := domain.Layout(*req.Layout)
		update.Layout = &l
	}

	section, err := h.store.Update(r.Context(), companyID, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrSectionNotFound) {
			httputil.Error(w, http.StatusNotFound, "section not found")
			return
		}
		h.logger.Error("failed to update section", "error", err, "company_id", companyID, "section_id", id)
		httputil.Error(w, http.StatusInternalServerError, "failed to update section")
		return
	}

	httputil.JSON(w, http.StatusOK, section)
}

// Delete removes a section. Remaining sections keep their order slots, so
// the page order can have gaps afterwards.
// DELETE /api/sections/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid section id")
		return
	}

	if err := h.store.Delete(r.Context(), companyID, id); err != nil {
		h.logger.Error("failed to delete section", "error", err, "company_id", companyID, "section_id", id)
		httputil.Error(w, http.StatusInternalServerError, "failed to delete section")
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"message": "Section deleted"})
}

// Reorder rewrites the order of the company's sections. IDs belonging to
// another company are skipped rather than rejected.
// PUT /api/sections/reorder
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing authorization")
		return
	}

	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "orderedIds must be a non-empty list of ids")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.OrderedIDs))
	for _, raw := range req.OrderedIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			httputil.Error(w, http.StatusBadRequest, "invalid section id in list")
			return
		}
		ids = append(ids, id)
	}

	if err := h.store.Reorder(r.Context(), companyID, ids); err != nil {
		h.logger.Error("failed to reorder sections", "error", err, "company_id", companyID)
		httputil.Error(w, http.StatusInternalServerError, "failed to reorder sections")
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"message": "Sections reordered"})
}
