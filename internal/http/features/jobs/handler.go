package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hirefold/hirefold/internal/httputil"
	"github.com/hirefold/hirefold/pkg/domain"
)

// Store is the job-board persistence the handler needs.
type Store interface {
	ReplaceAll(ctx context.Context, jobs []*domain.Job) error
	List(ctx context.Context) ([]*domain.Job, error)
}

// Handler handles the shared job board.
type Handler struct {
	logger *slog.Logger
	store  Store
}

// NewHandler creates a new jobs handler.
func NewHandler(logger *slog.Logger, store Store) *Handler {
	return &Handler{logger: logger, store: store}
}

// List returns every job on the board.
// GET /api/jobs
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list jobs", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}

	httputil.JSON(w, http.StatusOK, jobs)
}

// Seed replaces the whole job board. A JSON array of jobs in the body
// becomes the new board; with an empty body the built-in sample set is
// used instead.
// POST /api/jobs/seed
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	var jobs []*domain.Job
	if err := json.NewDecoder(r.Body).Decode(&jobs); err != nil && !errors.Is(err, io.EOF) {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(jobs) == 0 {
		jobs = seedJobs()
	} else {
		now := time.Now()
		for _, j := range jobs {
			if j.ID == uuid.Nil {
				j.ID = uuid.New()
			}
			if j.Status == "" {
				j.Status = domain.JobStatusOpen
			}
			if j.CreatedAt.IsZero() {
				j.CreatedAt = now
			}
			if j.UpdatedAt.IsZero() {
				j.UpdatedAt = now
			}
		}
	}

	if err := h.store.ReplaceAll(r.Context(), jobs); err != nil {
		h.logger.Error("failed to seed jobs", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "failed to seed jobs")
		return
	}

	h.logger.Info("job board seeded", "count", len(jobs))
	httputil.JSON(w, http.StatusCreated, map[string]any{
		"message": "Job board seeded",
		"count":   len(jobs),
	})
}
