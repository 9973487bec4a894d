package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hirefold/hirefold/internal/config"
	"github.com/hirefold/hirefold/internal/http/features/authn"
	"github.com/hirefold/hirefold/internal/http/features/company"
	"github.com/hirefold/hirefold/internal/http/features/jobs"
	"github.com/hirefold/hirefold/internal/http/features/public"
	"github.com/hirefold/hirefold/internal/http/features/sections"
	"github.com/hirefold/hirefold/internal/http/middleware"
	"github.com/hirefold/hirefold/internal/httputil"
	"github.com/hirefold/hirefold/pkg/auth"
	"github.com/hirefold/hirefold/pkg/repository"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger          *slog.Logger
	Accounts        *auth.AccountService
	Tokens          *auth.TokenService
	CompaniesRepo   *repository.CompaniesRepository
	SectionsRepo    *repository.SectionsRepository
	JobsRepo        *repository.JobsRepository
	RateLimitConfig config.RateLimitConfig
	SecurityHeaders config.SecurityHeadersConfig
	Validation      config.ValidationConfig
	CORSOrigins     []string
	CookieSecure    bool
	PublicCacheTTL  time.Duration
	PublicCacheCap  int
}

// NewRouter creates a new HTTP router with all routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.SecurityHeaders(cfg.SecurityHeaders))
	r.Use(middleware.RequestSizeLimit(cfg.Validation.MaxRequestBodySize))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	rateLimiters := middleware.CreateRateLimiters(cfg.RateLimitConfig, cfg.Logger)

	cookieConfig := httputil.DefaultCookieConfig()
	cookieConfig.Secure = cfg.CookieSecure
	if cfg.CookieSecure {
		// Cross-site frontends need SameSite=None, which browsers only
		// accept together with Secure.
		cookieConfig.SameSite = http.SameSiteNoneMode
	}

	// Authentication
	authnHandler := authn.NewHandler(cfg.Logger, cfg.Accounts, cfg.Tokens, cookieConfig)
	r.Group(func(r chi.Router) {
		r.Use(rateLimiters["auth"])
		r.Post("/api/auth/signup", authnHandler.Signup)
		r.Post("/api/auth/login", authnHandler.Login)
	})
	r.Post("/api/auth/logout", authnHandler.Logout)

	// Company management
	companyHandler := company.NewHandler(cfg.Logger, cfg.CompaniesRepo, cfg.SectionsRepo, cfg.JobsRepo)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Tokens))
		r.Get("/api/company/me", companyHandler.Me)
		r.Put("/api/company/branding", companyHandler.UpdateBranding)
		r.Put("/api/company/publish", companyHandler.Publish)
		r.Get("/api/company/preview", companyHandler.Preview)
	})

	// Section management. The reorder route is registered before the
	// {id} routes so "reorder" never parses as a section ID.
	sectionsHandler := sections.NewHandler(cfg.Logger, cfg.SectionsRepo)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Tokens))
		r.Put("/api/sections/reorder", sectionsHandler.Reorder)
		r.Post("/api/sections", sectionsHandler.Create)
		r.Get("/api/sections", sectionsHandler.List)
		r.Put("/api/sections/{id}", sectionsHandler.Update)
		r.Delete("/api/sections/{id}", sectionsHandler.Delete)
	})

	// Job board
	jobsHandler := jobs.NewHandler(cfg.Logger, cfg.JobsRepo)
	r.Get("/api/jobs", jobsHandler.List)
	r.With(middleware.Auth(cfg.Tokens)).Post("/api/jobs/seed", jobsHandler.Seed)

	// Public careers pages
	publicHandler := public.NewHandler(cfg.Logger, cfg.CompaniesRepo, cfg.SectionsRepo, cfg.JobsRepo, cfg.PublicCacheCap, cfg.PublicCacheTTL)
	r.Group(func(r chi.Router) {
		r.Use(rateLimiters["public"])
		r.Get("/api/companies", publicHandler.ListCompanies)
		r.Get("/api/public/{slug}/careers", publicHandler.CareersPage)
	})

	return r
}
