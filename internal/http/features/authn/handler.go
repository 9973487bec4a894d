package authn

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hirefold/hirefold/internal/httputil"
	"github.com/hirefold/hirefold/pkg/auth"
	"github.com/hirefold/hirefold/pkg/domain"
)

// Handler handles employer signup, login and logout.
type Handler struct {
	logger       *slog.Logger
	accounts     *auth.AccountService
	tokens       *auth.TokenService
	validate     *validator.Validate
	cookieConfig httputil.CookieConfig
}

// NewHandler creates a new authn handler.
func NewHandler(logger *slog.Logger, accounts *auth.AccountService, tokens *auth.TokenService, cookieConfig httputil.CookieConfig) *Handler {
	return &Handler{
		logger:       logger,
		accounts:     accounts,
		tokens:       tokens,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		cookieConfig: cookieConfig,
	}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	CompanyName string `json:"companyName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful signup or login.
type AuthResponse struct {
	User    UserInfo        `json:"user"`
	Company *domain.Company `json:"company"`
}

// UserInfo is the user part of an auth response.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Signup handles company signup.
// POST /api/auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "company name, email and password (min 8 chars) are required")
		return
	}

	user, company, err := h.accounts.Signup(r.Context(), req.CompanyName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			httputil.Error(w, http.StatusConflict, "an account with this email already exists")
		case errors.Is(err, domain.ErrSlugTaken):
			httputil.Error(w, http.StatusConflict, "a company with this name already exists")
		default:
			h.logger.Error("signup failed", "error", err)
			httputil.Error(w, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	token, err := h.tokens.Issue(user.ID, company.ID)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err, "user_id", user.ID)
		httputil.Error(w, http.StatusInternalServerError, "failed to issue session")
		return
	}

	httputil.SetSessionCookie(w, token, h.tokens.SessionTTL(), h.cookieConfig)
	h.logger.Info("company signed up", "company_id", company.ID, "slug", company.Slug)

	httputil.JSON(w, http.StatusCreated, AuthResponse{
		User:    UserInfo{ID: user.ID.String(), Email: user.Email},
		Company: company,
	})
}

// Login handles employer login.
// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httputil.Error(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.logger.Error("login failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "authentication failed")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.CompanyID)
	if err != nil {
		h.logger.Error("failed to issue token", "error", err, "user_id", user.ID)
		httputil.Error(w, http.StatusInternalServerError, "failed to issue session")
		return
	}

	httputil.SetSessionCookie(w, token, h.tokens.SessionTTL(), h.cookieConfig)

	httputil.JSON(w, http.StatusOK, AuthResponse{
		User: UserInfo{ID: user.ID.String(), Email: user.Email},
	})
}

// Logout clears the session cookie.
// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	httputil.ClearSessionCookie(w, h.cookieConfig)
	httputil.JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
