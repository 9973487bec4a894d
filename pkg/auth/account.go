package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hirefold/hirefold/pkg/domain"
	"github.com/hirefold/hirefold/pkg/repository"
	"github.com/lib/pq"
)

// AccountService handles employer signup and login.
type AccountService struct {
	db        *sql.DB
	users     *repository.UsersRepository
	companies *repository.CompaniesRepository
}

// NewAccountService creates a new account service.
func NewAccountService(db *sql.DB, users *repository.UsersRepository, companies *repository.CompaniesRepository) *AccountService {
	return &AccountService{
		db:        db,
		users:     users,
		companies: companies,
	}
}

// Signup creates a company and its first user in one transaction. The
// company slug is derived from the name; a name collision surfaces as
// ErrSlugTaken, a reused email as ErrUserAlreadyExists.
func (s *AccountService) Signup(ctx context.Context, companyName, email, password string) (*domain.User, *domain.Company, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	company := &domain.Company{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(companyName),
		Slug:      Slugify(companyName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CompanyID:    company.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = repository.Tx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.companies.CreateTx(ctx, tx, company); err != nil {
			return err
		}
		return s.users.CreateTx(ctx, tx, user)
	})
	if err != nil {
		return nil, nil, mapUniqueViolation(err)
	}

	return user, company, nil
}

// Authenticate verifies email and password and returns the user on success.
// A missing user and a wrong password both come back as
// ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// mapUniqueViolation translates postgres unique-index violations raised
// during signup into domain errors.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return err
	}
	if strings.Contains(pqErr.Constraint, "slug") {
		return domain.ErrSlugTaken
	}
	if strings.Contains(pqErr.Constraint, "email") {
		return domain.ErrUserAlreadyExists
	}
	return err
}
