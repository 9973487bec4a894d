package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an employer account. Each user belongs to exactly one company,
// created together with the user at signup.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CompanyID    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
