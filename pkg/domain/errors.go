package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Tenant errors
var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrSlugTaken       = errors.New("company slug already taken")
)

// Content errors
var (
	// ErrSectionNotFound covers both a missing section and a section owned
	// by another company; callers cannot tell the two apart.
	ErrSectionNotFound = errors.New("section not found")
)
