package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompanyVideo is a named culture video reference stored in branding.
type CompanyVideo struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Branding holds the customizable appearance of a company's careers page.
// Stored as a single JSON document and replaced wholesale on update.
type Branding struct {
	PrimaryColor          string `json:"primaryColor,omitempty"`
	PrimaryBackground     string `json:"primaryBackground,omitempty"`
	SecondaryBackground   string `json:"secondaryBackground,omitempty"`
	PrimaryText           string `json:"primaryText,omitempty"`
	SecondaryText         string `json:"secondaryText,omitempty"`
	LogoURL               string `json:"logoUrl,omitempty"`
	BannerURL             string `json:"bannerUrl,omitempty"`
	SelectedBannerPattern string `json:"selectedBannerPattern,omitempty"`
	// CultureVideoURL is the legacy singular field, kept as the fallback
	// video for video layouts when a section has none of its own.
	CultureVideoURL string         `json:"cultureVideoUrl,omitempty"`
	Headline        string         `json:"headline,omitempty"`
	CompanyVideos   []CompanyVideo `json:"companyVideos,omitempty"`
}

// Company is a tenant account. The slug is immutable once created and is
// used in public careers-page URLs.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Branding  Branding  `json:"branding"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
