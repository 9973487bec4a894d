package public

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hirefold/hirefold/pkg/domain"
)

type fakeCompanyStore struct {
	companies []*domain.Company
}

func (f *fakeCompanyStore) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	for _, c := range f.companies {
		if c.Slug == slug && c.Published {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domain.ErrCompanyNotFound
}

func (f *fakeCompanyStore) ListPublished(ctx context.Context) ([]*domain.Company, error) {
	var out []*domain.Company
	for _, c := range f.companies {
		if c.Published {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeSectionStore struct {
	sections []*domain.Section
}

func (f *fakeSectionStore) ListVisibleByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Section, error) {
	var out []*domain.Section
	for _, s := range f.sections {
		if s.CompanyID == companyID && s.Visible {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeJobStore struct {
	jobs []*domain.Job
}

func (f *fakeJobStore) ListOpen(ctx context.Context) ([]*domain.Job, error) {
	var out []*domain.Job
	for _, j := range f.jobs {
		if j.Status == domain.JobStatusOpen {
			out = append(out, j)
		}
	}
	return out, nil
}

type testEnv struct {
	router    http.Handler
	companies *fakeCompanyStore
	sections  *fakeSectionStore
	jobs      *fakeJobStore
}

func newTestEnv(t *testing.T, cacheTTL time.Duration) *testEnv {
	t.Helper()

	companies := &fakeCompanyStore{}
	sections := &fakeSectionStore{}
	jobs := &fakeJobStore{}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	handler := NewHandler(logger, companies, sections, jobs, 1000, cacheTTL)
	r := chi.NewRouter()
	r.Get("/api/companies", handler.ListCompanies)
	r.Get("/api/public/{slug}/careers", handler.CareersPage)

	return &testEnv{router: r, companies: companies, sections: sections, jobs: jobs}
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func publishedCompany(slug string) *domain.Company {
	return &domain.Company{
		ID:        uuid.New(),
		Name:      "Acme Robotics",
		Slug:      slug,
		Published: true,
		Branding: domain.Branding{
			LogoURL:         "https://cdn.example.com/logo.png",
			Headline:        "Build robots with us",
			CultureVideoURL: "https://vimeo.com/76979871",
		},
	}
}

func TestCareersPage_Published(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	company := publishedCompany("acme-robotics")
	env.companies.companies = []*domain.Company{company}
	env.sections.sections = []*domain.Section{
		{ID: uuid.New(), CompanyID: company.ID, Type: "about", Layout: domain.LayoutDefault, Visible: true, Order: 1},
		{ID: uuid.New(), CompanyID: company.ID, Type: "culture", Layout: domain.LayoutVideoBG, Visible: true, Order: 2},
		{ID: uuid.New(), CompanyID: company.ID, Type: "secret", Layout: domain.LayoutDefault, Visible: false, Order: 3},
	}
	env.jobs.jobs = []*domain.Job{
		{ID: uuid.New(), Title: "Open role", Status: domain.JobStatusOpen},
		{ID: uuid.New(), Title: "Closed role", Status: domain.JobStatusClosed},
	}

	rec := env.get("/api/public/acme-robotics/careers")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var page CareersPage
	json.NewDecoder(rec.Body).Decode(&page)
	if page.Company.Slug != "acme-robotics" {
		t.Errorf("company slug = %q", page.Company.Slug)
	}
	if len(page.Sections) != 2 {
		t.Fatalf("sections = %d, want 2 visible", len(page.Sections))
	}
	if page.Sections[1].Video == nil {
		t.Error("video layout should carry the culture video fallback")
	}
	if len(page.Jobs) != 1 || page.Jobs[0].Title != "Open role" {
		t.Errorf("jobs = %+v, want only the open role", page.Jobs)
	}
}

func TestCareersPage_UnpublishedIs404(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	company := publishedCompany("acme-robotics")
	company.Published = false
	env.companies.companies = []*domain.Company{company}

	rec := env.get("/api/public/acme-robotics/careers")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCareersPage_UnknownSlugIs404(t *testing.T) {
	env := newTestEnv(t, time.Minute)

	rec := env.get("/api/public/who/careers")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCareersPage_ServedFromCache(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	company := publishedCompany("acme-robotics")
	env.companies.companies = []*domain.Company{company}

	if rec := env.get("/api/public/acme-robotics/careers"); rec.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", rec.Code)
	}

	// Rename the company behind the cache's back. Within the TTL the page
	// keeps serving the cached payload.
	env.companies.companies[0].Name = "Renamed Inc"

	rec := env.get("/api/public/acme-robotics/careers")
	if rec.Code != http.StatusOK {
		t.Fatalf("second request: status = %d", rec.Code)
	}
	var page CareersPage
	json.NewDecoder(rec.Body).Decode(&page)
	if page.Company.Name != "Acme Robotics" {
		t.Errorf("company name = %q, want cached %q", page.Company.Name, "Acme Robotics")
	}
}

func TestListCompanies(t *testing.T) {
	env := newTestEnv(t, time.Minute)
	published := publishedCompany("acme-robotics")
	hidden := publishedCompany("stealth-co")
	hidden.Published = false
	env.companies.companies = []*domain.Company{published, hidden}
	env.jobs.jobs = []*domain.Job{
		{ID: uuid.New(), Title: "Open role", Status: domain.JobStatusOpen},
	}

	rec := env.get("/api/companies")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var listings []CompanyListing
	json.NewDecoder(rec.Body).Decode(&listings)
	if len(listings) != 1 {
		t.Fatalf("listings = %d, want only the published company", len(listings))
	}
	if listings[0].Slug != "acme-robotics" {
		t.Errorf("slug = %q", listings[0].Slug)
	}
	if listings[0].JobCount != 1 {
		t.Errorf("jobCount = %d, want 1", listings[0].JobCount)
	}
	if listings[0].Headline != "Build robots with us" {
		t.Errorf("headline = %q", listings[0].Headline)
	}
}
