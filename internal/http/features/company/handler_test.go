package company

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/hirefold/hirefold/internal/http/middleware"
	"github.com/hirefold/hirefold/pkg/domain"
)

type fakeCompanyStore struct {
	companies map[uuid.UUID]*domain.Company
}

func (f *fakeCompanyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCompanyStore) UpdateBranding(ctx context.Context, id uuid.UUID, branding domain.Branding) error {
	c, ok := f.companies[id]
	if !ok {
		return domain.ErrCompanyNotFound
	}
	c.Branding = branding
	return nil
}

func (f *fakeCompanyStore) UpdatePublished(ctx context.Context, id uuid.UUID, published bool) error {
	c, ok := f.companies[id]
	if !ok {
		return domain.ErrCompanyNotFound
	}
	c.Published = published
	return nil
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

func newTestHandler(companyID uuid.UUID) (*Handler, *fakeCompanyStore, *fakeSectionStore, *fakeJobStore) {
	companies := &fakeCompanyStore{companies: map[uuid.UUID]*domain.Company{
		companyID: {
			ID:   companyID,
			Name: "Acme Robotics",
			Slug: "acme-robotics",
			Branding: domain.Branding{
				PrimaryColor:    "#336699",
				CultureVideoURL: "https://vimeo.com/76979871",
			},
		},
	}}
	sections := &fakeSectionStore{}
	jobs := &fakeJobStore{}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewHandler(logger, companies, sections, jobs), companies, sections, jobs
}

func authedRequest(method, path, body string, companyID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	ctx := context.WithValue(req.Context(), middleware.CompanyIDKey, companyID)
	return req.WithContext(ctx)
}

func TestMe(t *testing.T) {
	companyID := uuid.New()
	handler, _, _, _ := newTestHandler(companyID)

	rec := httptest.NewRecorder()
	handler.Me(rec, authedRequest(http.MethodGet, "/api/company/me", "", companyID))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var company domain.Company
	json.NewDecoder(rec.Body).Decode(&company)
	if company.Slug != "acme-robotics" {
		t.Errorf("slug = %q, want acme-robotics", company.Slug)
	}
}

func TestMe_NoAuthContext(t *testing.T) {
	handler, _, _, _ := newTestHandler(uuid.New())

	rec := httptest.NewRecorder()
	handler.Me(rec, httptest.NewRequest(http.MethodGet, "/api/company/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestUpdateBranding_FullReplace(t *testing.T) {
	companyID := uuid.New()
	handler, companies, _, _ := newTestHandler(companyID)

	// Only primaryColor in the body: every other branding field is cleared.
	rec := httptest.NewRecorder()
	handler.UpdateBranding(rec, authedRequest(http.MethodPut, "/api/company/branding", `{"primaryColor": "#ff0000"}`, companyID))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	stored := companies.companies[companyID].Branding
	if stored.PrimaryColor != "#ff0000" {
		t.Errorf("primaryColor = %q, want #ff0000", stored.PrimaryColor)
	}
	if stored.CultureVideoURL != "" {
		t.Errorf("cultureVideoUrl = %q, want cleared by full replace", stored.CultureVideoURL)
	}
}

func TestPublish_Toggle(t *testing.T) {
	companyID := uuid.New()
	handler, companies, _, _ := newTestHandler(companyID)

	rec := httptest.NewRecorder()
	handler.Publish(rec, authedRequest(http.MethodPut, "/api/company/publish", `{"published": true}`, companyID))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp PublishResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Message != "Careers page published" {
		t.Errorf("message = %q, want publish message", resp.Message)
	}
	if resp.Company == nil || !resp.Company.Published {
		t.Errorf("response company = %+v, want published", resp.Company)
	}
	if !companies.companies[companyID].Published {
		t.Error("company should be published in store")
	}

	rec = httptest.NewRecorder()
	handler.Publish(rec, authedRequest(http.MethodPut, "/api/company/publish", `{"published": false}`, companyID))
	resp = PublishResponse{}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Message != "Careers page unpublished" {
		t.Errorf("message = %q, want unpublish message", resp.Message)
	}
	if resp.Company == nil || resp.Company.Published {
		t.Errorf("response company = %+v, want unpublished", resp.Company)
	}
}

func TestPreview_IgnoresPublishState(t *testing.T) {
	companyID := uuid.New()
	handler, companies, sections, jobs := newTestHandler(companyID)
	companies.companies[companyID].Published = false

	sections.sections = []*domain.Section{
		{ID: uuid.New(), CompanyID: companyID, Type: "about", Layout: domain.LayoutDefault, Visible: true},
		{ID: uuid.New(), CompanyID: companyID, Type: "hidden", Layout: domain.LayoutDefault, Visible: false},
	}
	jobs.jobs = []*domain.Job{
		{ID: uuid.New(), Title: "Open role", Status: domain.JobStatusOpen},
		{ID: uuid.New(), Title: "Closed role", Status: domain.JobStatusClosed},
	}

	rec := httptest.NewRecorder()
	handler.Preview(rec, authedRequest(http.MethodGet, "/api/company/preview", "", companyID))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, preview must work on unpublished pages", rec.Code)
	}

	var resp PreviewResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if len(resp.Sections) != 1 || resp.Sections[0].Type != "about" {
		t.Errorf("preview should contain only visible sections, got %+v", resp.Sections)
	}
	if len(resp.Jobs) != 1 || resp.Jobs[0].Title != "Open role" {
		t.Errorf("preview should contain only open jobs, got %+v", resp.Jobs)
	}
	if resp.Sections[0].Layout != domain.LayoutImageLeft {
		t.Errorf("default layout should resolve to image_left, got %q", resp.Sections[0].Layout)
	}
}
