package jobs

import (
	"time"

	"github.com/google/uuid"
	"github.com/hirefold/hirefold/pkg/domain"
)

// seedJobs builds the sample job board. Fresh IDs and timestamps are
// generated on every call.
func seedJobs() []*domain.Job {
	seeds := []domain.Job{
		{
			Title:           "Senior Backend Engineer",
			WorkPolicy:      "Remote",
			Location:        "Berlin, Germany",
			Department:      "Engineering",
			EmploymentType:  "Full-time",
			ExperienceLevel: "Senior",
			JobType:         "Permanent",
			SalaryRange:     "€85,000 - €110,000",
			JobSlug:         "senior-backend-engineer",
			PostedDaysAgo:   "2 days ago",
			Status:          domain.JobStatusOpen,
		},
		{
			Title:           "Frontend Engineer",
			WorkPolicy:      "Hybrid",
			Location:        "Amsterdam, Netherlands",
			Department:      "Engineering",
			EmploymentType:  "Full-time",
			ExperienceLevel: "Mid-level",
			JobType:         "Permanent",
			SalaryRange:     "€60,000 - €80,000",
			JobSlug:         "frontend-engineer",
			PostedDaysAgo:   "5 days ago",
			Status:          domain.JobStatusOpen,
		},
		{
			Title:           "Product Designer",
			WorkPolicy:      "Remote",
			Location:        "London, UK",
			Department:      "Design",
			EmploymentType:  "Full-time",
			ExperienceLevel: "Mid-level",
			JobType:         "Permanent",
			SalaryRange:     "£55,000 - £70,000",
			JobSlug:         "product-designer",
			PostedDaysAgo:   "1 week ago",
			Status:          domain.JobStatusOpen,
		},
		{
			Title:           "DevOps Engineer",
			WorkPolicy:      "On-site",
			Location:        "Munich, Germany",
			Department:      "Infrastructure",
			EmploymentType:  "Full-time",
			ExperienceLevel: "Senior",
			JobType:         "Permanent",
			SalaryRange:     "€90,000 - €115,000",
			JobSlug:         "devops-engineer",
			PostedDaysAgo:   "3 days ago",
			Status:          domain.JobStatusOpen,
		},
		{
			Title:           "Engineering Manager",
			WorkPolicy:      "Hybrid",
			Location:        "Paris, France",
			Department:      "Engineering",
			EmploymentType:  "Full-time",
			ExperienceLevel: "Lead",
			JobType:         "Permanent",
			SalaryRange:     "€100,000 - €130,000",
			JobSlug:         "engineering-manager",
			PostedDaysAgo:   "2 weeks ago",
			Status:          domain.JobStatusOpen,
		},
		{
			Title:           "Data Analyst",
			WorkPolicy:      "Remote",
			Location:        "Lisbon, Portugal",
			Department:      "Data",
			EmploymentType:  "Contract",
			ExperienceLevel: "Junior",
			JobType:         "Contract",
			SalaryRange:     "€40,000 - €55,000",
			JobSlug:         "data-analyst",
			PostedDaysAgo:   "4 days ago",
			Status:          domain.JobStatusOpen,
		},
		{
			Title:           "Technical Writer",
			WorkPolicy:      "Remote",
			Location:        "Dublin, Ireland",
			Department:      "Product",
			EmploymentType:  "Part-time",
			ExperienceLevel: "Mid-level",
			JobType:         "Permanent",
			SalaryRange:     "€35,000 - €45,000",
			JobSlug:         "technical-writer",
			PostedDaysAgo:   "6 days ago",
			Status:          domain.JobStatusClosed,
		},
		{
			Title:           "QA Engineer",
			WorkPolicy:      "Hybrid",
			Location:        "Warsaw, Poland",
			Department:      "Engineering",
			EmploymentType:  "Full-time",
			ExperienceLevel: "Mid-level",
			JobType:         "Permanent",
			SalaryRange:     "zł140,000 - zł180,000",
			JobSlug:         "qa-engineer",
			PostedDaysAgo:   "1 day ago",
			Status:          domain.JobStatusOpen,
		},
	}

	now := time.Now()
	jobs := make([]*domain.Job, len(seeds))
	for i := range seeds {
		job := seeds[i]
		job.ID = uuid.New()
		job.CreatedAt = now
		job.UpdatedAt = now
		jobs[i] = &job
	}
	return jobs
}
