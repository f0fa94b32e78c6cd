// Package normalizer maps provider job records onto the canonical models.Job.
package normalizer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maxaizer/skillmatch/internal/domain/models"
	log "github.com/sirupsen/logrus"
)

// GeneratedIDPrefix marks ids derived from record content because the provider sent none.
const GeneratedIDPrefix = "gen-"

type rule struct {
	keys     []string
	fallback string
}

// fields lists, for every canonical field, the provider keys in precedence order and the default.
// A key wins only when its value is usable: absent, null, "", 0 and false fall through.
var fields = struct {
	ID, Title, Company                   rule
	City, State, Country                 rule
	Description                          rule
	SalaryMin, SalaryMax                 rule
	EmploymentType, DatePosted, ApplyURL rule
	IsRemote, Publisher                  rule
}{
	ID:             rule{keys: []string{"job_id", "id"}},
	Title:          rule{keys: []string{"job_title", "title"}, fallback: models.DefaultJobTitle},
	Company:        rule{keys: []string{"employer_name", "company"}, fallback: models.DefaultCompany},
	City:           rule{keys: []string{"job_city"}},
	State:          rule{keys: []string{"job_state"}},
	Country:        rule{keys: []string{"job_country"}, fallback: models.DefaultCountry},
	Description:    rule{keys: []string{"job_description", "description"}},
	SalaryMin:      rule{keys: []string{"job_min_salary", "salary_min"}},
	SalaryMax:      rule{keys: []string{"job_max_salary", "salary_max"}},
	EmploymentType: rule{keys: []string{"job_employment_type", "type"}, fallback: models.DefaultEmploymentType},
	DatePosted:     rule{keys: []string{"job_posted_at_datetime_utc", "created"}},
	ApplyURL:       rule{keys: []string{"job_apply_link", "redirect_url"}},
	IsRemote:       rule{keys: []string{"job_is_remote"}},
	Publisher:      rule{keys: []string{"job_publisher"}, fallback: models.DefaultPublisher},
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Normalize never fails: unusable or missing fields take their defaults, now included for DatePosted.
func Normalize(raw models.RawJob, now time.Time) models.Job {
	job := models.Job{
		Title:          text(raw, fields.Title),
		Company:        text(raw, fields.Company),
		Location:       location(raw),
		Description:    text(raw, fields.Description),
		EmploymentType: text(raw, fields.EmploymentType),
		Publisher:      text(raw, fields.Publisher),
		Salary: models.SalaryRange{
			Min:      number(raw, fields.SalaryMin),
			Max:      number(raw, fields.SalaryMax),
			Currency: models.SalaryCurrency,
		},
		DatePosted: date(raw, fields.DatePosted, now),
		IsRemote:   boolean(raw, fields.IsRemote),
	}

	if applyURL := text(raw, fields.ApplyURL); applyURL != "" {
		job.ApplyURL = &applyURL
	}

	job.ID = text(raw, fields.ID)
	if job.ID == "" {
		job.ID = contentID(job)
	}

	if job.Description == "" {
		log.WithField("job_id", job.ID).Debug("job record has no description")
	}
	return job
}

// NormalizeAll normalizes records in order with a single timestamp.
func NormalizeAll(raws []models.RawJob, now time.Time) []models.Job {
	jobs := make([]models.Job, 0, len(raws))
	for _, raw := range raws {
		jobs = append(jobs, Normalize(raw, now))
	}
	return jobs
}

func text(raw models.RawJob, r rule) string {
	for _, key := range r.keys {
		if s, ok := raw.Get(key).Text(); ok {
			return s
		}
	}
	return r.fallback
}

func number(raw models.RawJob, r rule) *float64 {
	for _, key := range r.keys {
		if n, ok := raw.Get(key).Number(); ok {
			return &n
		}
	}
	return nil
}

func boolean(raw models.RawJob, r rule) bool {
	for _, key := range r.keys {
		if b, ok := raw.Get(key).Bool(); ok {
			return b
		}
	}
	return false
}

func date(raw models.RawJob, r rule, now time.Time) time.Time {
	for _, key := range r.keys {
		s, ok := raw.Get(key).Text()
		if !ok {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC()
			}
		}
	}
	return now.UTC()
}

func location(raw models.RawJob) string {
	parts := []string{text(raw, fields.City), text(raw, fields.State), text(raw, fields.Country)}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// contentID derives a stable id from fields that do not depend on the normalization time.
func contentID(job models.Job) string {
	applyURL := ""
	if job.ApplyURL != nil {
		applyURL = *job.ApplyURL
	}
	content := strings.Join([]string{job.Title, job.Company, job.Location, job.Description, applyURL}, "\x1f")
	return GeneratedIDPrefix + uuid.NewSHA1(uuid.NameSpaceURL, []byte(content)).String()
}
