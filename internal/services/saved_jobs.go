package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/skillmatch/internal/domain/events"
	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/maxaizer/skillmatch/internal/format"
	"github.com/maxaizer/skillmatch/internal/logger"
	"github.com/maxaizer/skillmatch/internal/matching"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrJobNotSaved = errors.New("job is not saved")

type savedJobRepository interface {
	Add(ctx context.Context, job models.SavedJob) error
	Remove(ctx context.Context, userID int64, jobID string) error
	GetByUser(ctx context.Context, userID int64) ([]models.SavedJob, error)
	GetByID(ctx context.Context, userID int64, jobID string) (*models.SavedJob, error)
}

type SavedJobsService struct {
	bus  EventBus.Bus
	jobs savedJobRepository
}

func NewSavedJobsService(bus EventBus.Bus, jobs savedJobRepository) *SavedJobsService {
	return &SavedJobsService{bus: bus, jobs: jobs}
}

// Save stores the subset of a scored job that the saved list shows later.
func (s *SavedJobsService) Save(ctx context.Context, userID int64, job models.ScoredJob) error {
	if err := s.jobs.Add(ctx, ToSavedJob(userID, job)); err != nil {
		return errors.Wrapf(err, "failed to save job %s", job.ID)
	}

	s.bus.Publish(events.JobSavedTopic, events.JobSaved{UserID: userID, JobID: job.ID, MatchScore: job.Match.Percentage})
	return nil
}

func (s *SavedJobsService) Unsave(ctx context.Context, userID int64, jobID string) error {
	if err := s.jobs.Remove(ctx, userID, jobID); err != nil {
		return errors.Wrapf(err, "failed to unsave job %s", jobID)
	}

	s.bus.Publish(events.JobUnsavedTopic, events.JobUnsaved{UserID: userID, JobID: jobID})
	return nil
}

func (s *SavedJobsService) List(ctx context.Context, userID int64) ([]models.SavedJob, error) {
	jobs, err := s.jobs.GetByUser(ctx, userID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get saved jobs: %v", err)
		return nil, err
	}
	return jobs, nil
}

// SkillGap compares skills against the description of a job the user saved.
func (s *SavedJobsService) SkillGap(ctx context.Context, userID int64, jobID string, skills []string) (*models.SavedJob, *models.SkillGap, error) {
	job, err := s.jobs.GetByID(ctx, userID, jobID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get saved job: %v", err)
		return nil, nil, err
	}
	if job == nil {
		return nil, nil, ErrJobNotSaved
	}

	gap := matching.Gap(job.Description, skills)
	return job, &gap, nil
}

func ToSavedJob(userID int64, job models.ScoredJob) models.SavedJob {
	link := ""
	if job.ApplyURL != nil {
		link = *job.ApplyURL
	}

	return models.SavedJob{
		UserID:      userID,
		JobID:       job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Salary:      format.SalaryRange(job.Salary.Min, job.Salary.Max),
		Link:        link,
		Description: job.Description,
		Skills:      models.JoinSkills(job.Match.MatchedSkills),
		DatePosted:  job.DatePosted.UTC(),
		JobType:     job.EmploymentType,
		MatchScore:  job.Match.Percentage,
	}
}
