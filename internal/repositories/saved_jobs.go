package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrAlreadySaved = errors.New("job is already saved")
	ErrNotFound     = errors.New("record not found")
)

type SavedJobs struct {
	db *gorm.DB
}

func NewSavedJobsRepository(db *gorm.DB) *SavedJobs {
	return &SavedJobs{db: db}
}

func (repo *SavedJobs) Add(ctx context.Context, job models.SavedJob) error {
	job.DatePosted = job.DatePosted.UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	job.CreatedAt = job.CreatedAt.UTC()
	err := repo.db.WithContext(ctx).Create(&job).Error
	if isDuplicate(err) {
		return ErrAlreadySaved
	}
	return err
}

func (repo *SavedJobs) Remove(ctx context.Context, userID int64, jobID string) error {
	res := repo.db.WithContext(ctx).Delete(&models.SavedJob{}, "user_id = ? AND job_id = ?", userID, jobID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *SavedJobs) GetByUser(ctx context.Context, userID int64) ([]models.SavedJob, error) {
	var jobs []models.SavedJob
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetByID returns nil without error when the job is not saved by the user.
func (repo *SavedJobs) GetByID(ctx context.Context, userID int64, jobID string) (*models.SavedJob, error) {
	var job models.SavedJob
	err := repo.db.WithContext(ctx).First(&job, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// RemoveSavedBefore deletes jobs that users saved before the given moment, regardless of posting date.
func (repo *SavedJobs) RemoveSavedBefore(ctx context.Context, savedBefore time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.SavedJob{}, "created_at < ?", savedBefore.UTC())
	return res.RowsAffected, res.Error
}
