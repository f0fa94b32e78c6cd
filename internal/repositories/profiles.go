package repositories

import (
	"context"

	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Profiles struct {
	db *gorm.DB
}

func NewProfilesRepository(db *gorm.DB) *Profiles {
	return &Profiles{db: db}
}

// Get returns nil without error when the user has no profile yet.
func (repo *Profiles) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	var profile models.Profile
	if err := repo.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (repo *Profiles) Upsert(ctx context.Context, profile models.Profile) error {
	return repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "skills", "experience", "education", "resume_uploaded", "updated_at"}),
	}).Create(&profile).Error
}

func (repo *Profiles) SetSkills(ctx context.Context, userID int64, skills []string) error {
	return repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"skills", "updated_at"}),
	}).Create(&models.Profile{UserID: userID, Skills: models.JoinSkills(skills)}).Error
}
