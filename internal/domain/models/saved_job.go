package models

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type SavedJob struct {
	ID          int    `gorm:"primaryKey"`
	UserID      int64  `gorm:"uniqueIndex:idx_user_job"`
	JobID       string `gorm:"uniqueIndex:idx_user_job"`
	Title       string
	Company     string
	Location    string
	Salary      string
	Link        string
	Description string
	Skills      string
	DatePosted  time.Time `gorm:"index"`
	JobType     string
	MatchScore  int
	CreatedAt   time.Time
}

func (s *SavedJob) SkillsAsArray() []string {
	if s.Skills == "" {
		return []string{}
	}
	return lo.Map(strings.Split(s.Skills, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}
