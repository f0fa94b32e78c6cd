package models

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type Profile struct {
	UserID         int64 `gorm:"primaryKey;autoIncrement:false"`
	Name           string
	Skills         string
	Experience     string
	Education      string
	ResumeUploaded bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ParsedResume struct {
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}

func JoinSkills(skills []string) string {
	cleaned := lo.Filter(lo.Map(skills, func(s string, _ int) string {
		return strings.TrimSpace(strings.ReplaceAll(s, ",", " "))
	}), func(s string, _ int) bool {
		return s != ""
	})
	return strings.Join(cleaned, ",")
}

func (p *Profile) SkillsAsArray() []string {
	if p == nil || p.Skills == "" {
		return []string{}
	}
	return lo.Map(strings.Split(p.Skills, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
}
