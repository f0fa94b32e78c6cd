package models

import "time"

const (
	DefaultJobTitle       = "Job Title Not Available"
	DefaultCompany        = "Company Not Specified"
	DefaultCountry        = "India"
	DefaultEmploymentType = "Full-time"
	DefaultPublisher      = "Not Specified"
	SalaryCurrency        = "INR"
)

type SalaryRange struct {
	Min      *float64
	Max      *float64
	Currency string
}

type Job struct {
	ID             string
	Title          string
	Company        string
	Location       string
	Description    string
	Salary         SalaryRange
	EmploymentType string
	DatePosted     time.Time
	ApplyURL       *string
	IsRemote       bool
	Publisher      string
}

type MatchResult struct {
	Percentage    int
	MatchedSkills []string
}

type ScoredJob struct {
	Job
	Match MatchResult
}

type Recommendations struct {
	Items       []ScoredJob
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

type GapLevel string

const (
	GapLevelStrong   GapLevel = "strong"
	GapLevelModerate GapLevel = "moderate"
	GapLevelWeak     GapLevel = "weak"
)

type SkillGap struct {
	Percentage int
	Matched    []string
	Missing    []string
	Level      GapLevel
}
