package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/maxaizer/skillmatch/internal/matching"
	"github.com/maxaizer/skillmatch/internal/repositories"
	"github.com/maxaizer/skillmatch/internal/services"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// userError carries a message that is shown to the user as is.
type userError string

func (e userError) Error() string {
	return string(e)
}

func errorMessage(err error) string {
	var uErr userError
	switch {
	case errors.As(err, &uErr):
		return uErr.Error()
	case errors.Is(err, services.ErrNoSkillsAvailable):
		return noSkillsMessage
	case errors.Is(err, services.ErrUpstreamUnavailable):
		return "Job search is unavailable right now. Please try again later."
	case errors.Is(err, repositories.ErrAlreadySaved):
		return "This job is already in your saved list."
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, services.ErrJobNotSaved):
		return "This job is not in your saved list."
	default:
		log.Error(err)
		return "Internal error!"
	}
}

func (b *Bot) skillsOf(ctx context.Context, userID int64) ([]string, error) {
	profile, err := b.services.Profiles.Get(ctx, userID)
	if err != nil {
		logDbError(err)
		return nil, err
	}
	return profile.SkillsAsArray(), nil
}

func (b *Bot) setSkills(ctx context.Context, userID int64, args string) (string, error) {

	skills := lo.UniqBy(lo.Filter(lo.Map(strings.Split(args, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), func(s string, _ int) bool {
		return s != ""
	}), strings.ToLower)

	if len(skills) == 0 {
		return "", userError("List your skills separated by commas, e.g. /skills Python, SQL, Excel")
	}

	if err := b.services.Profiles.SetSkills(ctx, userID, skills); err != nil {
		logDbError(err)
		return "", err
	}
	return formatSkills(skills), nil
}

func (b *Bot) showSkills(ctx context.Context, userID int64) (string, error) {
	skills, err := b.skillsOf(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(skills) == 0 {
		return noSkillsMessage, nil
	}
	return formatSkills(skills), nil
}

func (b *Bot) recommend(ctx context.Context, userID int64, args string) (string, error) {

	skills, err := b.skillsOf(ctx, userID)
	if err != nil {
		return "", err
	}

	location, page := parseJobsArguments(args)
	recs, err := b.services.Recommender.BuildRecommendations(ctx, skills, location, page)
	if err != nil {
		return "", err
	}

	b.rememberRecommendations(userID, recs)
	return formatRecommendations(recs), nil
}

// parseJobsArguments treats a trailing number as the page and the rest as the location.
func parseJobsArguments(args string) (location string, page int) {
	parts := strings.Fields(args)
	page = 1
	if len(parts) > 0 {
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			page = n
			parts = parts[:len(parts)-1]
		}
	}
	return strings.Join(parts, " "), page
}

func (b *Bot) save(ctx context.Context, userID int64, args string) (string, error) {

	job, err := b.recommendedJobByNumber(userID, args)
	if err != nil {
		return "", err
	}

	if err = b.services.SavedJobs.Save(ctx, userID, *job); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saved \"%s\". See all saved jobs with /saved.", job.Title), nil
}

func (b *Bot) unsave(ctx context.Context, userID int64, args string) (string, error) {

	jobID := strings.TrimSpace(args)
	if jobID == "" {
		return "", userError("Send the job id from /saved, e.g. /unsave <id>")
	}

	if err := b.services.SavedJobs.Unsave(ctx, userID, jobID); err != nil {
		return "", err
	}
	return "Removed from saved jobs.", nil
}

func (b *Bot) listSaved(ctx context.Context, userID int64) (string, error) {
	jobs, err := b.services.SavedJobs.List(ctx, userID)
	if err != nil {
		return "", err
	}
	return formatSavedJobs(jobs), nil
}

// gap looks the job up in the last recommendations first and falls back to saved jobs.
func (b *Bot) gap(ctx context.Context, userID int64, args string) (string, error) {

	ref := strings.TrimSpace(args)
	if ref == "" {
		return "", userError("Send a job number from /jobs or an id from /saved, e.g. /gap 1")
	}

	skills, err := b.skillsOf(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(skills) == 0 {
		return "", services.ErrNoSkillsAvailable
	}

	if job := b.recommendedJobByRef(userID, ref); job != nil {
		return formatGap(job.Title, matching.Gap(job.Description, skills)), nil
	}

	saved, gap, err := b.services.SavedJobs.SkillGap(ctx, userID, ref, skills)
	if err != nil {
		return "", err
	}
	return formatGap(saved.Title, *gap), nil
}

func (b *Bot) recommendedJobByNumber(userID int64, args string) (*models.ScoredJob, error) {

	recs := b.recalledRecommendations(userID)
	if recs == nil || len(recs.Items) == 0 {
		return nil, userError("Run /jobs first, then pick a job by its number.")
	}

	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || n < 1 || n > len(recs.Items) {
		return nil, userError(fmt.Sprintf("Job number must be between 1 and %d.", len(recs.Items)))
	}
	return &recs.Items[n-1], nil
}

func (b *Bot) recommendedJobByRef(userID int64, ref string) *models.ScoredJob {

	recs := b.recalledRecommendations(userID)
	if recs == nil {
		return nil
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(recs.Items) {
		return &recs.Items[n-1]
	}

	job, found := lo.Find(recs.Items, func(item models.ScoredJob) bool {
		return item.ID == ref
	})
	return lo.Ternary(found, &job, nil)
}
