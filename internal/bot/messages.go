package bot

import (
	"fmt"
	"strings"

	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/maxaizer/skillmatch/internal/format"
)

const helpMessage = `Hi! I match job postings against your skills.

/resume - upload your resume, I will extract your skills from it
/skills Python, SQL - set your skills manually
/myskills - show your current skills
/jobs [location] [page] - jobs ranked by how well they match your skills
/save <number> - save a job from the last list
/saved - your saved jobs
/unsave <id> - remove a saved job
/gap <number or id> - skills you have and miss for a job`

const noSkillsMessage = "You have no skills yet. Upload your resume with /resume or list them with /skills Python, SQL."

func formatRecommendations(recs *models.Recommendations) string {

	if len(recs.Items) == 0 {
		return "No jobs found for your skills. Try another location or page."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Jobs for you (page %d of %d, %d in total):\n", recs.CurrentPage, recs.TotalPages, recs.TotalCount)

	for i, item := range recs.Items {
		fmt.Fprintf(&sb, "\n%d. %s\n%s | %s\n", i+1, item.Title, item.Company, item.Location)
		fmt.Fprintf(&sb, "Salary: %s\n", format.Salary(item.Salary.Min, item.Salary.Max))
		fmt.Fprintf(&sb, "Match: %d%%", item.Match.Percentage)
		if len(item.Match.MatchedSkills) > 0 {
			fmt.Fprintf(&sb, " (%s)", strings.Join(item.Match.MatchedSkills, ", "))
		}
		sb.WriteString("\n")
		if item.ApplyURL != nil {
			fmt.Fprintf(&sb, "Apply: %s\n", *item.ApplyURL)
		}
	}

	sb.WriteString("\nSave a job with /save <number>, compare your skills with /gap <number>.")
	return sb.String()
}

func formatSavedJobs(jobs []models.SavedJob) string {

	if len(jobs) == 0 {
		return "You have no saved jobs yet."
	}

	var sb strings.Builder
	sb.WriteString("Saved jobs:\n")

	for i, job := range jobs {
		fmt.Fprintf(&sb, "\n%d. %s\n%s | %s\nMatch: %d%%\n", i+1, job.Title, job.Company, job.Location, job.MatchScore)
		if job.Link != "" {
			fmt.Fprintf(&sb, "Apply: %s\n", job.Link)
		}
		fmt.Fprintf(&sb, "ID: %s\n", job.JobID)
	}

	return sb.String()
}

func formatGap(title string, gap models.SkillGap) string {

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\nMatch: %d%% (%s)\n", title, gap.Percentage, gap.Level)
	fmt.Fprintf(&sb, "You have: %s\n", joinOrNone(gap.Matched))
	fmt.Fprintf(&sb, "Missing: %s", joinOrNone(gap.Missing))
	return sb.String()
}

func formatSkills(skills []string) string {
	return "Your skills: " + strings.Join(skills, ", ")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
