package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrEmptyResume = errors.New("resume text is empty")

const resumePrompt = `Extract the following information from the resume below and return it as a JSON object
with exactly these keys: "name" (string), "skills" (array of strings, technical and professional skills
only, each skill a short name like "Python" or "Project Management"), "experience" (array of strings,
one entry per position), "education" (array of strings, one entry per degree).
Return only the JSON object.

Resume:
`

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

type ResumeParser struct {
	aiClient aiClient
}

func NewResumeParser(aiClient aiClient) *ResumeParser {
	return &ResumeParser{aiClient: aiClient}
}

func (p *ResumeParser) Parse(ctx context.Context, text string) (*models.ParsedResume, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResume
	}

	response, err := p.aiClient.GenerateResponse(ctx, resumePrompt+text)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get response from ai")
	}

	var resume models.ParsedResume
	if err = json.Unmarshal([]byte(cleanJSON(response)), &resume); err != nil {
		return nil, errors.Wrapf(err, "unexpected ai response %q", response)
	}

	resume.Name = strings.TrimSpace(resume.Name)
	resume.Skills = cleanSkills(resume.Skills)
	resume.Experience = cleanEntries(resume.Experience)
	resume.Education = cleanEntries(resume.Education)
	return &resume, nil
}

// cleanJSON strips markdown code fences the model sometimes wraps around the object.
func cleanJSON(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}

func cleanEntries(entries []string) []string {
	return lo.Filter(lo.Map(entries, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}), func(s string, _ int) bool {
		return s != ""
	})
}

func cleanSkills(skills []string) []string {
	return lo.UniqBy(cleanEntries(skills), strings.ToLower)
}
