package jsearch

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const maxQuerySkills = 5

var ErrEmptyQuery = errors.New("search query is empty")

type SearchParameters struct {
	Skills   []string
	Location string
	Page     int
}

func (s SearchParameters) Validate() error {
	if s.Page < 1 {
		return errors.New("page must be positive")
	}
	if s.Query() == "" {
		return ErrEmptyQuery
	}
	return nil
}

// Query joins the first skills into a free-text query, narrowed by location when present.
func (s SearchParameters) Query() string {
	skills := lo.Filter(lo.Map(s.Skills, func(skill string, _ int) string {
		return strings.TrimSpace(skill)
	}), func(skill string, _ int) bool {
		return skill != ""
	})
	if len(skills) > maxQuerySkills {
		skills = skills[:maxQuerySkills]
	}

	query := strings.Join(skills, " ")
	if query == "" {
		return ""
	}
	if location := strings.TrimSpace(s.Location); location != "" {
		query += " in " + location
	}
	return query
}

func (s SearchParameters) ToUrlParams() url.Values {
	params := url.Values{}
	params.Add("query", s.Query())
	params.Add("page", strconv.Itoa(s.Page))
	params.Add("num_pages", "1")
	return params
}
