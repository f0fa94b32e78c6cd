package jsearch

import (
	"strings"

	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/pkg/errors"
)

// searchResponse accepts both JSearch ({"status","data"}) and Adzuna-like ({"results","count"}) payloads.
type searchResponse struct {
	Status         string          `json:"status"`
	Data           []models.RawJob `json:"data"`
	Results        []models.RawJob `json:"results"`
	Count          *int            `json:"count"`
	ResultsPerPage *int            `json:"results_per_page"`
}

type SearchResult struct {
	Results        []models.RawJob
	Count          int
	ResultsPerPage int
}

func (r searchResponse) toResult(defaultPerPage int) (*SearchResult, error) {
	if r.Status != "" && !strings.EqualFold(r.Status, "ok") {
		return nil, errors.Errorf("search api returned status %q", r.Status)
	}

	results := r.Results
	if results == nil {
		results = r.Data
	}
	if results == nil {
		return nil, errors.New("search api response has no result list")
	}

	result := &SearchResult{
		Results:        results,
		Count:          len(results),
		ResultsPerPage: defaultPerPage,
	}
	if r.Count != nil {
		result.Count = *r.Count
	}
	if r.ResultsPerPage != nil && *r.ResultsPerPage > 0 {
		result.ResultsPerPage = *r.ResultsPerPage
	}
	return result, nil
}
