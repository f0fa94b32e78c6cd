package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/maxaizer/skillmatch/internal/clients/jsearch"
	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/maxaizer/skillmatch/internal/logger"
	"github.com/maxaizer/skillmatch/internal/matching"
	"github.com/maxaizer/skillmatch/internal/metrics"
	"github.com/maxaizer/skillmatch/internal/normalizer"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultUpstreamTimeout = 15 * time.Second
	defaultPageSize        = jsearch.DefaultResultsPerPage
)

type jobSearcher interface {
	Search(ctx context.Context, parameters jsearch.SearchParameters) (*jsearch.SearchResult, error)
}

type Recommender struct {
	searcher jobSearcher
	timeout  time.Duration
	pageSize int
	now      func() time.Time
}

func NewRecommender(searcher jobSearcher, timeout time.Duration, pageSize int) (*Recommender, error) {
	if searcher == nil {
		return nil, errors.New("job searcher is nil")
	}
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Recommender{searcher: searcher, timeout: timeout, pageSize: pageSize, now: time.Now}, nil
}

// BuildRecommendations fetches one page of jobs and ranks them by how many of skills they mention.
// Jobs with equal scores keep the provider's order.
func (r *Recommender) BuildRecommendations(ctx context.Context, skills []string, location string, page int) (*models.Recommendations, error) {

	skills = lo.Filter(skills, func(skill string, _ int) bool { return strings.TrimSpace(skill) != "" })
	if len(skills) == 0 {
		return nil, ErrNoSkillsAvailable
	}
	if page < 1 {
		page = 1
	}

	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	result, err := r.search(ctx, skills, location, page)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSearchApi).Errorf("failed to search jobs: %v", err)
		return nil, err
	}

	items := lo.Map(normalizer.NormalizeAll(result.Results, r.now()), func(job models.Job, _ int) models.ScoredJob {
		return models.ScoredJob{Job: job, Match: matching.Match(job.Description, skills)}
	})

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Match.Percentage > items[j].Match.Percentage
	})

	metrics.RecommendedJobsCounter.Add(float64(len(items)))
	log.Debugf("built %d recommendations for page %d", len(items), page)

	return &models.Recommendations{
		Items:       items,
		TotalCount:  result.Count,
		TotalPages:  totalPages(result.Count, lo.Ternary(result.ResultsPerPage > 0, result.ResultsPerPage, r.pageSize)),
		CurrentPage: page,
	}, nil
}

func (r *Recommender) search(ctx context.Context, skills []string, location string, page int) (*jsearch.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	result, err := r.searcher.Search(ctx, jsearch.SearchParameters{Skills: skills, Location: location, Page: page})
	metrics.UpstreamRequestDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())

	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	if result == nil || result.Results == nil {
		return nil, &UpstreamError{Err: errors.New("no result list in search response")}
	}
	return result, nil
}

func totalPages(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 1
	}
	return (totalCount + pageSize - 1) / pageSize
}
