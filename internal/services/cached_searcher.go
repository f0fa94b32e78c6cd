package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/maxaizer/skillmatch/internal/clients/jsearch"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// CachedSearcher keeps successful search pages for a while. Failures are not cached.
type CachedSearcher struct {
	searcher jobSearcher
	cache    *gocache.Cache
}

const defaultSearchCacheTTL = 10 * time.Minute

func NewCachedSearcher(searcher jobSearcher, ttl time.Duration) *CachedSearcher {
	if ttl <= 0 {
		ttl = defaultSearchCacheTTL
	}
	return &CachedSearcher{searcher: searcher, cache: gocache.New(ttl, 2*ttl)}
}

func (c *CachedSearcher) Search(ctx context.Context, parameters jsearch.SearchParameters) (*jsearch.SearchResult, error) {
	key := searchCacheKey(parameters)
	if cached, found := c.cache.Get(key); found {
		return cached.(*jsearch.SearchResult), nil
	}

	result, err := c.searcher.Search(ctx, parameters)
	if err != nil {
		return nil, err
	}

	if cacheErr := c.cache.Add(key, result, gocache.DefaultExpiration); cacheErr != nil {
		log.Debugf("search result already cached: %v", cacheErr)
	}
	return result, nil
}

func searchCacheKey(parameters jsearch.SearchParameters) string {
	skills := lo.Uniq(lo.FilterMap(parameters.Skills, func(skill string, _ int) (string, bool) {
		skill = strings.ToLower(strings.TrimSpace(skill))
		return skill, skill != ""
	}))
	return strings.Join(skills, ",") + "|" + strings.ToLower(strings.TrimSpace(parameters.Location)) +
		"|" + strconv.Itoa(parameters.Page)
}
