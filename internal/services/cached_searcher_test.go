package services

import (
	"context"
	"testing"
	"time"

	"github.com/maxaizer/skillmatch/internal/clients/jsearch"
	"github.com/maxaizer/skillmatch/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_CachedSearcher_SameQuery_ShouldCallUpstreamOnce(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("Search", mock.Anything, mock.Anything).
		Return(&jsearch.SearchResult{Results: []models.RawJob{rawJob("1", "go")}, Count: 1}, nil).Once()

	cached := NewCachedSearcher(searcher, time.Minute)

	first, err := cached.Search(context.Background(), jsearch.SearchParameters{Skills: []string{"Go", "SQL"}, Page: 1})
	require.NoError(t, err)
	second, err := cached.Search(context.Background(), jsearch.SearchParameters{Skills: []string{" go", "sql "}, Page: 1})
	require.NoError(t, err)

	assert.Same(t, first, second)
	searcher.AssertNumberOfCalls(t, "Search", 1)
}

func Test_CachedSearcher_DifferentPage_ShouldCallUpstreamAgain(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("Search", mock.Anything, mock.Anything).
		Return(&jsearch.SearchResult{Results: []models.RawJob{}}, nil)

	cached := NewCachedSearcher(searcher, time.Minute)

	_, _ = cached.Search(context.Background(), jsearch.SearchParameters{Skills: []string{"Go"}, Page: 1})
	_, _ = cached.Search(context.Background(), jsearch.SearchParameters{Skills: []string{"Go"}, Page: 2})

	searcher.AssertNumberOfCalls(t, "Search", 2)
}

func Test_CachedSearcher_Failure_ShouldNotBeCached(t *testing.T) {
	searcher := &mockSearcher{}
	searcher.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()
	searcher.On("Search", mock.Anything, mock.Anything).Return(&jsearch.SearchResult{Results: []models.RawJob{}}, nil).Once()

	cached := NewCachedSearcher(searcher, time.Minute)
	params := jsearch.SearchParameters{Skills: []string{"Go"}, Page: 1}

	_, err := cached.Search(context.Background(), params)
	assert.Error(t, err)

	result, err := cached.Search(context.Background(), params)
	assert.NoError(t, err)
	assert.NotNil(t, result)
}
