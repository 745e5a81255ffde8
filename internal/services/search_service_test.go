package services

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recommendations-service/internal/catalog"
	"recommendations-service/internal/models"
)

// MockProductSearcher is a mock implementation of ProductSearcher
type MockProductSearcher struct {
	mock.Mock
}

var _ ProductSearcher = (*MockProductSearcher)(nil)

func (m *MockProductSearcher) SearchProducts(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

// MockStatsRecorder is a mock implementation of StatsRecorder
type MockStatsRecorder struct {
	mock.Mock
}

var _ StatsRecorder = (*MockStatsRecorder)(nil)

func (m *MockStatsRecorder) RecordSearch(ctx context.Context, source, category string) error {
	args := m.Called(ctx, source, category)
	return args.Error(0)
}

func newTestService(searcher ProductSearcher, stats StatsRecorder) *SearchService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	links := catalog.NewLinkBuilder(catalog.AffiliateConfig{})
	synth := catalog.NewSynthesizer(catalog.PricingLadder, links, rand.NewSource(1))
	return NewSearchService(catalog.NewClassifier(), synth, links, searcher, stats, logger)
}

func TestSearchFallsBackOnMalformedAIResponse(t *testing.T) {
	searcher := new(MockProductSearcher)
	searcher.On("SearchProducts", mock.Anything, "best laptop").Return("not json", nil)

	svc := newTestService(searcher, nil)
	result := svc.Search(context.Background(), "best laptop")

	require.NotNil(t, result)
	assert.Equal(t, models.SearchSourceSynthetic, result.Source)
	assert.Equal(t, "laptops", result.Category)
	require.Len(t, result.Products, 10)

	laptopBrands := catalog.NewClassifier().Classify("best laptop").Brands
	for _, p := range result.Products {
		assert.Contains(t, laptopBrands, p.Brand)
		assert.NotEmpty(t, p.AffiliateLinks)
	}
	searcher.AssertExpectations(t)
}

func TestSearchFallsBackOnSearcherError(t *testing.T) {
	searcher := new(MockProductSearcher)
	searcher.On("SearchProducts", mock.Anything, "golf bag").
		Return("", errors.New("network timeout"))

	svc := newTestService(searcher, nil)
	result := svc.Search(context.Background(), "golf bag")

	assert.Equal(t, models.SearchSourceSynthetic, result.Source)
	assert.Len(t, result.Products, 10)
}

func TestSearchUsesAIResultWhenValid(t *testing.T) {
	searcher := new(MockProductSearcher)
	searcher.On("SearchProducts", mock.Anything, "best laptop").
		Return("```json\n"+validAIResponse(10)+"\n```", nil)

	svc := newTestService(searcher, nil)
	result := svc.Search(context.Background(), "best laptop")

	assert.Equal(t, models.SearchSourceAI, result.Source)
	require.Len(t, result.Products, 10)
	assert.Equal(t, "Dell Laptop Model 1", result.Products[0].Name)
}

func TestSearchSyntheticOnlyWithoutSearcher(t *testing.T) {
	svc := newTestService(nil, nil)
	result := svc.Search(context.Background(), "noise cancelling headphones")

	assert.Equal(t, models.SearchSourceSynthetic, result.Source)
	assert.Equal(t, "headphones", result.Category)
	assert.Len(t, result.Products, 10)
	assert.NotEmpty(t, result.PriceBuckets)
	assert.NotEmpty(t, result.AvailableBrands)
	assert.NotEmpty(t, result.SearchID)
}

func TestSearchRecordsStats(t *testing.T) {
	stats := new(MockStatsRecorder)
	stats.On("RecordSearch", mock.Anything, "synthetic", "golf-bags").Return(nil)

	svc := newTestService(nil, stats)
	svc.Search(context.Background(), "best golf bags")

	stats.AssertExpectations(t)
}

func TestSearchSurvivesStatsFailure(t *testing.T) {
	stats := new(MockStatsRecorder)
	stats.On("RecordSearch", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	svc := newTestService(nil, stats)
	result := svc.Search(context.Background(), "best laptop")
	assert.Len(t, result.Products, 10)
}

func TestSearchGenerationsIncrease(t *testing.T) {
	svc := newTestService(nil, nil)

	first := svc.Search(context.Background(), "laptop")
	second := svc.Search(context.Background(), "laptop")
	assert.Greater(t, second.Generation, first.Generation)
	assert.False(t, second.Superseded)
}

// blockingSearcher stalls its first call until released, so a second search
// can overtake the first one mid-flight.
type blockingSearcher struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (b *blockingSearcher) SearchProducts(ctx context.Context, query string) (string, error) {
	b.mu.Lock()
	b.calls++
	first := b.calls == 1
	b.mu.Unlock()

	if first {
		close(b.started)
		<-b.release
	}
	return "", errors.New("search backend unavailable")
}

func TestSearchMarksOvertakenResultSuperseded(t *testing.T) {
	searcher := &blockingSearcher{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := newTestService(searcher, nil)

	firstDone := make(chan *models.SearchResult, 1)
	go func() {
		firstDone <- svc.Search(context.Background(), "best laptop")
	}()

	<-searcher.started
	second := svc.Search(context.Background(), "best laptop")
	close(searcher.release)
	first := <-firstDone

	assert.Greater(t, second.Generation, first.Generation)
	assert.True(t, first.Superseded)
	assert.False(t, second.Superseded)
	// The stale result is still complete; discarding it is the caller's call.
	assert.Len(t, first.Products, 10)
}

func TestFilterAppliesStorefrontContract(t *testing.T) {
	svc := newTestService(nil, nil)
	result := svc.Search(context.Background(), "best golf bag")

	filtered, buckets := svc.Filter(result.Products, models.FilterState{MinRating: 4.9})
	assert.Len(t, buckets, 4)
	for _, p := range filtered {
		assert.GreaterOrEqual(t, p.Rating, 4.9)
	}
}

func TestCategoriesReturnsStaticProfiles(t *testing.T) {
	svc := newTestService(nil, nil)
	categories := svc.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, "headphones", categories[0].ID)
	for _, c := range categories {
		assert.NotEmpty(t, c.Vendors, "category %s", c.ID)
		assert.NotEmpty(t, c.Brands, "category %s", c.ID)
	}
}
