package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"recommendations-service/internal/catalog"
	"recommendations-service/internal/models"
)

// ProductSearcher is the AI boundary: a fixed prompt goes out, unstructured
// text comes back, and any error is recoverable.
type ProductSearcher interface {
	SearchProducts(ctx context.Context, query string) (string, error)
}

// StatsRecorder counts which path served each search. Implemented by the
// Redis stats repository; a nil recorder disables counting.
type StatsRecorder interface {
	RecordSearch(ctx context.Context, source, category string) error
}

// SearchService runs the recommendation pipeline: classify the query, try
// the AI search once, and on any failure fall back silently to the synthetic
// catalog. The fallback is the load-bearing reliability behavior: a search
// never surfaces an AI error to the caller. No result caching: identical
// queries re-run the full pipeline every time.
type SearchService struct {
	classifier *catalog.Classifier
	synth      *catalog.Synthesizer
	links      *catalog.LinkBuilder
	searcher   ProductSearcher
	stats      StatsRecorder
	logger     *logrus.Logger

	// latest is the generation stamp of the most recent search. A result
	// whose generation is stale by completion is marked superseded so
	// consumers can discard out-of-order responses.
	latest atomic.Uint64
}

// NewSearchService creates the pipeline service. searcher may be nil, in
// which case every search is served synthetically.
func NewSearchService(classifier *catalog.Classifier, synth *catalog.Synthesizer, links *catalog.LinkBuilder, searcher ProductSearcher, stats StatsRecorder, logger *logrus.Logger) *SearchService {
	return &SearchService{
		classifier: classifier,
		synth:      synth,
		links:      links,
		searcher:   searcher,
		stats:      stats,
		logger:     logger,
	}
}

// Search returns exactly ten products for the query. It is total: every
// failure class inside the pipeline is recovered by synthetic substitution.
func (s *SearchService) Search(ctx context.Context, query string) *models.SearchResult {
	start := time.Now()
	generation := s.latest.Add(1)

	profile := s.classifier.Classify(query)
	s.logger.WithFields(logrus.Fields{
		"stage":    "classify",
		"query":    query,
		"category": profile.ID,
	}).Debug("Classified search query")

	products, source := s.resolveProducts(ctx, query, profile)

	buckets := catalog.PriceBuckets(products)
	brands := catalog.AvailableBrands(products)

	superseded := s.latest.Load() != generation
	if superseded {
		s.logger.WithFields(logrus.Fields{
			"stage":      "supersede",
			"query":      query,
			"generation": generation,
		}).Info("Search result superseded by a newer query")
	}

	if s.stats != nil {
		if err := s.stats.RecordSearch(ctx, string(source), profile.ID); err != nil {
			s.logger.WithError(err).Warn("Failed to record search stats")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"stage":    "complete",
		"query":    query,
		"category": profile.ID,
		"source":   source,
		"duration": time.Since(start).String(),
	}).Info("Search completed")

	return &models.SearchResult{
		SearchID:        uuid.NewString(),
		Query:           query,
		Category:        profile.ID,
		ProductType:     profile.ProductType,
		Source:          source,
		Generation:      generation,
		Superseded:      superseded,
		Products:        products,
		AvailableBrands: brands,
		PriceBuckets:    buckets,
		Duration:        time.Since(start).String(),
	}
}

// resolveProducts tries the AI path once and falls back to synthesis on any
// failure: network, timeout, malformed JSON, or schema violation. There is no
// retry and no half-open state; the AI path is re-attempted fresh on the next
// search.
func (s *SearchService) resolveProducts(ctx context.Context, query string, profile *models.CategoryProfile) ([]models.Product, models.SearchSource) {
	if s.searcher != nil {
		raw, err := s.searcher.SearchProducts(ctx, query)
		if err == nil {
			products, perr := parseProducts(raw, profile, s.links)
			if perr == nil {
				s.logger.WithFields(logrus.Fields{
					"stage": "ai_search",
					"query": query,
				}).Debug("AI search returned a valid product list")
				return products, models.SearchSourceAI
			}
			err = perr
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"stage": "ai_search",
			"query": query,
		}).Warn("AI search failed, falling back to synthetic catalog")
	}

	products := s.synth.Synthesize(profile, query)
	s.logger.WithFields(logrus.Fields{
		"stage":    "synthesize",
		"query":    query,
		"category": profile.ID,
		"count":    len(products),
	}).Debug("Synthesized product catalog")
	return products, models.SearchSourceSynthetic
}

// Filter applies the storefront filter contract to a product list and logs
// the stage, mirroring the classify/synthesize/link-build hooks.
func (s *SearchService) Filter(products []models.Product, filters models.FilterState) ([]models.Product, []models.PriceBucket) {
	buckets := catalog.PriceBuckets(products)
	filtered := catalog.ApplyFilters(products, buckets, filters)
	s.logger.WithFields(logrus.Fields{
		"stage":    "filter",
		"in":       len(products),
		"out":      len(filtered),
		"priceBin": filters.PriceRange,
	}).Debug("Applied product filters")
	return filtered, buckets
}

// Categories returns the static category profiles for the storefront's
// shortcut tiles, projected to their public view.
func (s *SearchService) Categories() []models.CategorySummary {
	profiles := catalog.Profiles()
	summaries := make([]models.CategorySummary, len(profiles))
	for i := range profiles {
		summaries[i] = profiles[i].Summary()
	}
	return summaries
}
