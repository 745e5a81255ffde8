package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"recommendations-service/internal/models"
)

// statsKey is a single Redis hash: "total", "source:<src>", "category:<id>".
const statsKey = "recommendations:search_stats"

// ErrStatsUnavailable is returned when Redis was never configured.
var ErrStatsUnavailable = errors.New("search stats unavailable: redis not configured")

// StatsRepository keeps ops counters for which path (AI vs synthetic) served
// each search. This is observability only, never a result cache; identical
// queries always re-run the pipeline. Works with a nil client so the service
// runs without Redis.
type StatsRepository struct {
	redis *redis.Client
}

func NewStatsRepository(redisClient *redis.Client) *StatsRepository {
	return &StatsRepository{redis: redisClient}
}

// RecordSearch increments the per-source and per-category counters. A nil
// client is a no-op.
func (r *StatsRepository) RecordSearch(ctx context.Context, source, category string) error {
	if r.redis == nil {
		return nil
	}
	pipe := r.redis.Pipeline()
	pipe.HIncrBy(ctx, statsKey, "total", 1)
	pipe.HIncrBy(ctx, statsKey, "source:"+source, 1)
	pipe.HIncrBy(ctx, statsKey, "category:"+category, 1)
	_, err := pipe.Exec(ctx)
	return err
}

// GetStats reads the counters back.
func (r *StatsRepository) GetStats(ctx context.Context) (*models.SearchStats, error) {
	if r.redis == nil {
		return nil, ErrStatsUnavailable
	}
	fields, err := r.redis.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, err
	}

	stats := &models.SearchStats{
		BySource:   make(map[string]int64),
		ByCategory: make(map[string]int64),
	}
	for field, raw := range fields {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		switch {
		case field == "total":
			stats.TotalSearches = count
		case strings.HasPrefix(field, "source:"):
			stats.BySource[strings.TrimPrefix(field, "source:")] = count
		case strings.HasPrefix(field, "category:"):
			stats.ByCategory[strings.TrimPrefix(field, "category:")] = count
		}
	}
	return stats, nil
}
