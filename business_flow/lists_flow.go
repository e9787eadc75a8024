package businessflow

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/logenix/freightquote/app/dto"
	"github.com/logenix/freightquote/config"
	"github.com/logenix/freightquote/models"
	"github.com/logenix/freightquote/repository"
	"github.com/logenix/freightquote/utils"
)

// ListsFlow serves the dropdown and autocomplete option lists for the quote
// form.
type ListsFlow interface {
	Options(ctx context.Context) (*dto.FormOptionsResponse, error)
}

// ListsFlowImpl merges the static seed lists with values users typed into
// past submissions. Results are cached in Redis when a client is configured.
type ListsFlowImpl struct {
	submissionRepo repository.QuoteSubmissionRepository
	rc             *redis.Client
	cacheConfig    *config.CacheConfig
}

// NewListsFlow creates a new lists flow instance
func NewListsFlow(submissionRepo repository.QuoteSubmissionRepository, rc *redis.Client, cacheConfig *config.CacheConfig) ListsFlow {
	return &ListsFlowImpl{
		submissionRepo: submissionRepo,
		rc:             rc,
		cacheConfig:    cacheConfig,
	}
}

func redisKey(cfg config.CacheConfig, key string) string {
	return cfg.RedisPrefix + key
}

// Options returns the form option lists, seed values first and historical
// values appended in first-appearance order without case-insensitive
// duplicates.
func (f *ListsFlowImpl) Options(ctx context.Context) (*dto.FormOptionsResponse, error) {
	if f.rc != nil && f.cacheConfig != nil {
		cacheKey := redisKey(*f.cacheConfig, utils.FormOptionsCacheKey)
		if bs, err := f.rc.Get(ctx, cacheKey).Bytes(); err == nil && len(bs) > 0 {
			var out dto.FormOptionsResponse
			if err := json.Unmarshal(bs, &out); err == nil {
				return &out, nil
			}
		}
	}

	resp := &dto.FormOptionsResponse{
		Countries:      mergeOptions(models.Countries, f.distinct(ctx, "shipping_from_1"), f.distinct(ctx, "destination_1")),
		Commodities:    mergeOptions(models.BaseCommodities, f.distinct(ctx, "commodity")),
		Salespersons:   mergeOptions(models.Salespersons, f.distinct(ctx, "salesperson_name")),
		CargoTypes:     mergeOptions(models.CargoTypes, f.distinct(ctx, "cargo_type")),
		ContainerTypes: mergeOptions(models.ContainerTypes, nil),
		ContainerSizes: mergeOptions(models.ContainerSizes, nil),
		PackagingTypes: mergeOptions(models.PackagingTypes, f.distinct(ctx, "packaging_type")),
	}

	if f.rc != nil && f.cacheConfig != nil {
		cacheKey := redisKey(*f.cacheConfig, utils.FormOptionsCacheKey)
		if bs, err := json.Marshal(resp); err == nil {
			if err := f.rc.Set(ctx, cacheKey, bs, f.cacheConfig.DefaultTTL).Err(); err != nil {
				log.Printf("form options cache write skipped: %v", err)
			}
		}
	}

	return resp, nil
}

// distinct reads one submission log column; the log is best-effort so read
// failures degrade to the seed list alone.
func (f *ListsFlowImpl) distinct(ctx context.Context, column string) []string {
	values, err := f.submissionRepo.DistinctValues(ctx, column)
	if err != nil {
		log.Printf("submission column %q skipped for options: %v", column, err)
		return nil
	}
	return values
}

func mergeOptions(seed []string, extras ...[]string) []string {
	out := make([]string, 0, len(seed))
	seen := make(map[string]bool, len(seed))
	appendAll := func(values []string) {
		for _, v := range values {
			key := utils.Normalize(v)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
	}
	appendAll(seed)
	for _, extra := range extras {
		appendAll(extra)
	}
	return out
}
