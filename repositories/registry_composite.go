package repositories

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/skylens/tailtrace/models"
	"github.com/skylens/tailtrace/utils"
)

const registryCacheSize = 1024

// CompositeRegistryRepository consults its sources in declared trust order
// and merges whatever each produces into a single record, first source
// winning per field. One usable record from any source is enough; the error
// taxonomy only degrades to "unavailable" when every source failed and none
// confirmed absence.
//
// A small TTL cache in front keeps repeated lookups of the same n-number
// (batch files are full of duplicates) from hammering the registry.
type CompositeRegistryRepository struct {
	sources []RegistrySource
	cache   *expirable.LRU[string, models.AircraftRecord]
}

func NewCompositeRegistryRepository(cacheTtl time.Duration, sources ...RegistrySource) *CompositeRegistryRepository {
	var cache *expirable.LRU[string, models.AircraftRecord]
	if cacheTtl > 0 {
		cache = expirable.NewLRU[string, models.AircraftRecord](registryCacheSize, nil, cacheTtl)
	}

	return &CompositeRegistryRepository{
		sources: sources,
		cache:   cache,
	}
}

func (repo *CompositeRegistryRepository) Lookup(ctx context.Context, key string) (models.AircraftRecord, error) {
	if repo.cache != nil {
		if record, ok := repo.cache.Get(key); ok {
			return record, nil
		}
	}

	logger := utils.LoggerFromContext(ctx)

	var merged models.AircraftRecord
	found := false
	unavailable := 0
	var lastErr error

	for _, source := range repo.sources {
		record, err := source.Lookup(ctx, key)
		switch {
		case err == nil:
			merged.MergeFrom(record)
			found = true
		case errors.Is(err, models.ErrAircraftNotFound):
			// Confirmed absent from this source; others may still know it.
		default:
			logger.Warn("registry source failed", "n_number", "N"+key, "error", err)
			unavailable++
			lastErr = err
		}
	}

	if !found {
		// A failed source means absence was never confirmed everywhere, so
		// the run must not report a definitive "not found".
		if unavailable > 0 {
			return models.AircraftRecord{}, lastErr
		}
		return models.AircraftRecord{}, errors.Wrapf(models.ErrAircraftNotFound, "N%s", key)
	}

	if repo.cache != nil {
		repo.cache.Add(key, merged)
	}

	return merged, nil
}
