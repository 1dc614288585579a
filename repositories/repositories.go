package repositories

import (
	"time"

	"github.com/skylens/tailtrace/infra"
)

type Repositories struct {
	AircraftRegistryRepository  *CompositeRegistryRepository
	OpenCorporatesRepository    *OpenCorporatesRepository
	WebSearchRepository         *WebSearchRepository
	ContactEnrichmentRepository *ContactEnrichmentRepository
}

type RepositoriesConfig struct {
	Faa             infra.FaaRegistry
	OpenCorporates  infra.OpenCorporates
	WebSearch       infra.WebSearch
	RegistryTimeout time.Duration
	ResolverTimeout time.Duration
	CacheTtl        time.Duration
}

func NewRepositories(config RepositoriesConfig) *Repositories {
	// Dataset first, live registry second: the bulk download is the more
	// stable source, the inquiry page only fills its gaps.
	sources := make([]RegistrySource, 0, 2)
	if config.Faa.DatasetPath() != "" {
		sources = append(sources, NewFaaDatasetRepository(config.Faa.DatasetPath()))
	}
	sources = append(sources, NewFaaRegistryRepository(config.Faa, config.RegistryTimeout))

	return &Repositories{
		AircraftRegistryRepository:  NewCompositeRegistryRepository(config.CacheTtl, sources...),
		OpenCorporatesRepository:    NewOpenCorporatesRepository(config.OpenCorporates, config.ResolverTimeout),
		WebSearchRepository:         NewWebSearchRepository(config.WebSearch, config.ResolverTimeout),
		ContactEnrichmentRepository: NewContactEnrichmentRepository(),
	}
}
