package usecases

import (
	"time"

	"github.com/skylens/tailtrace/repositories"
)

type Usecases struct {
	Repositories *repositories.Repositories

	jurisdiction  string
	batchInterval time.Duration
}

type Option func(*Usecases)

func WithJurisdiction(jurisdiction string) Option {
	return func(u *Usecases) {
		u.jurisdiction = jurisdiction
	}
}

func WithBatchInterval(interval time.Duration) Option {
	return func(u *Usecases) {
		u.batchInterval = interval
	}
}

func NewUsecases(repos *repositories.Repositories, opts ...Option) Usecases {
	usecases := Usecases{
		Repositories:  repos,
		jurisdiction:  "us",
		batchInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(&usecases)
	}
	return usecases
}

func (usecases Usecases) NewResearchUsecase() ResearchUsecase {
	return NewResearchUsecase(
		usecases.Repositories.AircraftRegistryRepository,
		usecases.Repositories.OpenCorporatesRepository,
		usecases.Repositories.WebSearchRepository,
		usecases.Repositories.ContactEnrichmentRepository,
		usecases.jurisdiction,
		usecases.batchInterval,
	)
}
