package repositories

import (
	"context"

	"github.com/skylens/tailtrace/models"
)

// RegistrySource is one backing source of registration data. Lookup takes
// the registry key (canonical n-number without its leading "N") and returns
// either a partial record, models.ErrAircraftNotFound when the source
// positively has no row, or an error wrapping models.ErrRegistryUnavailable
// when the source could not be consulted. "Not found" is an expected
// outcome, never a panic or a disguised transport failure.
type RegistrySource interface {
	Lookup(ctx context.Context, key string) (models.AircraftRecord, error)
}
