package cmd

import (
	"context"
	"time"

	"github.com/skylens/tailtrace/infra"
	"github.com/skylens/tailtrace/repositories"
	"github.com/skylens/tailtrace/usecases"
	"github.com/skylens/tailtrace/utils"
)

// NewUsecases reads collaborator configuration from the environment and wires
// the repository and usecase containers. Shared by the server and the CLI
// commands.
func NewUsecases(ctx context.Context) usecases.Usecases {
	repos := repositories.NewRepositories(repositories.RepositoriesConfig{
		Faa: infra.InitializeFaaRegistry(
			utils.GetEnv("FAA_REGISTRY_HOST", infra.FAA_REGISTRY_HOST),
			utils.GetEnv("FAA_DATASET_PATH", ""),
			utils.GetEnv("FAA_REGISTRY_USER_AGENT", ""),
		),
		OpenCorporates: infra.InitializeOpenCorporates(
			utils.GetEnv("OPENCORPORATES_RECONCILE_HOST", infra.OPENCORPORATES_RECONCILE_HOST),
			utils.GetEnv("OPENCORPORATES_USER_AGENT", ""),
		),
		WebSearch: infra.InitializeWebSearch(
			utils.GetEnv("WEB_SEARCH_API_HOST", infra.WEB_SEARCH_API_HOST),
			utils.GetEnv("WEB_SEARCH_API_KEY", ""),
		),
		RegistryTimeout: time.Duration(utils.GetEnv("REGISTRY_TIMEOUT_SECOND", 15)) * time.Second,
		ResolverTimeout: time.Duration(utils.GetEnv("RESOLVER_TIMEOUT_SECOND", 10)) * time.Second,
		CacheTtl:        time.Duration(utils.GetEnv("REGISTRY_CACHE_TTL_MINUTE", 60)) * time.Minute,
	})

	return usecases.NewUsecases(repos,
		usecases.WithJurisdiction(utils.GetEnv("CORPORATE_JURISDICTION", "us")),
		usecases.WithBatchInterval(
			time.Duration(utils.GetEnv("BATCH_INTERVAL_MILLISECOND", 2000))*time.Millisecond),
	)
}
