package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/skylens/tailtrace/api"
	"github.com/skylens/tailtrace/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:            utils.GetEnv("ENV", "development"),
		AppName:        "tailtrace",
		Port:           utils.GetRequiredEnv[string]("PORT"),
		RequestTimeout: time.Duration(utils.GetEnv("REQUEST_TIMEOUT_SECOND", 60)) * time.Second,
		BatchTimeout:   time.Duration(utils.GetEnv("BATCH_TIMEOUT_SECOND", 300)) * time.Second,
		MaxBatchSize:   utils.GetEnv("MAX_BATCH_SIZE", 20),
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	uc := NewUsecases(ctx)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", apiConfig.Port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error serving the app", "error", err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
