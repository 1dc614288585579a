package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	timeout "github.com/vearne/gin-timeout"

	"github.com/skylens/tailtrace/api/middleware"
	"github.com/skylens/tailtrace/usecases"
	"github.com/skylens/tailtrace/utils"
)

func corsOption(conf Configuration) cors.Config {
	allowedOrigins := []string{"https://*"}
	if conf.Env == "development" {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost,
		},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg("Request timeout"),
	)
}

func InitRouterMiddlewares(ctx context.Context, conf Configuration) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsOption(conf)))
	r.Use(middleware.NewLogging(logger, "/liveness"))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	return r
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	r.POST("/research", timeoutMiddleware(conf.RequestTimeout), handleResearch(uc))
	r.POST("/research/batch", timeoutMiddleware(conf.BatchTimeout), handleBatchResearch(uc, conf.MaxBatchSize))
}
