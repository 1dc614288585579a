package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/skylens/tailtrace/models"
	"github.com/skylens/tailtrace/usecases"
)

type researchRequest struct {
	NNumber string `json:"n_number" binding:"required"`
}

type batchResearchRequest struct {
	NNumbers []string `json:"n_numbers" binding:"required"`
}

func handleResearch(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body researchRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewResearchUsecase()
		result, err := usecase.Research(c.Request.Context(), body.NNumber)
		if presentError(c, err) {
			return
		}

		// Failed runs (not found, registry down) are still well-formed
		// results; the caller reads status and errors off the body.
		c.JSON(http.StatusOK, result)
	}
}

func handleBatchResearch(uc usecases.Usecases, maxBatchSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body batchResearchRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		if len(body.NNumbers) == 0 {
			presentError(c, errors.Wrap(models.BadParameterError, "empty n_numbers list"))
			return
		}
		if maxBatchSize > 0 && len(body.NNumbers) > maxBatchSize {
			presentError(c, errors.Wrapf(models.BadParameterError,
				"batch size %d exceeds the maximum of %d", len(body.NNumbers), maxBatchSize))
			return
		}

		usecase := uc.NewResearchUsecase()
		results := usecase.BatchResearch(c.Request.Context(), body.NNumbers)

		c.JSON(http.StatusOK, gin.H{"results": results})
	}
}
