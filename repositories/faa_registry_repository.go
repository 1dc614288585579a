package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/skylens/tailtrace/infra"
	"github.com/skylens/tailtrace/models"
	"github.com/skylens/tailtrace/repositories/httpmodels"
	"github.com/skylens/tailtrace/utils"
)

const faaRegistryAttempts = 3

// FaaRegistryRepository queries the live FAA aircraft inquiry page. The
// endpoint answers HTML, so this adapter is deliberately dumb: fetch, render
// to text, pattern-extract. Anything smarter belongs upstream of it.
type FaaRegistryRepository struct {
	faa    infra.FaaRegistry
	client *http.Client
}

func NewFaaRegistryRepository(faa infra.FaaRegistry, timeout time.Duration) *FaaRegistryRepository {
	return &FaaRegistryRepository{
		faa:    faa,
		client: &http.Client{Timeout: timeout},
	}
}

func (repo *FaaRegistryRepository) Lookup(ctx context.Context, key string) (models.AircraftRecord, error) {
	lookupUrl := repo.lookupUrl(key)

	text, err := retry.DoWithData(
		func() (string, error) {
			return repo.fetchPage(ctx, lookupUrl)
		},
		retry.Context(ctx),
		retry.Attempts(faaRegistryAttempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return models.AircraftRecord{}, errors.Wrapf(models.ErrRegistryUnavailable,
			"FAA registry fetch for N%s: %v", key, err)
	}

	if httpmodels.PageReportsNotFound(text) {
		return models.AircraftRecord{}, errors.Wrapf(models.ErrAircraftNotFound, "N%s", key)
	}

	record := httpmodels.AdaptFaaRegistryPage(text)
	if !httpmodels.HasSubstance(record) {
		utils.LoggerFromContext(ctx).Warn("FAA registry page yielded no usable fields",
			"n_number", "N"+key)
		return models.AircraftRecord{}, errors.Wrapf(models.ErrRegistryUnavailable,
			"FAA registry page for N%s could not be parsed", key)
	}

	record.NNumber = "N" + key
	record.Source = models.SourceFaaRegistry
	record.SourceURL = lookupUrl
	record.LookedUpAt = time.Now()

	return record, nil
}

func (repo *FaaRegistryRepository) lookupUrl(key string) string {
	qs := url.Values{}
	qs.Set("nNumberTxt", key)
	return fmt.Sprintf("%s/AircraftInquiry/Search/NNumberResult?%s", repo.faa.Host(), qs.Encode())
}

func (repo *FaaRegistryRepository) fetchPage(ctx context.Context, lookupUrl string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupUrl, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", repo.faa.UserAgent())

	resp, err := repo.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("FAA registry returned status %d", resp.StatusCode)
	}

	return httpmodels.FlattenHTML(resp.Body)
}
