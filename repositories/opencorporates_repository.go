package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/skylens/tailtrace/infra"
	"github.com/skylens/tailtrace/models"
	"github.com/skylens/tailtrace/repositories/httpmodels"
	"github.com/skylens/tailtrace/utils"
)

// OpenCorporatesRepository talks to the OpenCorporates reconciliation API:
// a search endpoint returning ranked candidates and a flyout endpoint for
// best-effort per-candidate detail.
type OpenCorporatesRepository struct {
	opencorporates infra.OpenCorporates
	client         *http.Client
}

func NewOpenCorporatesRepository(opencorporates infra.OpenCorporates, timeout time.Duration) *OpenCorporatesRepository {
	return &OpenCorporatesRepository{
		opencorporates: opencorporates,
		client:         &http.Client{Timeout: timeout},
	}
}

// Search returns candidate matches for a company name, best match first, in
// the order the reconciliation service ranked them. Candidates missing an id
// or a name are dropped whole rather than returned half-built.
func (repo *OpenCorporatesRepository) Search(ctx context.Context,
	companyName, jurisdiction string, limit int,
) ([]models.CorporateEntity, error) {
	qs := url.Values{}
	qs.Set("query", companyName)
	qs.Set("limit", fmt.Sprintf("%d", limit))

	searchUrl := fmt.Sprintf("%s/%s?%s", repo.opencorporates.Host(), jurisdiction, qs.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", repo.opencorporates.UserAgent())

	utils.LoggerFromContext(ctx).Debug("corporate reconciliation search", "query", companyName)

	resp, err := repo.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not reach company reconciliation service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("company reconciliation service returned status %d", resp.StatusCode)
	}

	var payload httpmodels.HTTPReconcileResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "could not parse reconciliation response")
	}

	entities := make([]models.CorporateEntity, 0, len(payload.Result))
	for _, candidate := range payload.Result {
		entity, err := httpmodels.AdaptReconcileCandidate(candidate)
		if err != nil {
			continue
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// Details fetches flyout enrichment for one candidate id. Best effort by
// contract: every failure path returns an empty detail set and no error, so
// a candidate is never lost to a broken enrichment fetch.
func (repo *OpenCorporatesRepository) Details(ctx context.Context, entityId string) models.CorporateEntityDetails {
	qs := url.Values{}
	qs.Set("id", entityId)

	detailUrl := fmt.Sprintf("%s/flyout?%s", repo.opencorporates.Host(), qs.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, detailUrl, nil)
	if err != nil {
		return models.CorporateEntityDetails{}
	}
	req.Header.Set("User-Agent", repo.opencorporates.UserAgent())

	resp, err := repo.client.Do(req)
	if err != nil {
		utils.LoggerFromContext(ctx).Debug("flyout enrichment failed", "entity_id", entityId, "error", err)
		return models.CorporateEntityDetails{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.CorporateEntityDetails{}
	}

	var payload httpmodels.HTTPFlyoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.CorporateEntityDetails{}
	}

	return httpmodels.AdaptFlyoutDetails(payload)
}
