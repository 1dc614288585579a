package httpmodels

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/skylens/tailtrace/models"
)

// HTTPReconcileResponse mirrors the OpenCorporates reconciliation endpoint
// payload: GET {host}/{jurisdiction}?query=...&limit=...
type HTTPReconcileResponse struct {
	Result []HTTPReconcileCandidate `json:"result"`
}

type HTTPReconcileCandidate struct {
	Id    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Match bool    `json:"match"`
	Uri   string  `json:"uri"`
}

var ErrIncompleteCandidate = errors.New("reconciliation candidate is missing id or name")

// AdaptReconcileCandidate converts one wire candidate into the domain model.
// A candidate without both an id and a name is unusable downstream (dedup and
// enrichment key on the id, every surface renders the name), so the whole
// entry is rejected rather than half-built.
func AdaptReconcileCandidate(c HTTPReconcileCandidate) (models.CorporateEntity, error) {
	if c.Id == "" || c.Name == "" {
		return models.CorporateEntity{}, ErrIncompleteCandidate
	}

	return models.CorporateEntity{
		Id:         c.Id,
		Name:       c.Name,
		MatchScore: int(math.Round(c.Score)),
		Matched:    c.Match,
		SourceURL:  c.Uri,
	}, nil
}
