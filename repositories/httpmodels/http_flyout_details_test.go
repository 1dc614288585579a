package httpmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdaptFlyoutDetails(t *testing.T) {
	resp := HTTPFlyoutResponse{Html: `
<div class="oc-flyout">
  <h1 id="oc-flyout-title"><a href="/companies/us_de/0012345">ACME AVIATION HOLDINGS LLC</a></h1>
  <h3 class="oc-topic-properties">Status: Active</h3>
  <h3 class="oc-topic-properties">Company No: 0012345</h3>
  <h3 class="oc-topic-properties">Registered: 2015-03-02</h3>
  <h3 class="oc-topic-properties">Address: 100 Main St, Wilmington, DE</h3>
  <div class="oc-attribution">Delaware (US) - Limited Liability Company</div>
</div>`}

	details := AdaptFlyoutDetails(resp)

	assert.Equal(t, "ACME AVIATION HOLDINGS LLC", details.Name)
	assert.Equal(t, "Active", details.Status)
	assert.Equal(t, "0012345", details.CompanyNumber)
	assert.Equal(t, "2015-03-02", details.IncorporationDate)
	assert.Equal(t, "100 Main St, Wilmington, DE", details.Address)
	assert.Equal(t, "Delaware (US)", details.Jurisdiction)
	assert.Equal(t, "Limited Liability Company", details.CompanyType)
}

func TestAdaptFlyoutDetailsEmpty(t *testing.T) {
	assert.Zero(t, AdaptFlyoutDetails(HTTPFlyoutResponse{}))
	assert.Zero(t, AdaptFlyoutDetails(HTTPFlyoutResponse{Html: "<p>No company found</p>"}))
}

func TestAdaptReconcileCandidate(t *testing.T) {
	entity, err := AdaptReconcileCandidate(HTTPReconcileCandidate{
		Id: "us_de/0012345", Name: "Acme", Score: 84.6, Match: true, Uri: "https://oc/acme",
	})

	assert.NoError(t, err)
	assert.Equal(t, 85, entity.MatchScore, "score is rounded, not truncated")
	assert.True(t, entity.Matched)
	assert.Equal(t, "https://oc/acme", entity.SourceURL)

	_, err = AdaptReconcileCandidate(HTTPReconcileCandidate{Name: "Anonymous"})
	assert.ErrorIs(t, err, ErrIncompleteCandidate)

	_, err = AdaptReconcileCandidate(HTTPReconcileCandidate{Id: "x"})
	assert.ErrorIs(t, err, ErrIncompleteCandidate)
}
