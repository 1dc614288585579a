package repositories

import (
	"context"

	"github.com/skylens/tailtrace/models"
)

// ContactEnrichmentRepository fills in direct contact details for an
// identified decision maker. No provider is integrated yet, so the current
// implementation annotates the contact with where its fields came from and
// leaves email, phone and LinkedIn empty rather than guessing.
//
// TODO: integrate a contact data provider (Apollo or Hunter) once an
// account is provisioned.
type ContactEnrichmentRepository struct{}

func NewContactEnrichmentRepository() *ContactEnrichmentRepository {
	return &ContactEnrichmentRepository{}
}

func (repo *ContactEnrichmentRepository) Enrich(ctx context.Context, contact models.DecisionMaker) (models.DecisionMaker, error) {
	if contact.Provenance == "" {
		contact.Provenance = "contact details pending enrichment"
	}
	return contact, nil
}
