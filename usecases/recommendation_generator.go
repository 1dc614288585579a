package usecases

import (
	"fmt"

	"github.com/skylens/tailtrace/models"
)

// RecommendationGenerator derives follow-up guidance from a scored result.
// Rules run in a fixed priority order and each appends at most one entry;
// pure and never fails.
type RecommendationGenerator struct{}

func (generator RecommendationGenerator) Generate(result *models.ResearchResult) []string {
	recommendations := []string{}

	if result.ConfidenceScore < HumanReviewScoreFloor {
		recommendations = append(recommendations,
			"Low confidence results - requires human expert review")
	}

	if result.Owner != nil && result.Owner.EntityType == models.EntityTypeTrust {
		recommendations = append(recommendations,
			"Owner is a trust - beneficial owner may be obscured. Consider trustee lookup or legal records search.")
	}

	if result.Owner != nil && result.Owner.IsBusiness && len(result.CorporateEntities) == 0 {
		recommendations = append(recommendations,
			"Business entity not found in corporate registries - check state registries manually")
	}

	if len(result.CorporateEntities) > 3 {
		recommendations = append(recommendations,
			"Multiple corporate matches found - verify correct entity using address matching")
	}

	if len(result.DecisionMakers) == 0 {
		recommendations = append(recommendations,
			"No decision maker identified - consider manual research or contact enrichment services")
	}

	if result.Aircraft != nil && !result.Aircraft.HasActiveRegistration() {
		recommendations = append(recommendations, fmt.Sprintf(
			"Registration status is %q - verify the aircraft is still registered", result.Aircraft.Status))
	}

	return recommendations
}
