package usecases

import (
	"fmt"
	"strings"

	"github.com/skylens/tailtrace/models"
)

// Additive scoring weights. One canonical scheme, applied everywhere; the
// result is clamped to [0, 100].
const (
	weightAircraftFound       = 20
	weightOwnerName           = 10
	weightClearEntityType     = 15
	weightHighConfidenceMatch = 20
	weightAnyCorporateMatch   = 10
	weightTooManyCandidates   = -10
	weightStrongDecisionMaker = 20
	weightAnyDecisionMaker    = 10
	weightMultipleEvidence    = 5

	tooManyCandidatesThreshold = 5
	strongContactThreshold     = 70

	// HumanReviewScoreFloor is the hard escalation gate: anything scoring
	// below it goes to a human.
	HumanReviewScoreFloor = 40
)

// ConfidenceScorer computes the 0-100 confidence score, its human-readable
// justification, and the human-review flag from an accumulated result. Pure
// function over the aggregate, no I/O.
type ConfidenceScorer struct{}

func (scorer ConfidenceScorer) Score(result *models.ResearchResult) {
	score := 0
	var clauses []string

	apply := func(weight int, clause string) {
		score += weight
		clauses = append(clauses, fmt.Sprintf("%s (%+d)", clause, weight))
	}

	if result.Aircraft != nil {
		apply(weightAircraftFound, "Aircraft registration found")

		if result.Aircraft.OwnerName != "" {
			apply(weightOwnerName, "Owner information available")
		}
	}

	if result.Owner != nil && result.Owner.EntityType != models.EntityTypeIndividualUnknown {
		apply(weightClearEntityType, "Clear entity type identified")
	}

	if len(result.CorporateEntities) > 0 {
		if len(result.HighConfidenceEntities()) > 0 {
			apply(weightHighConfidenceMatch, "High-confidence corporate match")
		} else {
			apply(weightAnyCorporateMatch, "Corporate entities found")
		}
		if len(result.CorporateEntities) > tooManyCandidatesThreshold {
			apply(weightTooManyCandidates, "Too many corporate candidates")
		}
	}

	if result.PrimaryContact != nil {
		if result.PrimaryContact.Confidence > strongContactThreshold {
			apply(weightStrongDecisionMaker, "High-confidence decision maker identified")
		} else {
			apply(weightAnyDecisionMaker, "Decision maker identified")
		}
	}

	if len(result.EvidenceLinks) >= 2 {
		apply(weightMultipleEvidence, "Multiple evidence sources")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	result.ConfidenceScore = score
	if len(clauses) == 0 {
		result.ConfidenceJustification = "Limited data available"
	} else {
		result.ConfidenceJustification = strings.Join(clauses, "; ")
	}

	result.NeedsHumanReview = score < HumanReviewScoreFloor ||
		(result.Owner != nil && result.Owner.IsBusiness && len(result.CorporateEntities) == 0)
}
