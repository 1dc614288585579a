package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/skylens/tailtrace/models"
)

func TestScoreIndividualOwner(t *testing.T) {
	// Aircraft found (+20), owner name (+10), individual decision maker
	// with confidence 90 (+20): no corporate bonus applies.
	result := models.NewResearchResult("N540JT", time.Now())
	result.Aircraft = &models.AircraftRecord{NNumber: "N540JT", OwnerName: "John Smith"}
	owner := models.OwnerClassification{OriginalName: "John Smith"}
	result.Owner = &owner
	result.AddDecisionMaker(models.DecisionMaker{
		Name: "John Smith", Role: "Owner", Confidence: models.ConfidenceIndividualOwner,
	})

	ConfidenceScorer{}.Score(result)

	assert.Equal(t, 50, result.ConfidenceScore)
	assert.False(t, result.NeedsHumanReview)
	assert.Contains(t, result.ConfidenceJustification, "Aircraft registration found (+20)")
	assert.Contains(t, result.ConfidenceJustification, "Owner information available (+10)")
	assert.Contains(t, result.ConfidenceJustification, "High-confidence decision maker identified (+20)")
}

func TestScoreBusinessWithNoisyCandidates(t *testing.T) {
	// Aircraft (+20), owner (+10), clear entity type (+15), high-confidence
	// match (+20), >5 candidates (-10), fallback decision maker (+10).
	result := models.NewResearchResult("N540JT", time.Now())
	result.Aircraft = &models.AircraftRecord{OwnerName: "Acme Aviation Holdings LLC"}
	owner := models.OwnerClassification{
		OriginalName: "Acme Aviation Holdings LLC",
		IsBusiness:   true,
		EntityType:   models.EntityTypeLLC,
	}
	result.Owner = &owner
	for i, score := range []int{85, 78, 50, 40, 30, 20} {
		result.AddCorporateEntity(models.CorporateEntity{
			Id: string(rune('a' + i)), Name: "Acme", MatchScore: score,
		})
	}
	result.AddDecisionMaker(models.DecisionMaker{
		Name: "Acme Aviation Holdings LLC (Primary Contact)",
		Confidence: models.ConfidencePrimaryContact,
	})

	ConfidenceScorer{}.Score(result)

	assert.Equal(t, 65, result.ConfidenceScore)
	assert.False(t, result.NeedsHumanReview)
	assert.Contains(t, result.ConfidenceJustification, "Too many corporate candidates (-10)")
	assert.Contains(t, result.ConfidenceJustification, "High-confidence corporate match (+20)")
}

func TestScoreClampedToValidRange(t *testing.T) {
	t.Run("upper bound", func(t *testing.T) {
		result := models.NewResearchResult("N1", time.Now())
		result.Aircraft = &models.AircraftRecord{OwnerName: "X Trust LLC"}
		owner := models.OwnerClassification{
			OriginalName: "X Trust LLC", IsBusiness: true, EntityType: models.EntityTypeTrust,
		}
		result.Owner = &owner
		for i := 0; i < 5; i++ {
			result.AddCorporateEntity(models.CorporateEntity{
				Id: string(rune('a' + i)), MatchScore: 100,
			})
		}
		result.AddDecisionMaker(models.DecisionMaker{Name: "A", Confidence: 90})
		result.AddEvidence(models.EvidenceLink{URL: "https://x/1"})
		result.AddEvidence(models.EvidenceLink{URL: "https://x/2"})

		ConfidenceScorer{}.Score(result)

		assert.LessOrEqual(t, result.ConfidenceScore, 100)
		assert.GreaterOrEqual(t, result.ConfidenceScore, 0)
	})

	t.Run("empty result stays at zero", func(t *testing.T) {
		result := models.NewResearchResult("N1", time.Now())

		ConfidenceScorer{}.Score(result)

		assert.Equal(t, 0, result.ConfidenceScore)
		assert.Equal(t, "Limited data available", result.ConfidenceJustification)
		assert.True(t, result.NeedsHumanReview)
	})
}

func TestNeedsHumanReviewGate(t *testing.T) {
	t.Run("business with zero corporate entities escalates regardless of score", func(t *testing.T) {
		result := models.NewResearchResult("N1", time.Now())
		result.Aircraft = &models.AircraftRecord{OwnerName: "Acme Aviation LLC"}
		owner := models.OwnerClassification{
			OriginalName: "Acme Aviation LLC", IsBusiness: true, EntityType: models.EntityTypeLLC,
		}
		result.Owner = &owner
		result.AddDecisionMaker(models.DecisionMaker{Name: "A", Confidence: 90})

		ConfidenceScorer{}.Score(result)

		// 20+10+15+20 = 65, well above the floor, yet still escalated.
		assert.GreaterOrEqual(t, result.ConfidenceScore, HumanReviewScoreFloor)
		assert.True(t, result.NeedsHumanReview)
	})

	t.Run("low score escalates", func(t *testing.T) {
		result := models.NewResearchResult("N1", time.Now())
		result.Aircraft = &models.AircraftRecord{}

		ConfidenceScorer{}.Score(result)

		assert.Less(t, result.ConfidenceScore, HumanReviewScoreFloor)
		assert.True(t, result.NeedsHumanReview)
	})
}
