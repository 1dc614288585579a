package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skylens/tailtrace/models"
)

func TestClassifyBusinessIndicatorVocabulary(t *testing.T) {
	classifier := OwnerClassifier{}

	// Every vocabulary token must trip the business flag on its own.
	for _, indicator := range businessIndicators.Slice() {
		t.Run(indicator, func(t *testing.T) {
			assert.True(t, classifier.Classify("FOO "+indicator+" BAR").IsBusiness)
		})
	}

	assert.False(t, classifier.Classify("John Smith").IsBusiness)
	assert.False(t, classifier.Classify("Jane Doe").IsBusiness)
}

func TestClassifyEntityTypePrecedence(t *testing.T) {
	classifier := OwnerClassifier{}

	tts := []struct {
		name     string
		expected models.EntityType
	}{
		// TRUST precedes LLC even when both tokens are present.
		{"ABC TRUST LLC", models.EntityTypeTrust},
		{"SMITH FAMILY TRUST", models.EntityTypeTrust},
		{"ACME AVIATION LLC", models.EntityTypeLLC},
		{"WIDGETS LIMITED LIABILITY", models.EntityTypeLLC},
		{"GLOBEX CORP", models.EntityTypeCorporation},
		{"INITECH INC", models.EntityTypeCorporation},
		{"WAYNE PARTNERSHIP", models.EntityTypePartnership},
		{"STARK HOLDINGS", models.EntityTypeHoldingManagement},
		{"JET MANAGEMENT", models.EntityTypeHoldingManagement},
		{"John Smith", models.EntityTypeIndividualUnknown},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.name).EntityType)
		})
	}
}

func TestClassifyIndependentSignals(t *testing.T) {
	// "AVIATION" is a business indicator but no entity-type bucket fires.
	classification := OwnerClassifier{}.Classify("BLUE SKY AVIATION")
	assert.True(t, classification.IsBusiness)
	assert.Equal(t, models.EntityTypeIndividualUnknown, classification.EntityType)
}

func TestClassifySearchTerms(t *testing.T) {
	classifier := OwnerClassifier{}

	t.Run("stripped variant first, original second", func(t *testing.T) {
		classification := classifier.Classify("Acme Aviation Holdings LLC")
		assert.Equal(t,
			[]string{"Acme Aviation Holdings", "Acme Aviation Holdings LLC"},
			classification.SearchTerms)
	})

	t.Run("suffix stripping applies once, not iteratively", func(t *testing.T) {
		classification := classifier.Classify("Foo Co LLC")
		assert.Equal(t, []string{"Foo Co", "Foo Co LLC"}, classification.SearchTerms)
	})

	t.Run("individual keeps a single term", func(t *testing.T) {
		classification := classifier.Classify("John Smith")
		assert.Equal(t, []string{"John Smith"}, classification.SearchTerms)
	})

	t.Run("no matching suffix keeps a single term", func(t *testing.T) {
		classification := classifier.Classify("SMITH FAMILY TRUST")
		assert.Equal(t, []string{"SMITH FAMILY TRUST"}, classification.SearchTerms)
	})
}

func TestClassifyEmptyName(t *testing.T) {
	classification := OwnerClassifier{}.Classify("")
	assert.False(t, classification.IsBusiness)
	assert.Equal(t, models.EntityTypeIndividualUnknown, classification.EntityType)
	assert.Empty(t, classification.SearchTerms)
}
