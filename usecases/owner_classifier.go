package usecases

import (
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/skylens/tailtrace/models"
	"github.com/skylens/tailtrace/pure_utils"
)

// businessIndicators trips IsBusiness on a substring match against the
// uppercased owner name. Deliberately broad: "AVIATION" or "CHARTER" in a
// name is a business signal even when no legal-form token is present.
var businessIndicators = set.From([]string{
	"LLC", "INC", "CORP", "CORPORATION", "COMPANY", "CO", "LTD", "LIMITED",
	"TRUST", "TRUSTEE", "PARTNERSHIP", "LP", "LLP", "HOLDINGS", "GROUP",
	"AVIATION", "AIRCRAFT", "JETS", "FLYING", "CHARTER", "MANAGEMENT",
	"ENTERPRISES", "SERVICES", "SOLUTIONS", "VENTURES",
})

// entityTypeChecks is a precedence chain, first match wins. TRUST is checked
// before LLC so "ABC TRUST LLC" classifies as a trust: the trust layer is the
// one that obscures the beneficial owner, which is what downstream rules care
// about.
var entityTypeChecks = []struct {
	tokens     []string
	entityType models.EntityType
}{
	{[]string{"TRUST"}, models.EntityTypeTrust},
	{[]string{"LLC", "LIMITED LIABILITY"}, models.EntityTypeLLC},
	{[]string{"INC", "CORP", "CORPORATION"}, models.EntityTypeCorporation},
	{[]string{"LP", "LLP", "PARTNERSHIP"}, models.EntityTypePartnership},
	{[]string{"HOLDINGS", "GROUP", "MANAGEMENT"}, models.EntityTypeHoldingManagement},
}

// legal suffixes stripped (once, not iteratively) to build a second corporate
// search term from a business owner name.
var legalSuffixes = []string{" LLC", " INC", " CORP", " LTD", " CO"}

// OwnerClassifier decides whether a registered owner name looks like a
// business, which entity-type bucket it falls into, and which name variants
// are worth searching corporate registries for. Pure and total: no external
// calls, and an empty name yields the documented low-information output
// (not business, Individual/Unknown, no search terms).
type OwnerClassifier struct{}

func (classifier OwnerClassifier) Classify(ownerName string) models.OwnerClassification {
	classification := models.OwnerClassification{
		OriginalName: ownerName,
		EntityType:   models.EntityTypeIndividualUnknown,
		SearchTerms:  []string{},
	}

	name := strings.ToUpper(strings.TrimSpace(ownerName))
	if name == "" {
		return classification
	}

	for _, indicator := range businessIndicators.Slice() {
		if strings.Contains(name, indicator) {
			classification.IsBusiness = true
			break
		}
	}

	for _, check := range entityTypeChecks {
		if containsAny(name, check.tokens) {
			classification.EntityType = check.entityType
			break
		}
	}

	terms := []string{}
	if classification.IsBusiness {
		if stripped := stripLegalSuffix(ownerName); stripped != "" {
			terms = append(terms, stripped)
		}
	}
	terms = append(terms, ownerName)
	classification.SearchTerms = pure_utils.DedupPreservingOrder(terms)

	return classification
}

func containsAny(name string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

// stripLegalSuffix removes one trailing legal suffix from the name, keeping
// the original casing. Returns "" when no suffix matches or nothing would be
// left.
func stripLegalSuffix(ownerName string) string {
	trimmed := strings.TrimSpace(ownerName)
	upper := strings.ToUpper(trimmed)
	for _, suffix := range legalSuffixes {
		if strings.HasSuffix(upper, suffix) {
			return strings.TrimSpace(trimmed[:len(trimmed)-len(suffix)])
		}
	}
	return ""
}
