package usecases

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-set/v2"

	"github.com/skylens/tailtrace/models"
)

// nameStopwords are common capitalized words the snippet heuristic must not
// mistake for a person's name.
var nameStopwords = set.From([]string{"The", "And", "Of", "For"})

// titleThenNameRe matches "CEO John Smith", "President: Jane Q Doe" and the
// like. This is a co-occurrence heuristic, not entity recognition; it lives
// behind DecisionMakerIdentifier so it can be swapped for a real NER step
// without touching classification or scoring.
var titleThenNameRe = regexp.MustCompile(
	`\b(CEO|President|Owner|Manager|Director|Principal)\b[\s,:–-]+((?:[A-Z][a-zA-Z'.]+)(?: [A-Z][a-zA-Z'.]+){0,2})`)

// nameThenTitleRe matches the reversed form, "John Smith, CEO".
var nameThenTitleRe = regexp.MustCompile(
	`((?:[A-Z][a-zA-Z'.]+)(?: [A-Z][a-zA-Z'.]+){0,2})[\s,]+(?:is |serves as )?(?:the )?\b(CEO|President|Owner|Manager|Director|Principal)\b`)

// DecisionMakerIdentifier resolves who actually controls the aircraft behind
// its registered owner. Three rules in descending certainty:
//
//  1. an individual owner is their own decision maker;
//  2. for a business, the first executive-title mention found in web search
//     snippets, in input order;
//  3. for a business with no executive found, a company-representative
//     placeholder so the owner is never silently dropped.
//
// Produces zero or one DecisionMaker per invocation.
type DecisionMakerIdentifier struct{}

func (identifier DecisionMakerIdentifier) Identify(
	owner models.OwnerClassification,
	snippets []models.SearchSnippet,
) (models.DecisionMaker, bool) {
	ownerName := strings.TrimSpace(owner.OriginalName)

	if !owner.IsBusiness && owner.EntityType == models.EntityTypeIndividualUnknown {
		if ownerName == "" {
			return models.DecisionMaker{}, false
		}
		return models.DecisionMaker{
			Name:       ownerName,
			Role:       "Owner",
			Confidence: models.ConfidenceIndividualOwner,
			Provenance: "registered owner is an individual",
		}, true
	}

	if owner.IsBusiness {
		for _, snippet := range snippets {
			text := snippet.Title + " " + snippet.Content
			if name, title, ok := findExecutiveMention(text); ok {
				return models.DecisionMaker{
					Name:       name,
					Role:       title,
					Confidence: models.ConfidenceExecutiveMention,
					Provenance: fmt.Sprintf("%s mention in %s", title, snippet.URL),
				}, true
			}
		}
	}

	if ownerName == "" {
		return models.DecisionMaker{}, false
	}
	return models.DecisionMaker{
		Name:       ownerName + " (Primary Contact)",
		Role:       "Company Representative",
		Confidence: models.ConfidencePrimaryContact,
		Provenance: "registered owner fallback, no named executive found",
	}, true
}

func findExecutiveMention(text string) (name, title string, ok bool) {
	for _, m := range titleThenNameRe.FindAllStringSubmatch(text, -1) {
		if cleaned := dropStopwords(m[2]); cleaned != "" {
			return cleaned, m[1], true
		}
	}
	for _, m := range nameThenTitleRe.FindAllStringSubmatch(text, -1) {
		if cleaned := dropStopwords(m[1]); cleaned != "" {
			return cleaned, m[2], true
		}
	}
	return "", "", false
}

// dropStopwords removes stopwords from a candidate name and rejects it
// entirely when nothing meaningful remains.
func dropStopwords(candidate string) string {
	var kept []string
	for _, word := range strings.Fields(candidate) {
		if nameStopwords.Contains(word) {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}
