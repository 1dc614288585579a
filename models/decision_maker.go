package models

import "github.com/guregu/null/v5"

// Fixed confidence bands for the three identification rules, in descending
// order of certainty: an individual owner is near-certain, an executive name
// scraped out of search snippets is a guess, and the company-representative
// placeholder is only there so a business owner is never silently dropped.
const (
	ConfidenceIndividualOwner  = 90
	ConfidenceExecutiveMention = 60
	ConfidencePrimaryContact   = 30
)

// DecisionMaker is the human (or placeholder) believed to control the
// aircraft behind its registered owner. Contact fields default to absent;
// absence is not an error.
type DecisionMaker struct {
	Name       string      `json:"name"`
	Role       string      `json:"role"`
	Email      null.String `json:"email"`
	Phone      null.String `json:"phone"`
	Linkedin   null.String `json:"linkedin"`
	Confidence int         `json:"confidence"`

	// Provenance describes which rule or source produced this entry.
	Provenance string `json:"provenance,omitempty"`
}

// SearchSnippet is one auxiliary web-search result fed to the decision-maker
// heuristic.
type SearchSnippet struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}
