package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ResearchStatus int

const (
	ResearchStatusStarted ResearchStatus = iota
	ResearchStatusGathering
	ResearchStatusAnalyzing
	ResearchStatusComplete
	ResearchStatusFailed
)

func (s ResearchStatus) String() string {
	switch s {
	case ResearchStatusStarted:
		return "started"
	case ResearchStatusGathering:
		return "gathering"
	case ResearchStatusAnalyzing:
		return "analyzing"
	case ResearchStatusComplete:
		return "complete"
	case ResearchStatusFailed:
		return "failed"
	}
	return "unknown"
}

func (s ResearchStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s ResearchStatus) IsTerminal() bool {
	return s == ResearchStatusComplete || s == ResearchStatusFailed
}

// CanTransitionTo enforces the strictly forward state machine
// started -> gathering -> analyzing -> complete, with the single side
// transition gathering -> failed. Terminal states accept nothing.
func (s ResearchStatus) CanTransitionTo(next ResearchStatus) bool {
	switch s {
	case ResearchStatusStarted:
		return next == ResearchStatusGathering
	case ResearchStatusGathering:
		return next == ResearchStatusAnalyzing || next == ResearchStatusFailed
	case ResearchStatusAnalyzing:
		return next == ResearchStatusComplete
	}
	return false
}

// ResearchResult is the aggregate built up by a single research run. It is
// exclusively owned by the pipeline invocation that created it until that
// invocation returns, and is considered final once Status is terminal.
type ResearchResult struct {
	Id        string    `json:"id"`
	NNumber   string    `json:"n_number"`
	Timestamp time.Time `json:"timestamp"`

	Aircraft          *AircraftRecord      `json:"aircraft,omitempty"`
	Owner             *OwnerClassification `json:"owner,omitempty"`
	CorporateEntities []CorporateEntity    `json:"corporate_entities"`
	DecisionMakers    []DecisionMaker      `json:"decision_makers"`
	PrimaryContact    *DecisionMaker       `json:"primary_contact,omitempty"`
	EvidenceLinks     []EvidenceLink       `json:"evidence_links"`

	ConfidenceScore         int            `json:"confidence_score"`
	ConfidenceJustification string         `json:"confidence_justification"`
	Recommendations         []string       `json:"recommendations"`
	NeedsHumanReview        bool           `json:"needs_human_review"`
	Status                  ResearchStatus `json:"status"`
	Errors                  []string       `json:"errors"`
}

// NewResearchResult creates the aggregate for a run. nNumber must already be
// in canonical form.
func NewResearchResult(nNumber string, now time.Time) *ResearchResult {
	return &ResearchResult{
		Id:                uuid.NewString(),
		NNumber:           nNumber,
		Timestamp:         now,
		CorporateEntities: []CorporateEntity{},
		DecisionMakers:    []DecisionMaker{},
		EvidenceLinks:     []EvidenceLink{},
		Recommendations:   []string{},
		Errors:            []string{},
		Status:            ResearchStatusStarted,
	}
}

// TransitionTo advances the status, ignoring transitions the state machine
// forbids. Components never call this; only the pipeline drives it.
func (r *ResearchResult) TransitionTo(next ResearchStatus) bool {
	if !r.Status.CanTransitionTo(next) {
		return false
	}
	r.Status = next
	return true
}

func (r *ResearchResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddEvidence appends a link unless its URL was already recorded; discovery
// order is preserved.
func (r *ResearchResult) AddEvidence(link EvidenceLink) {
	for _, existing := range r.EvidenceLinks {
		if existing.URL == link.URL {
			return
		}
	}
	r.EvidenceLinks = append(r.EvidenceLinks, link)
}

// AddCorporateEntity appends a candidate unless its id was already recorded;
// discovery order is preserved.
func (r *ResearchResult) AddCorporateEntity(entity CorporateEntity) {
	for _, existing := range r.CorporateEntities {
		if existing.Id == entity.Id {
			return
		}
	}
	r.CorporateEntities = append(r.CorporateEntities, entity)
}

// AddDecisionMaker appends a decision maker and re-selects the primary
// contact: the entry with the highest confidence, first-encountered winning
// ties.
func (r *ResearchResult) AddDecisionMaker(dm DecisionMaker) {
	r.DecisionMakers = append(r.DecisionMakers, dm)

	best := 0
	for i := range r.DecisionMakers {
		if r.DecisionMakers[i].Confidence > r.DecisionMakers[best].Confidence {
			best = i
		}
	}
	r.PrimaryContact = &r.DecisionMakers[best]
}

func (r ResearchResult) HighConfidenceEntities() []CorporateEntity {
	var out []CorporateEntity
	for _, e := range r.CorporateEntities {
		if e.IsHighConfidence() {
			out = append(out, e)
		}
	}
	return out
}
