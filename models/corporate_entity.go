package models

// HighConfidenceMatchThreshold is the reconciliation score above which a
// corporate candidate is treated as a high-confidence match by the scorer and
// the recommendation rules. Fixed by design, not configurable per call.
const HighConfidenceMatchThreshold = 70

// CorporateEntity is one candidate match returned by the company
// reconciliation service, optionally enriched with detail fields from a
// secondary best-effort fetch.
type CorporateEntity struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	MatchScore int    `json:"match_score"`
	Matched    bool   `json:"matched"`
	SourceURL  string `json:"source_url,omitempty"`

	// NameSimilarity is a local annotation: normalized similarity between the
	// candidate name and the registry owner name, used to help a reviewer
	// pick between several plausible candidates.
	NameSimilarity float64 `json:"name_similarity,omitempty"`

	// Detail enrichment, absent unless the flyout fetch succeeded.
	Status            string `json:"status,omitempty"`
	CompanyNumber     string `json:"company_number,omitempty"`
	IncorporationDate string `json:"incorporation_date,omitempty"`
	Address           string `json:"address,omitempty"`
	Jurisdiction      string `json:"jurisdiction,omitempty"`
	CompanyType       string `json:"company_type,omitempty"`
}

// CorporateEntityDetails is the partial field map produced by the detail
// enrichment endpoint. Empty fields leave the candidate's base fields alone.
type CorporateEntityDetails struct {
	Name              string
	Status            string
	CompanyNumber     string
	IncorporationDate string
	Address           string
	Jurisdiction      string
	CompanyType       string
}

// Enrich copies non-empty detail fields onto the candidate. The candidate's
// reconciliation name is kept: the detail page name is only used when the
// base one is missing.
func (e *CorporateEntity) Enrich(d CorporateEntityDetails) {
	if e.Name == "" && d.Name != "" {
		e.Name = d.Name
	}
	if d.Status != "" {
		e.Status = d.Status
	}
	if d.CompanyNumber != "" {
		e.CompanyNumber = d.CompanyNumber
	}
	if d.IncorporationDate != "" {
		e.IncorporationDate = d.IncorporationDate
	}
	if d.Address != "" {
		e.Address = d.Address
	}
	if d.Jurisdiction != "" {
		e.Jurisdiction = d.Jurisdiction
	}
	if d.CompanyType != "" {
		e.CompanyType = d.CompanyType
	}
}

func (e CorporateEntity) IsHighConfidence() bool {
	return e.MatchScore > HighConfidenceMatchThreshold
}
