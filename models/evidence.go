package models

// EvidenceLink points a human reviewer at one source consulted during a run.
type EvidenceLink struct {
	Source      string `json:"source"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
