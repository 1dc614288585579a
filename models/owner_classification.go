package models

import "encoding/json"

type EntityType int

const (
	EntityTypeIndividualUnknown EntityType = iota
	EntityTypeTrust
	EntityTypeLLC
	EntityTypeCorporation
	EntityTypePartnership
	EntityTypeHoldingManagement
)

func (t EntityType) String() string {
	switch t {
	case EntityTypeTrust:
		return "Trust"
	case EntityTypeLLC:
		return "Limited Liability Company"
	case EntityTypeCorporation:
		return "Corporation"
	case EntityTypePartnership:
		return "Partnership"
	case EntityTypeHoldingManagement:
		return "Holding/Management Company"
	}
	return "Individual/Unknown"
}

func (t EntityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *EntityType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = EntityTypeFrom(s)
	return nil
}

func EntityTypeFrom(s string) EntityType {
	switch s {
	case "Trust":
		return EntityTypeTrust
	case "Limited Liability Company":
		return EntityTypeLLC
	case "Corporation":
		return EntityTypeCorporation
	case "Partnership":
		return EntityTypePartnership
	case "Holding/Management Company":
		return EntityTypeHoldingManagement
	}
	return EntityTypeIndividualUnknown
}

// OwnerClassification is computed once per research run from the merged
// aircraft record's owner name and is immutable thereafter.
//
// IsBusiness and EntityType are independent signals: a name like
// "BLUE SKY AVIATION" trips a business indicator without falling into any
// entity-type bucket, so IsBusiness=true with EntityTypeIndividualUnknown is
// a valid and meaningful combination.
type OwnerClassification struct {
	OriginalName string     `json:"original_name"`
	IsBusiness   bool       `json:"is_business"`
	EntityType   EntityType `json:"entity_type"`

	// SearchTerms are the distinct name variants used for corporate lookup,
	// legal-suffix-stripped variant first, original name second.
	SearchTerms []string `json:"search_terms"`
}
