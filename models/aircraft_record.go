package models

import (
	"strings"
	"time"
)

// Provenance tags for AircraftRecord, ordered by trust: the FAA releasable
// dataset is authoritative for the fields it carries, the live registry page
// fills in whatever the dataset misses.
const (
	SourceFaaDataset  = "faa_dataset"
	SourceFaaRegistry = "faa_registry"
)

// AircraftRecord is one row of registry data for an n-number. Partial records
// from several sources are merged with MergeFrom; NNumber is always the
// canonical form (see NormalizeNNumber) before being used as a lookup or
// merge key.
type AircraftRecord struct {
	NNumber          string `json:"n_number"`
	SerialNumber     string `json:"serial_number,omitempty"`
	Manufacturer     string `json:"manufacturer,omitempty"`
	Model            string `json:"model,omitempty"`
	YearManufactured string `json:"year_manufactured,omitempty"`
	AircraftType     string `json:"aircraft_type,omitempty"`
	EngineType       string `json:"engine_type,omitempty"`

	OwnerName string `json:"owner_name,omitempty"`
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	Country   string `json:"country,omitempty"`

	Status               string `json:"status,omitempty"`
	CertificateIssueDate string `json:"certificate_issue_date,omitempty"`
	AirworthinessDate    string `json:"airworthiness_date,omitempty"`

	Source     string    `json:"source"`
	SourceURL  string    `json:"source_url,omitempty"`
	LookedUpAt time.Time `json:"looked_up_at"`
}

// NormalizeNNumber turns any user-supplied tail number into the canonical
// "N"+key form: surrounding whitespace stripped, uppercased, exactly one
// leading "N" removed then re-added.
func NormalizeNNumber(raw string) string {
	key := NNumberKey(raw)
	if key == "" {
		return ""
	}
	return "N" + key
}

// NNumberKey returns the registry lookup key for a tail number: the canonical
// form without its leading "N".
func NNumberKey(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "N")
	return s
}

// MergeFrom copies into r every field of other that r does not already have.
// First source wins per field: values already present on r are never
// overwritten, so a higher-trust source queried first cannot be clobbered by
// a lower-trust one queried later. Source and SourceURL follow the same rule
// and end up naming the first adapter that produced data.
func (r *AircraftRecord) MergeFrom(other AircraftRecord) {
	fill := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
		}
	}

	fill(&r.NNumber, other.NNumber)
	fill(&r.SerialNumber, other.SerialNumber)
	fill(&r.Manufacturer, other.Manufacturer)
	fill(&r.Model, other.Model)
	fill(&r.YearManufactured, other.YearManufactured)
	fill(&r.AircraftType, other.AircraftType)
	fill(&r.EngineType, other.EngineType)
	fill(&r.OwnerName, other.OwnerName)
	fill(&r.Street, other.Street)
	fill(&r.City, other.City)
	fill(&r.State, other.State)
	fill(&r.ZipCode, other.ZipCode)
	fill(&r.Country, other.Country)
	fill(&r.Status, other.Status)
	fill(&r.CertificateIssueDate, other.CertificateIssueDate)
	fill(&r.AirworthinessDate, other.AirworthinessDate)
	fill(&r.Source, other.Source)
	fill(&r.SourceURL, other.SourceURL)

	if r.LookedUpAt.IsZero() {
		r.LookedUpAt = other.LookedUpAt
	}
}

// HasActiveRegistration reports whether the registration status needs no
// further verification.
func (r AircraftRecord) HasActiveRegistration() bool {
	switch strings.ToUpper(strings.TrimSpace(r.Status)) {
	case "VALID", "ACTIVE":
		return true
	}
	return false
}
