package httpmodels

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/skylens/tailtrace/models"
)

// The FAA aircraft inquiry endpoint answers with an HTML page, not a
// structured payload. Extraction works on the rendered text: the page is
// flattened with an HTML tokenizer, then labeled fields are pulled out with
// patterns that tolerate the registry's inconsistent label wording.

var notFoundMarkers = []string{
	"aircraft was not found",
	"no records found",
}

// PageReportsNotFound reports whether the page text positively states the
// registry has no record, as opposed to a failed or garbled response.
func PageReportsNotFound(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range notFoundMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// FlattenHTML renders an HTML document to its visible text, one token per
// line, the way a selector-based scraper would see it.
func FlattenHTML(r io.Reader) (string, error) {
	var sb strings.Builder

	tokenizer := html.NewTokenizer(r)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return sb.String(), nil
			}
			return "", tokenizer.Err()
		case html.TextToken:
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text != "" {
				sb.WriteString(text)
				sb.WriteString("\n")
			}
		}
	}
}

type fieldPattern struct {
	assign   func(*models.AircraftRecord, string)
	patterns []*regexp.Regexp
}

var faaFieldPatterns = []fieldPattern{
	{
		assign: func(r *models.AircraftRecord, v string) { r.SerialNumber = v },
		patterns: compileAll(
			`Serial Number[:\s]*\n?([A-Z0-9-]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.Manufacturer = v },
		patterns: compileAll(
			`Manufacturer Name[:\s]*\n?([^\n]+)`,
			`Manufacturer[:\s]*\n?([^\n]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.Model = v },
		patterns: compileAll(
			`Model[:\s]*\n?([^\n]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.YearManufactured = v },
		patterns: compileAll(
			`Mfr Year[:\s]*\n?(\d{4})`,
			`Year Manufactured[:\s]*\n?(\d{4})`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.AircraftType = v },
		patterns: compileAll(
			`Type Aircraft[:\s]*\n?([^\n]+)`,
			`Aircraft Type[:\s]*\n?([^\n]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.EngineType = v },
		patterns: compileAll(
			`Type Engine[:\s]*\n?([^\n]+)`,
			`Engine Type[:\s]*\n?([^\n]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.CertificateIssueDate = v },
		patterns: compileAll(
			`Certificate Issue Date[:\s]*\n?([0-9/\-]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.AirworthinessDate = v },
		patterns: compileAll(
			`A/W Date[:\s]*\n?([0-9/\-]+)`,
			`Airworthiness Date[:\s]*\n?([0-9/\-]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.Status = v },
		patterns: compileAll(
			`Status[:\s]*\n?([^\n]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.OwnerName = v },
		patterns: compileAll(
			`Registrant Name[:\s]*\n?([^\n]+)`,
			`Name[:\s]*\n?([^\n]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.Street = v },
		patterns: compileAll(
			`Street[:\s]*\n?([^\n]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.City = v },
		patterns: compileAll(
			`City[:\s]*\n?([^\n,]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.State = v },
		patterns: compileAll(
			`State[:\s]*\n?([A-Z]{2})`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.ZipCode = v },
		patterns: compileAll(
			`Zip Code[:\s]*\n?([0-9\-]+)`,
			`Zip[:\s]*\n?([0-9\-]+)`,
		),
	},
	{
		assign: func(r *models.AircraftRecord, v string) { r.Country = v },
		patterns: compileAll(
			`Country[:\s]*\n?([^\n]+)`,
		),
	},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// AdaptFaaRegistryPage extracts an aircraft record from the flattened page
// text. Fields the page does not carry stay empty; the caller decides
// whether what remains amounts to a usable record.
func AdaptFaaRegistryPage(text string) models.AircraftRecord {
	var record models.AircraftRecord

	for _, field := range faaFieldPatterns {
		for _, pattern := range field.patterns {
			if m := pattern.FindStringSubmatch(text); m != nil {
				value := strings.TrimSpace(m[1])
				if value != "" && value != "N/A" && value != "None" {
					field.assign(&record, value)
					break
				}
			}
		}
	}

	return record
}

// HasSubstance reports whether extraction produced more than incidental
// noise: a record is only usable if it carries at least an owner or a
// serial number.
func HasSubstance(record models.AircraftRecord) bool {
	return record.OwnerName != "" || record.SerialNumber != ""
}
