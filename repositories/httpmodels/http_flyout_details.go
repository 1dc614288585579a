package httpmodels

import (
	"regexp"
	"strings"

	"github.com/skylens/tailtrace/models"
)

// HTTPFlyoutResponse mirrors the reconciliation flyout endpoint: a JSON
// envelope around an HTML fragment describing one company.
type HTTPFlyoutResponse struct {
	Html string `json:"html"`
}

var (
	flyoutTitleRe       = regexp.MustCompile(`(?s)<h1[^>]*id="oc-flyout-title"[^>]*>(.*?)</h1>`)
	flyoutPropertyRe    = regexp.MustCompile(`(?s)<h3[^>]*class="[^"]*oc-topic-properties[^"]*"[^>]*>(.*?)</h3>`)
	flyoutAttributionRe = regexp.MustCompile(`(?s)<div[^>]*class="[^"]*oc-attribution[^"]*"[^>]*>(.*?)</div>`)
	tagRe               = regexp.MustCompile(`<[^>]+>`)
)

// AdaptFlyoutDetails extracts the labeled properties out of the flyout HTML
// fragment. Unrecognized labels are ignored; an empty fragment or a "no
// company found" page yields a zero value.
func AdaptFlyoutDetails(resp HTTPFlyoutResponse) models.CorporateEntityDetails {
	var details models.CorporateEntityDetails

	if resp.Html == "" || strings.Contains(resp.Html, "No company found") {
		return details
	}

	if m := flyoutTitleRe.FindStringSubmatch(resp.Html); m != nil {
		details.Name = stripTags(m[1])
	}

	for _, m := range flyoutPropertyRe.FindAllStringSubmatch(resp.Html, -1) {
		text := stripTags(m[1])
		switch {
		case strings.Contains(text, "Status:"):
			details.Status = valueAfter(text, "Status:")
		case strings.Contains(text, "Company No:"):
			details.CompanyNumber = valueAfter(text, "Company No:")
		case strings.Contains(text, "Registered:"):
			details.IncorporationDate = valueAfter(text, "Registered:")
		case strings.Contains(text, "Address:"):
			details.Address = valueAfter(text, "Address:")
		}
	}

	if m := flyoutAttributionRe.FindStringSubmatch(resp.Html); m != nil {
		attribution := stripTags(m[1])
		if parts := strings.SplitN(attribution, " - ", 2); len(parts) == 2 {
			details.Jurisdiction = strings.TrimSpace(parts[0])
			details.CompanyType = strings.TrimSpace(parts[1])
		}
	}

	return details
}

func stripTags(fragment string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(fragment, " "))
}

func valueAfter(text, label string) string {
	_, after, _ := strings.Cut(text, label)
	return strings.TrimSpace(after)
}
